package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/config"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/logger"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/planner"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ProjectFile string `short:"c" long:"project" env:"PROJECT_FILE"   description:"Path to project file" default:"project.yaml"`
	Addr        string `short:"a" long:"addr"    env:"LISTEN_ADDRESS" description:"Address to listen on" default:"0.0.0.0"`
	Port        int    `short:"p" long:"port"    env:"LISTEN_PORT"    description:"Port to listen on"    default:"8080"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Project
	project, err := config.Load(opts.ProjectFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load project file")
	}

	analysis, err := planner.Run(project)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	srvCtx, err := server.NewServerContext(analysis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render solution artifacts")
	}

	handler := server.RequestLogger(srvCtx.Routes())

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Str("project", project.Name).
		Int("solutions", len(analysis.Solutions)).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
