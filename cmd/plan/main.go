package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/config"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/logger"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/planner"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/render"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/report"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/update"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ProjectFile string  `short:"c" long:"project"       env:"PROJECT_FILE" description:"Path to project file" default:"project.yaml"`
	OutputDir   string  `short:"o" long:"out"           env:"OUTPUT_DIR"   description:"Output directory (overrides project file)"`
	SafetyOverr float64 `short:"s" long:"safety-factor" description:"Safety factor override (0 < f <= 1)"`
	ReportsOnly bool    `short:"r" long:"reports-only"  description:"Write reports only, skip coverage maps"`
	CheckUpdate bool    `short:"u" long:"check-update"  description:"Check for a newer release before planning"`
}

// solutionSummary is the solutions.json entry for one layout.
type solutionSummary struct {
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	FinalQuantity int    `json:"final_quantity"`
	Covered       bool   `json:"covered"`
	Report        string `json:"report"`
	Map           string `json:"map,omitempty"`
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

	opts.Logger.Setup()

	if opts.CheckUpdate {
		checkUpdate()
	}

	project, err := config.Load(opts.ProjectFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load project file")
	}

	if opts.SafetyOverr != 0 {
		project.SafetyFactor = opts.SafetyOverr
		if err := project.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid safety factor override")
		}
	}
	if opts.OutputDir != "" {
		project.OutputDir = opts.OutputDir
	}

	analysis, err := planner.Run(project)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	if err := os.MkdirAll(project.OutputDir, 0755); err != nil {
		log.Fatal().Err(err).Str("dir", project.OutputDir).Msg("Failed to create output directory")
	}

	summaries := make([]solutionSummary, len(analysis.Solutions))
	for i, sol := range analysis.Solutions {
		reportName := fmt.Sprintf("report_%d.html", i)
		mapName := fmt.Sprintf("map_%d.webp", i)

		summary := solutionSummary{
			Name:          sol.Name,
			Quantity:      analysis.QuantityByDistance(i),
			FinalQuantity: analysis.FinalQuantity(i),
			Covered:       analysis.Covered[i],
			Report:        reportName,
		}

		mapRef := ""
		if !opts.ReportsOnly {
			mapRef = mapName
			summary.Map = mapName

			img, err := render.Map(analysis.Floor, sol.Points, analysis.EffectiveRadius())
			if err != nil {
				log.Fatal().Err(err).Str("solution", sol.Name).Msg("Failed to render coverage map")
			}
			writeArtifact(project.OutputDir, mapName, img)
		}

		html, err := report.Generate(analysis, i, mapRef)
		if err != nil {
			log.Fatal().Err(err).Str("solution", sol.Name).Msg("Failed to generate report")
		}
		writeArtifact(project.OutputDir, reportName, html)

		summaries[i] = summary
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal solution summary")
	}
	writeArtifact(project.OutputDir, "solutions.json", data)

	for _, s := range summaries {
		log.Info().
			Str("solution", s.Name).
			Int("units", s.FinalQuantity).
			Bool("covered", s.Covered).
			Msg("Solution ready")
	}

	log.Info().Str("dir", project.OutputDir).Msg("Planner finished successfully")
}

func writeArtifact(dir, name string, data []byte) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write artifact")
	}
}

func checkUpdate() {
	rel, newer, err := update.Check(update.NewClient(), update.Version)
	switch {
	case err != nil:
		log.Error().Err(err).Msg("Update check failed")
	case newer:
		log.Warn().
			Str("current", update.Version).
			Str("available", rel.Version).
			Str("url", rel.URL).
			Msg("A newer version is available")
	default:
		log.Info().Msg("You are using the latest version")
	}
}
