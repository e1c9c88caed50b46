// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// HandleIndex serves the solution overview page.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleSolutionsList serves the JSON summaries of all layouts.
func (s *ServerContext) HandleSolutionsList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Views)
}

// HandleSolution serves the full point list of one layout.
// Path: /api/solutions/{index}
func (s *ServerContext) HandleSolution(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 {
		http.NotFound(w, r)
		return
	}

	idx, ok := s.solutionIndex(parts[2])
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.Analysis.Solutions[idx])
}

// HandleSolutionAsset serves the pre-rendered report or coverage map.
// Path: /solutions/{index}/report or /solutions/{index}/map.webp
func (s *ServerContext) HandleSolutionAsset(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 {
		http.NotFound(w, r)
		return
	}

	idx, ok := s.solutionIndex(parts[1])
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch parts[2] {
	case "report":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(s.Reports[idx])
	case "map.webp":
		w.Header().Set("Content-Type", "image/webp")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(s.MapImages[idx])
	default:
		http.NotFound(w, r)
	}
}

func (s *ServerContext) solutionIndex(raw string) (int, bool) {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= len(s.Analysis.Solutions) {
		return 0, false
	}
	return idx, true
}

// Routes registers all handlers on a mux.
func (s *ServerContext) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleIndex)
	mux.HandleFunc("/api/solutions", s.HandleSolutionsList)
	mux.HandleFunc("/api/solutions/", s.HandleSolution)
	mux.HandleFunc("/solutions/", s.HandleSolutionAsset)
	return mux
}
