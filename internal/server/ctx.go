package server

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/planner"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/render"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/report"

	"github.com/rs/zerolog/log"
)

const indexTemplate = `<html>
<head><title>{{.Project}} — Fire Extinguisher Planner</title></head>
<body>
<h1>{{.Project}}</h1>
<p>Hazard: {{.HazardClass}} / {{.HazardType}}</p>
<ul>
{{range .Solutions}}
<li>
	<strong>{{.Name}}</strong> — {{.Quantity}} units{{if not .Covered}} (coverage gaps){{end}}:
	<a href="/solutions/{{.Index}}/report">report</a>,
	<a href="/solutions/{{.Index}}/map.webp">map</a>,
	<a href="/api/solutions/{{.Index}}">points</a>
</li>
{{end}}
</ul>
</body>
</html>`

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

// SolutionView is the summary of one layout exposed by the JSON API and
// the index page.
type SolutionView struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Covered  bool   `json:"covered"`
}

// ServerContext holds a computed analysis plus the pre-rendered
// artifacts served by the handlers.
type ServerContext struct {
	Analysis *planner.Analysis
	Views    []SolutionView

	IndexHTML []byte
	Reports   [][]byte
	MapImages [][]byte
}

// NewServerContext pre-renders every solution's report and coverage map
// so requests only ever serve bytes.
func NewServerContext(analysis *planner.Analysis) (*ServerContext, error) {
	log.Info().
		Str("project", analysis.Project.Name).
		Int("solutions", len(analysis.Solutions)).
		Msg("Initializing server context")

	ctx := &ServerContext{
		Analysis:  analysis,
		Views:     make([]SolutionView, len(analysis.Solutions)),
		Reports:   make([][]byte, len(analysis.Solutions)),
		MapImages: make([][]byte, len(analysis.Solutions)),
	}

	radius := analysis.EffectiveRadius()
	for i, sol := range analysis.Solutions {
		ctx.Views[i] = SolutionView{
			Index:    i,
			Name:     sol.Name,
			Quantity: analysis.FinalQuantity(i),
			Covered:  analysis.Covered[i],
		}

		html, err := report.Generate(analysis, i, fmt.Sprintf("/solutions/%d/map.webp", i))
		if err != nil {
			return nil, fmt.Errorf("report for %q: %w", sol.Name, err)
		}
		ctx.Reports[i] = html

		img, err := render.Map(analysis.Floor, sol.Points, radius)
		if err != nil {
			return nil, fmt.Errorf("map for %q: %w", sol.Name, err)
		}
		ctx.MapImages[i] = img

		log.Debug().
			Str("solution", sol.Name).
			Int("report_bytes", len(html)).
			Int("map_bytes", len(img)).
			Msg("Solution artifacts rendered")
	}

	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, struct {
		Project     string
		HazardClass string
		HazardType  string
		Solutions   []SolutionView
	}{
		Project:     analysis.Project.Name,
		HazardClass: analysis.Project.Hazard.Class,
		HazardType:  analysis.Project.Hazard.Type,
		Solutions:   ctx.Views,
	})
	if err != nil {
		return nil, err
	}
	ctx.IndexHTML = buf.Bytes()

	log.Info().Msg("Server context initialized successfully")

	return ctx, nil
}
