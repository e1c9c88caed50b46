// Package report renders the printable HTML compliance report.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/planner"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/units"
	"github.com/Mohammad-Negahdary/Fire-Extinguisher-Planner/internal/update"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

const reportCSS = `
body { font-family: 'Segoe UI', Arial, sans-serif; color: #333; line-height: 1.6; background-color: #fff; }
.container { width: 100%; max-width: 800px; margin: 0 auto; }
h1 { color: #2c3e50; border-bottom: 3px solid #3498db; padding-bottom: 10px; margin-top: 0; font-size: 22pt; }
h2 { color: #2c3e50; margin-top: 25px; font-size: 14pt; background-color: #ecf0f1; padding: 8px; border-left: 5px solid #3498db; page-break-after: avoid; }
h3 { font-size: 12pt; color: #2c3e50; margin-top: 20px; }
.meta-box { background-color: #f8f9fa; border: 1px solid #e0e0e0; padding: 15px; margin-bottom: 20px; font-size: 11pt; color: #2c3e50; }
.meta-row { margin-bottom: 5px; }
.warning-box { background-color: #ffebee; border: 1px solid #ef9a9a; color: #c62828; padding: 10px; margin: 15px 0; font-weight: bold; font-size: 12pt; text-align: center; }
.success-box { background-color: #e8f5e9; border: 1px solid #a5d6a7; color: #2e7d32; padding: 10px; margin: 15px 0; font-weight: bold; font-size: 12pt; text-align: center; }
table { width: 100%; border-collapse: collapse; margin-top: 10px; font-size: 11pt; page-break-inside: avoid; }
th { background-color: #34495e; color: white; text-align: left; padding: 8px; border: 1px solid #bdc3c7; }
td { border: 1px solid #bdc3c7; padding: 8px; color: #000; }
tr:nth-child(even) { background-color: #f2f2f2; }
.footer { margin-top: 40px; font-size: 9pt; text-align: center; border-top: 1px solid #999; padding-top: 10px; color: #7f8c8d; }
.map-container { text-align: center; margin-top: 20px; border: 1px solid #ddd; padding: 10px; page-break-inside: avoid; }
img { max-width: 100%; height: auto; }
`

const reportTemplate = `<html>
<head><style>{{.CSS}}</style></head>
<body>
<div class="container">
	<h1>Fire Extinguisher Planner Report</h1>

	<div class="meta-box">
		<div class="meta-row"><strong>Project Name:</strong> {{.Project}}</div>
		<div class="meta-row"><strong>Date Generated:</strong> {{.Timestamp}}</div>
		<div class="meta-row"><strong>Standard Reference:</strong> NFPA 10 (2022 Edition)</div>
		<div class="meta-row"><strong>Selected Configuration:</strong> {{.OptionName}}</div>
		<div class="meta-row"><strong>Software Version:</strong> {{.Version}}</div>
	</div>

	{{if .Warnings}}<div class="warning-box">⚠️ NON-COMPLIANT: ISSUES DETECTED</div>
	<ul>{{range .Warnings}}<li>{{.}}</li>{{end}}</ul>
	{{else}}<div class="success-box">✅ COMPLIANT: DESIGN MEETS CRITERIA</div>{{end}}

	<h2>1. Facility &amp; Hazard Definition</h2>
	<table>
		<tr><th width="40%">Parameter</th><th>Value</th></tr>
		<tr><td>Hazard Classification</td><td>{{.HazardClass}}</td></tr>
		<tr><td>Hazard Type</td><td>{{.HazardType}}</td></tr>
		<tr><td>Extinguisher Model/Rating</td><td>{{.Rating}}</td></tr>
		<tr><td>Calculated Floor Area</td><td>{{printf "%.2f" .Area}} {{.AreaLabel}}</td></tr>
	</table>

	<h2>2. Compliance Calculations</h2>
	<table>
		<tr><th>Metric</th><th>Result</th><th>NFPA 10 Limit</th></tr>
		<tr><td>Max Travel Distance</td><td>{{printf "%.2f" .TravelDistance}} {{.DistLabel}}</td><td>Max {{printf "%.2f" .TravelDistance}} {{.DistLabel}}</td></tr>
		<tr><td>Design Radius (Safety Factor {{.SafetyFactor}})</td><td>{{printf "%.2f" .DesignRadius}} {{.DistLabel}}</td><td>(Used for Layout)</td></tr>
		<tr><td>Units Required by Area Rule</td><td>{{.QuantityByArea}}</td><td>Ref: 6.2.1.2.1</td></tr>
		<tr><td>Units Required by Travel Dist</td><td>{{.QuantityByDistance}}</td><td>Ref: Annex E</td></tr>
		<tr><td><strong>TOTAL RECOMMENDED</strong></td><td><strong>{{.FinalQuantity}}</strong></td><td>-</td></tr>
	</table>

	{{if .MapRef}}<div class="map-container"><h3>3. Coverage Map</h3><img src="{{.MapRef}}" width="600"></div>{{end}}

	<div class="footer">Generated by Fire Extinguisher Planner v{{.Version}}</div>
</div>
</body>
</html>`

type pageData struct {
	CSS                template.CSS
	Project            string
	Timestamp          string
	OptionName         string
	Version            string
	Warnings           []string
	HazardClass        string
	HazardType         string
	Rating             string
	Area               float64
	AreaLabel          string
	TravelDistance     float64
	DesignRadius       float64
	DistLabel          string
	SafetyFactor       float64
	QuantityByArea     int
	QuantityByDistance int
	FinalQuantity      int
	MapRef             string
}

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Generate renders the minified HTML report for one solution of an
// analysis. mapRef, when non-empty, is the relative URL or path of the
// coverage-map image to embed.
func Generate(a *planner.Analysis, solution int, mapRef string) ([]byte, error) {
	if solution < 0 || solution >= len(a.Solutions) {
		return nil, fmt.Errorf("solution index %d out of range", solution)
	}

	sys := a.Project.System()
	data := pageData{
		CSS:                template.CSS(reportCSS),
		Project:            a.Project.Name,
		Timestamp:          time.Now().Format("2006-01-02 15:04:05"),
		OptionName:         a.Solutions[solution].Name,
		Version:            update.Version,
		Warnings:           a.SolutionWarnings(solution),
		HazardClass:        a.Project.Hazard.Class,
		HazardType:         a.Project.Hazard.Type,
		Rating:             a.Project.Hazard.Rating,
		Area:               units.FromSquareFeet(sys, a.AreaSqFt),
		AreaLabel:          units.AreaLabel(sys),
		TravelDistance:     units.FromFeet(sys, a.Requirement.TravelDistance),
		DesignRadius:       units.FromFeet(sys, a.EffectiveRadius()),
		DistLabel:          units.DistanceLabel(sys),
		SafetyFactor:       a.Project.SafetyFactor,
		QuantityByArea:     a.Requirement.MinQuantityByArea,
		QuantityByDistance: a.QuantityByDistance(solution),
		FinalQuantity:      a.FinalQuantity(solution),
		MapRef:             mapRef,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)

	out, err := m.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, err
	}
	return out, nil
}
