package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
)

// dashboardTopDistricts is how many ranked districts the page lists.
const dashboardTopDistricts = 10

// dashboardView is the part of a summary document the HTML page shows.
type dashboardView struct {
	Validation         dashboardValidation       `json:"validation"`
	TotalEnrolments    int64                     `json:"totalEnrolments"`
	TotalUpdates       int64                     `json:"totalUpdates"`
	BiometricUpdates   int64                     `json:"biometricUpdates"`
	DemographicUpdates int64                     `json:"demographicUpdates"`
	StateCounts        *core.OrderedMap[int64]   `json:"stateCounts"`
	DistrictScores     *core.OrderedMap[float64] `json:"district_scores"`
	Insights           dashboardInsights         `json:"insights"`
}

type dashboardValidation struct {
	Status string   `json:"status"`
	Issues []string `json:"issues"`
}

type dashboardInsights struct {
	ExecutiveSummary string   `json:"executive_summary"`
	KeyFindings      []string `json:"key_findings"`
	Recommendations  []string `json:"recommendations"`
}

func decodeView(doc []byte) (*dashboardView, error) {
	var v dashboardView
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &v, nil
}

// handleDashboard renders the latest analysis, or the batch summary when no
// analysis has been run on this server.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if a, ok := s.lookup(latestKey); ok {
		s.renderDashboard(w, r, "Latest analysis "+a.ID, a.Summary)
		return
	}

	doc, err := os.ReadFile(s.cfg.Output.Path)
	if errors.Is(err, os.ErrNotExist) {
		templ.Handler(dashboardPage("UIDAI enrolment dashboard", nil)).ServeHTTP(w, r)
		return
	}
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.renderDashboard(w, r, "UIDAI enrolment dashboard", doc)
}

// handleAnalysisPage renders one cached analysis.
func (s *Server) handleAnalysisPage(w http.ResponseWriter, r *http.Request) {
	a, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, r, errAnalysisNotFound, http.StatusNotFound)
		return
	}
	s.renderDashboard(w, r, "Analysis "+a.ID, a.Summary)
}

func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request, title string, doc []byte) {
	view, err := decodeView(doc)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	templ.Handler(dashboardPage(title, view)).ServeHTTP(w, r)
}

// dashboardPage renders the KPI page. A nil view renders the empty state.
func dashboardPage(title string, v *dashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{w: w, num: message.NewPrinter(language.MustParse("en-IN"))}

		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		p.text(title)
		p.raw(`</title><style>body{font-family:sans-serif;margin:2rem;color:#222}` +
			`.kpis{display:flex;gap:1rem;flex-wrap:wrap}.kpi{border:1px solid #ccc;border-radius:6px;padding:1rem;min-width:12rem}` +
			`.kpi b{display:block;font-size:1.6rem}table{border-collapse:collapse}td,th{padding:.25rem .75rem;border-bottom:1px solid #eee;text-align:left}` +
			`.PASS{color:#1a7f37}.PASS_WITH_WARNINGS{color:#9a6700}.FAIL{color:#cf222e}</style></head><body><h1>`)
		p.text(title)
		p.raw(`</h1>`)

		if v == nil {
			p.raw(`<p>No summary is available yet. Run the processor or POST files to <code>/api/analyze</code>.</p></body></html>`)
			return p.err
		}

		p.raw(`<p>Validation: <strong class="`)
		p.text(v.Validation.Status)
		p.raw(`">`)
		p.text(v.Validation.Status)
		p.raw(`</strong></p><div class="kpis">`)
		p.kpi("Total enrolments", v.TotalEnrolments)
		p.kpi("Total updates", v.TotalUpdates)
		p.kpi("Biometric updates", v.BiometricUpdates)
		p.kpi("Demographic updates", v.DemographicUpdates)
		p.raw(`</div>`)

		if v.Insights.ExecutiveSummary != "" {
			p.raw(`<h2>Summary</h2><p>`)
			p.text(v.Insights.ExecutiveSummary)
			p.raw(`</p>`)
		}
		p.list("Key findings", v.Insights.KeyFindings)
		p.list("Recommendations", v.Insights.Recommendations)

		if v.DistrictScores.Len() > 0 {
			p.raw(`<h2>District readiness</h2><table><tr><th>District</th><th>Score</th></tr>`)
			for i, d := range v.DistrictScores.Keys() {
				if i == dashboardTopDistricts {
					break
				}
				score, _ := v.DistrictScores.Get(d)
				p.raw(`<tr><td>`)
				p.text(d)
				p.raw(`</td><td>`)
				p.text(p.num.Sprintf("%.1f", score))
				p.raw(`</td></tr>`)
			}
			p.raw(`</table>`)
		}

		if v.StateCounts.Len() > 0 {
			p.raw(`<h2>Activity by state</h2><table><tr><th>State</th><th>Records</th></tr>`)
			v.StateCounts.Each(func(state string, n int64) {
				p.raw(`<tr><td>`)
				p.text(state)
				p.raw(`</td><td>`)
				p.text(p.num.Sprintf("%d", n))
				p.raw(`</td></tr>`)
			})
			p.raw(`</table>`)
		}

		p.list("Validation issues", v.Validation.Issues)
		p.raw(`</body></html>`)
		return p.err
	})
}

// page writes HTML fragments, keeping the first write error.
type page struct {
	w   io.Writer
	num *message.Printer
	err error
}

func (p *page) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *page) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *page) kpi(label string, n int64) {
	p.raw(`<div class="kpi">`)
	p.text(label)
	p.raw(`<b>`)
	p.text(p.num.Sprintf("%d", n))
	p.raw(`</b></div>`)
}

func (p *page) list(heading string, items []string) {
	if len(items) == 0 {
		return
	}
	p.raw(`<h2>`)
	p.text(heading)
	p.raw(`</h2><ul>`)
	for _, item := range items {
		p.raw(`<li>`)
		p.text(item)
		p.raw(`</li>`)
	}
	p.raw(`</ul>`)
}
