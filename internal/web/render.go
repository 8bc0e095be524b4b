package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/ligafc/matchday/internal/league"
	"github.com/ligafc/matchday/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Render.
const (
	PageDashboard = "dashboard.html"
	PageTeams     = "teams.html"
	PageChallenge = "challenge.html"
	PageAdmin     = "admin.html"
)

var pages = []string{PageDashboard, PageTeams, PageChallenge, PageAdmin}

// Site holds the league-wide presentation settings.
type Site struct {
	Title  string
	Notice template.HTML
}

// Layout is embedded by every page model.
type Layout struct {
	Active    string
	Flashes   []session.Flash
	CSRFField template.HTML
}

// DashboardPage is the model of the dashboard view.
type DashboardPage struct {
	Layout
	Summary   league.Summary
	Confirmed []league.MatchRequest
	Teams     []league.Team
}

// TeamsPage is the model of the team registration view.
type TeamsPage struct {
	Layout
	Form   league.RegisterTeamInput
	Errors map[string]string
}

// ChallengePage is the model of the challenge request view.
type ChallengePage struct {
	Layout
	Opponents []string
	Form      league.ChallengeInput
	MinDate   string
	Errors    map[string]string
}

// AdminPage is the model of the admin view.
type AdminPage struct {
	Layout
	Pending []league.MatchRequest
}

// Renderer executes the embedded page templates.
type Renderer struct {
	site      Site
	templates map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer(site Site) (*Renderer, error) {
	funcMap := template.FuncMap{
		"leagueTitle":  func() string { return site.Title },
		"leagueNotice": func() template.HTML { return site.Notice },
		"label":        func(i int) int { return i + 1 },
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		templates[page] = tpl
	}

	return &Renderer{site: site, templates: templates}, nil
}

// Site returns the presentation settings the renderer was built with.
func (r *Renderer) Site() Site {
	return r.site
}

// Render writes the page with the given status. The page is buffered so a
// template failure still produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tpl, ok := r.templates[page]
	if !ok {
		slog.Error("unknown page template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "page", page, "error", err)
	}
}
