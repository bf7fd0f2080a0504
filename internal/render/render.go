// Package render turns view snapshots into HTML pages.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"math"
	"strings"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/chart"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/presenter"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet tree rooted at "static".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	"join":        strings.Join,
	"statusClass": statusClass,
}

// Renderer executes the page templates.
type Renderer struct {
	home        *template.Template
	teamMatches *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	home, err := page(base, "home")
	if err != nil {
		return nil, err
	}
	teamMatches, err := page(base, "team-matches")
	if err != nil {
		return nil, err
	}
	return &Renderer{home: home, teamMatches: teamMatches}, nil
}

// page clones the shared set and binds the "content" slot to name.
func page(base *template.Template, name string) (*template.Template, error) {
	t, err := base.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone templates for %s: %w", name, err)
	}
	if _, err := t.New("content").Parse(`{{template "` + name + `" .}}`); err != nil {
		return nil, fmt.Errorf("bind content for %s: %w", name, err)
	}
	return t, nil
}

type homeData struct {
	Title      string
	RefreshURL string
	Teams      []matches.Team
}

// Home writes the team picker page.
func (r *Renderer) Home(w io.Writer, teams []matches.Team) error {
	return r.home.ExecuteTemplate(w, "layout", homeData{Title: "IPL Dashboard", Teams: teams})
}

// PageOptions carries the links a team page needs.
type PageOptions struct {
	BackURL      string
	RefreshURL   string // set while loading so the browser re-attaches to the same view
	RefreshAfter time.Duration
}

type teamMatchesData struct {
	Title          string
	RefreshURL     string
	RefreshSeconds int
	BackURL        string
	View           view.Snapshot
	Loading        bool
	Failed         bool
	Chart          chart.Chart
}

// TeamMatches writes the page for one view snapshot. While loading, the
// container holds nothing but the loader.
func (r *Renderer) TeamMatches(w io.Writer, snap view.Snapshot, opts PageOptions) error {
	data := teamMatchesData{
		Title:   "Team Matches",
		BackURL: opts.BackURL,
		View:    snap,
		Loading: snap.State == view.StateLoading,
		Failed:  snap.State == view.StateFailed,
	}
	if team, ok := matches.FindTeam(snap.TeamID); ok {
		data.Title = team.Name
	}
	if data.Loading && opts.RefreshURL != "" {
		data.RefreshURL = opts.RefreshURL
		data.RefreshSeconds = refreshSeconds(opts.RefreshAfter)
	}
	if snap.State == view.StateLoaded {
		c, err := chart.Donut(chartData(snap.Slices), chart.DefaultOptions())
		if err != nil {
			return err
		}
		data.Chart = c
	}
	return r.teamMatches.ExecuteTemplate(w, "layout", data)
}

func chartData(slices []presenter.Slice) []chart.Datum {
	out := make([]chart.Datum, 0, len(slices))
	for _, s := range slices {
		out = append(out, chart.Datum{Label: s.Label, Value: s.Value, Color: s.Color})
	}
	return out
}

func refreshSeconds(d time.Duration) int {
	if d <= 0 {
		return 1
	}
	return int(math.Ceil(d.Seconds()))
}

func statusClass(status string) string {
	switch status {
	case matches.StatusWon:
		return "status-won"
	case matches.StatusLost:
		return "status-lost"
	case matches.StatusDrawn:
		return "status-drawn"
	default:
		return "status-other"
	}
}
