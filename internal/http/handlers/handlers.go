package handlers

import (
	"bytes"
	"context"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/http/requestutil"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/logging"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/metrics"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/render"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/store"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/sweeper"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/view"
)

const (
	defaultRenderWait = 2 * time.Second
	refreshAfter      = time.Second
	viewParam         = "view"
)

// ViewRegistry holds mounted views that are still loading between requests.
type ViewRegistry interface {
	Put(v *view.View)
	Get(id string) (*view.View, bool)
	Delete(id string) bool
}

// Config groups the collaborators a Handler needs.
type Config struct {
	Loader     providers.TeamMatchesProvider
	Views      ViewRegistry
	Renderer   *render.Renderer
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	RenderWait time.Duration
	StatusFn   func() sweeper.Status
}

// Handler wires HTTP routes to team views.
type Handler struct {
	loader     providers.TeamMatchesProvider
	views      ViewRegistry
	renderer   *render.Renderer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	renderWait time.Duration
	statusFn   func() sweeper.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(cfg Config) *Handler {
	wait := cfg.RenderWait
	if wait <= 0 {
		wait = defaultRenderWait
	}
	views := cfg.Views
	if views == nil {
		views = store.NewViewStore()
	}
	return &Handler{
		loader:     cfg.Loader,
		views:      views,
		renderer:   cfg.Renderer,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		renderWait: wait,
		statusFn:   cfg.StatusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.loader == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "provider not configured", h.logger)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "view sweeper not running", h.logger)
}

// Home lists the teams.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	var buf bytes.Buffer
	if err := h.renderer.Home(&buf, matches.KnownTeams); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "render home failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "render failed", h.logger)
		return
	}
	writeHTML(w, nethttp.StatusOK, buf.Bytes(), h.logger)
}

// TeamMatches mounts a view for the team (or re-attaches to a loading one via
// ?view=) and renders whatever state it reaches within the render wait.
// Clients asking for JSON only get the API response.
func (h *Handler) TeamMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if requestutil.WantsJSON(r) {
		h.TeamMatchesAPI(w, r)
		return
	}
	teamID := mux.Vars(r)["id"]
	logger := loggerFromContext(r, h.logger)

	v := h.attach(r.URL.Query().Get(viewParam), teamID)
	if v == nil {
		v = h.mount(r.Context(), teamID)
	}

	waitCtx, cancel := context.WithTimeout(r.Context(), h.renderWait)
	state := v.Wait(waitCtx)
	cancel()

	snap := v.Snapshot()
	opts := render.PageOptions{BackURL: backPath(teamID)}
	switch {
	case h.park(v, state):
		opts.RefreshURL = teamPath(teamID) + "?" + viewParam + "=" + url.QueryEscape(v.ID())
		opts.RefreshAfter = refreshAfter
	case !state.Settled():
		// Swept while waiting; the refresh mounts a fresh view.
		h.release(v)
		opts.RefreshURL = teamPath(teamID)
		opts.RefreshAfter = refreshAfter
	default:
		h.release(v)
	}

	var buf bytes.Buffer
	if err := h.renderer.TeamMatches(&buf, snap, opts); err != nil {
		logging.Error(logger, "render team matches failed", err, slog.String(logging.FieldViewID, v.ID()))
		writeError(w, r, nethttp.StatusInternalServerError, "render failed", h.logger)
		return
	}
	logging.Info(logger, "rendered team matches",
		slog.String(logging.FieldTeamID, teamID),
		slog.String(logging.FieldViewID, v.ID()),
		slog.String(logging.FieldState, state.String()),
	)
	writeHTML(w, nethttp.StatusOK, buf.Bytes(), h.logger)
}

// Back redirects to the root route. The control only renders on settled
// pages, whose views are already released.
func (h *Handler) Back(w nethttp.ResponseWriter, r *nethttp.Request) {
	view.Back(redirectNavigator{w: w, r: r})
}

// TeamMatchesAPI returns the team view-model as JSON once the fetch settles.
func (h *Handler) TeamMatchesAPI(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID := mux.Vars(r)["id"]
	v := h.mount(r.Context(), teamID)
	defer v.Destroy()

	state := v.Wait(r.Context())
	switch state {
	case view.StateLoaded:
		writeJSON(w, nethttp.StatusOK, newTeamMatchesResponse(v.Snapshot()), h.logger)
	case view.StateFailed:
		writeProviderError(w, r, v.Err(), h.logger)
	default:
		writeError(w, r, nethttp.StatusGatewayTimeout, "request ended before team matches loaded", h.logger)
	}
}

// NotFound writes a JSON 404.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed writes a JSON 405.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) mount(ctx context.Context, teamID string) *view.View {
	v := view.New(teamID, h.loader, view.WithLogger(h.logger), view.WithMetrics(h.metrics))
	v.Mount(ctx)
	return v
}

// attach finds a live registered view for the same team.
func (h *Handler) attach(viewID, teamID string) *view.View {
	if viewID == "" {
		return nil
	}
	v, ok := h.views.Get(viewID)
	if !ok || v.TeamID() != teamID || v.Destroyed() {
		return nil
	}
	return v
}

// park registers a still-loading view so a refresh can re-attach to it. It
// reports false for settled views and for views destroyed during the wait.
func (h *Handler) park(v *view.View, state view.State) bool {
	if state.Settled() || v.Destroyed() {
		return false
	}
	h.views.Put(v)
	return true
}

func (h *Handler) release(v *view.View) {
	h.views.Delete(v.ID())
	v.Destroy()
}

type redirectNavigator struct {
	w nethttp.ResponseWriter
	r *nethttp.Request
}

func (n redirectNavigator) Navigate(path string) {
	nethttp.Redirect(n.w, n.r, path, nethttp.StatusSeeOther)
}

func teamPath(teamID string) string {
	return "/team-matches/" + url.PathEscape(teamID)
}

func backPath(teamID string) string {
	return teamPath(teamID) + "/back"
}
