package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/http/handlers"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/http/middleware"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/render"
)

// NewRouter registers page, API and probe routes. CORS applies to /api only.
func NewRouter(handler *handlers.Handler, corsOrigins []string) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Home).Methods(nethttp.MethodGet, nethttp.MethodHead)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/team-matches/{id}", handler.TeamMatches).Methods(nethttp.MethodGet)
	r.HandleFunc("/team-matches/{id}/back", handler.Back).Methods(nethttp.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CORS(corsOrigins))
	api.HandleFunc("/team-matches/{id}", handler.TeamMatchesAPI).Methods(nethttp.MethodGet, nethttp.MethodOptions)

	static := nethttp.StripPrefix("/static/", nethttp.FileServer(nethttp.FS(render.Static())))
	r.PathPrefix("/static/").Handler(static).Methods(nethttp.MethodGet, nethttp.MethodHead)

	return r
}
