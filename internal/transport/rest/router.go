package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Practice  *PracticeHandler
	Dashboard *DashboardHandler
	Noun      *NounHandler
}

// NewRouter mounts the probes at the root and the API under /api. api wraps
// only the API routes, so probes bypass auth and rate limiting.
func NewRouter(h Handlers, api func(http.Handler) http.Handler) http.Handler {
	apiMux := http.NewServeMux()

	apiMux.HandleFunc("POST /api/practice/sessions", h.Practice.Start)
	apiMux.HandleFunc("GET /api/practice/sessions/active", h.Practice.Active)
	apiMux.HandleFunc("POST /api/practice/sessions/active/answers", h.Practice.Answer)
	apiMux.HandleFunc("POST /api/practice/sessions/active/sync", h.Practice.Sync)
	apiMux.HandleFunc("DELETE /api/practice/sessions/active", h.Practice.Abandon)

	apiMux.HandleFunc("GET /api/dashboard", h.Dashboard.Dashboard)
	apiMux.HandleFunc("GET /api/sessions/{id}", h.Dashboard.SessionDetails)

	apiMux.HandleFunc("GET /api/nouns", h.Noun.List)
	apiMux.HandleFunc("GET /api/nouns/categories", h.Noun.Categories)
	apiMux.HandleFunc("GET /api/nouns/{id}", h.Noun.Get)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)

	var apiHandler http.Handler = apiMux
	if api != nil {
		apiHandler = api(apiMux)
	}
	root.Handle("/api/", apiHandler)

	return root
}
