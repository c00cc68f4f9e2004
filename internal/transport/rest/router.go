package rest

import "net/http"

// NewRouter registers the resource API and the health probes on a new mux.
func NewRouter(resources *ResourceHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v0/resources", resources.Create)
	mux.HandleFunc("GET /v0/resources", resources.List)
	mux.HandleFunc("GET /v0/resources/{key}", resources.Get)
	mux.HandleFunc("PUT /v0/resources/{key}", resources.Update)
	mux.HandleFunc("PATCH /v0/resources/{key}", resources.Patch)
	mux.HandleFunc("DELETE /v0/resources/{key}", resources.Delete)
	mux.HandleFunc("GET /v0/resources/{key}/history", resources.History)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
