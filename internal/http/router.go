// Package http assembles the public API surface.
package http

import (
	nethttp "net/http"

	"legalnav-api/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Root)
	mux.HandleFunc("/api/v1/health", handler.Health)
	mux.HandleFunc("/api/v1/cases/search", handler.SearchCases)
	mux.HandleFunc("/api/v1/cases/search-with-attorneys", handler.SearchAttorneys)
	mux.HandleFunc("/api/v1/attorneys/verify", handler.VerifyAttorney)
	mux.HandleFunc("/api/v1/jurisdictions", handler.Jurisdictions)
	mux.HandleFunc("/api/v1/states", handler.States)
	return mux
}
