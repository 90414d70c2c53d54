package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Index)
	mux.HandleFunc("/set_team", handler.SetTeam)
	mux.HandleFunc("/manual_trigger", handler.ManualTrigger)
	mux.HandleFunc("/trigger", handler.Trigger)
	mux.HandleFunc("/status", handler.Status)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	return mux
}
