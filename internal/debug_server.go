package internal

import (
	"chat-uploads/observability"
	"chat-uploads/repositories"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// StartDebugServer exposes engine stats and the artifact index over plain
// HTTP for local inspection. Not meant to face anything but an operator.
func StartDebugServer(
	log *slog.Logger,
	port int,
	monitoring *observability.MonitoringManager,
	artifacts repositories.IArtifactRepository,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, monitoring.GetLatest())
	})

	mux.HandleFunc("/debug/artifacts", func(w http.ResponseWriter, r *http.Request) {
		digest := r.URL.Query().Get("digest")

		var (
			records any
			err     error
		)
		if digest != "" {
			records, err = artifacts.ListByDigest(digest)
		} else {
			records, err = artifacts.ListAll()
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, records)
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Debug server listening", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Debug server stopped", "error", err)
		}
	}()

	return server
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
