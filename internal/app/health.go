package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/orgball2608/serialcmd/internal/link"
	"github.com/orgball2608/serialcmd/pkg/config"
	"github.com/orgball2608/serialcmd/pkg/logger"
)

type healthServer struct {
	server *http.Server
	log    logger.Logger
}

func newHealthServer(log logger.Logger, cfg *config.Config, lnk *link.Link) *healthServer {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log, lnk)
	})

	return &healthServer{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.App.Port),
			Handler: mux,
		},
		log: log,
	}
}

func (h *healthServer) start() {
	h.log.Info(fmt.Sprintf("Starting health server on %s", h.server.Addr))

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.log.Error("Health server failed", "error", err)
	}
}

func (h *healthServer) stop(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, log logger.Logger, lnk *link.Link) {
	log.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")

	if lnk.Closed() {
		http.Error(w, "link closed", http.StatusServiceUnavailable)
		return
	}

	if _, err := w.Write([]byte("ok")); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
