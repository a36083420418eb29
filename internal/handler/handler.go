package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/shareup-app/shareup/internal/models"
	"github.com/shareup-app/shareup/internal/qr"
	"github.com/shareup-app/shareup/internal/service"
)

type Handler struct {
	shortener      *service.ShortenerService
	files          *service.FileService
	qr             *qr.Builder
	logger         *zap.Logger
	maxUploadBytes int64
}

func NewHandler(
	shortener *service.ShortenerService,
	files *service.FileService,
	qrBuilder *qr.Builder,
	maxUploadBytes int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		shortener:      shortener,
		files:          files,
		qr:             qrBuilder,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// baseURL derives the externally visible origin from the inbound request.
// This is the sole base-URL strategy: nothing is hardcoded, so the service
// composes correct links behind any host name or reverse proxy.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host
}

func (h *Handler) writeJSON(rw http.ResponseWriter, statusCode int, v any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(statusCode)

	if err := json.NewEncoder(rw).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(rw http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(rw, statusCode, models.ErrorResponse{Error: message})
}
