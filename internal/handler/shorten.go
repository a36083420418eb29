package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shareup-app/shareup/internal/models"
	"github.com/shareup-app/shareup/internal/service"
)

// ShortenHandler handles POST /api/short-url. The record is durably written
// before the short URL is returned: a client never observes a shortUrl that
// would not resolve.
func (h *Handler) ShortenHandler(rw http.ResponseWriter, r *http.Request) {
	var req models.ShortenRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil || req.PublicURL == "" {
		h.writeError(rw, http.StatusBadRequest, "Public URL not provided")
		return
	}

	shortID, err := h.shortener.CreateShortLink(r.Context(), req.PublicURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyURL):
			h.writeError(rw, http.StatusBadRequest, "Public URL not provided")
		case errors.Is(err, service.ErrGenerateID):
			h.writeError(rw, http.StatusInternalServerError, "Failed to create short URL")
		default:
			h.logger.Error("Store write failed", zap.Error(err))
			h.writeError(rw, http.StatusInternalServerError, "Database error")
		}
		return
	}

	h.writeJSON(rw, http.StatusOK, models.ShortenResponse{
		ShortURL: baseURL(r) + "/" + shortID,
	})
}
