package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shareup-app/shareup/internal/repository"
)

// RedirectHandler handles GET /{shortID}. An unknown identifier is a 404; a
// failing store is a 500 so clients can tell absence from outage.
func (h *Handler) RedirectHandler(rw http.ResponseWriter, r *http.Request) {
	shortID := chi.URLParam(r, "shortID")
	if shortID == "" {
		h.writeError(rw, http.StatusNotFound, "Short URL not found")
		return
	}

	originalURL, err := h.shortener.ResolveShortLink(r.Context(), shortID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.writeError(rw, http.StatusNotFound, "Short URL not found")
			return
		}

		h.logger.Error("Redirect failed",
			zap.String("short_id", shortID),
			zap.Error(err),
		)
		h.writeError(rw, http.StatusInternalServerError, "Failed to redirect")
		return
	}

	http.Redirect(rw, r, originalURL, http.StatusFound)
}
