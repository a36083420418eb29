package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shareup-app/shareup/internal/repository"
)

// FileHandler handles GET /files/* and serves stored payloads publicly.
// Object paths contain slashes, so the route uses a wildcard parameter.
func (h *Handler) FileHandler(rw http.ResponseWriter, r *http.Request) {
	objectPath := chi.URLParam(r, "*")
	if objectPath == "" {
		h.writeError(rw, http.StatusNotFound, "File not found")
		return
	}

	blob, err := h.files.GetFile(r.Context(), objectPath)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.writeError(rw, http.StatusNotFound, "File not found")
			return
		}

		h.logger.Error("File fetch failed",
			zap.String("path", objectPath),
			zap.Error(err),
		)
		h.writeError(rw, http.StatusInternalServerError, "Failed to fetch file")
		return
	}

	rw.Header().Set("Content-Type", blob.ContentType)
	rw.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	rw.Header().Set("Cache-Control", "public, max-age=3600")
	rw.WriteHeader(http.StatusOK)
	rw.Write(blob.Data)
}
