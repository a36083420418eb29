package handler

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/shareup-app/shareup/internal/models"
	"github.com/shareup-app/shareup/internal/service"
)

// UploadHandler handles POST /api/upload: it stores the multipart "file"
// payload, then runs the same share chain the web client does — public URL,
// short link, QR rendering URL — and returns all three.
func (h *Handler) UploadHandler(rw http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(rw, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(rw, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		h.writeError(rw, http.StatusBadRequest, "File not provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(rw, http.StatusBadRequest, "File not provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(rw, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		h.logger.Error("Failed to read upload", zap.Error(err))
		h.writeError(rw, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	objectPath, err := h.files.SaveFile(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFile) {
			h.writeError(rw, http.StatusBadRequest, "File not provided")
			return
		}
		h.writeError(rw, http.StatusInternalServerError, "Database error")
		return
	}

	publicURL := baseURL(r) + "/files/" + objectPath

	shortID, err := h.shortener.CreateShortLink(r.Context(), publicURL)
	if err != nil {
		h.logger.Error("Failed to shorten public URL",
			zap.String("public_url", publicURL),
			zap.Error(err),
		)
		h.writeError(rw, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	shortURL := baseURL(r) + "/" + shortID

	h.writeJSON(rw, http.StatusOK, models.UploadResponse{
		PublicURL: publicURL,
		ShortURL:  shortURL,
		QRURL:     h.qr.ImageURL(shortURL),
	})
}
