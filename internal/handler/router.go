package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shareup-app/shareup/internal/middleware"
)

func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Gzip)

	r.Route("/api", func(r chi.Router) {
		r.Post("/short-url", h.ShortenHandler)
		r.Post("/upload", h.UploadHandler)
	})

	r.Get("/files/*", h.FileHandler)
	r.Get("/ping", h.PingHandler)
	r.Get("/{shortID}", h.RedirectHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return r
}
