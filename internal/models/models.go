package models

import "time"

type ShortenRequest struct {
	PublicURL string `json:"publicUrl"`
}

type ShortenResponse struct {
	ShortURL string `json:"shortUrl"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UploadResponse struct {
	PublicURL string `json:"publicUrl"`
	ShortURL  string `json:"shortUrl"`
	QRURL     string `json:"qrUrl"`
}

type ShortLink struct {
	ShortID     string    `db:"short_id"`
	OriginalURL string    `db:"original_url"`
	CreatedAt   time.Time `db:"created_at"`
}

type Blob struct {
	ID          string    `db:"id"`
	Path        string    `db:"path"`
	ContentType string    `db:"content_type"`
	Data        []byte    `db:"data"`
	CreatedAt   time.Time `db:"created_at"`
}
