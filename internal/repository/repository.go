package repository

import (
	"context"
	"errors"

	"github.com/shareup-app/shareup/internal/models"
)

var (
	// ErrNotFound is returned when no record exists for the requested key.
	ErrNotFound = errors.New("not found")
	// ErrShortIDTaken is returned when an insert loses the race for a short ID.
	ErrShortIDTaken = errors.New("short id already taken")
	// ErrPathTaken is returned when a blob path is already occupied.
	ErrPathTaken = errors.New("blob path already taken")
)

// LinkStore owns the shortID -> originalURL mapping. Records are insert-only:
// no update or delete exists.
type LinkStore interface {
	SaveLink(ctx context.Context, shortID, originalURL string) error
	GetOriginalURL(ctx context.Context, shortID string) (string, error)
	Ping(ctx context.Context) error
}

// BlobStore holds uploaded payloads keyed by their public path.
type BlobStore interface {
	SaveBlob(ctx context.Context, blob models.Blob) error
	GetBlob(ctx context.Context, path string) (models.Blob, error)
}
