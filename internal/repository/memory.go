package repository

import (
	"context"
	"sync"

	"github.com/shareup-app/shareup/internal/models"
)

// MemoryRepository keeps mappings and blobs in process memory. It is used
// when no database DSN is configured and throughout handler tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	links map[string]string
	blobs map[string]models.Blob
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		links: make(map[string]string),
		blobs: make(map[string]models.Blob),
	}
}

func (m *MemoryRepository) SaveLink(_ context.Context, shortID, originalURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[shortID]; exists {
		return ErrShortIDTaken
	}

	m.links[shortID] = originalURL
	return nil
}

func (m *MemoryRepository) GetOriginalURL(_ context.Context, shortID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	originalURL, exists := m.links[shortID]
	if !exists {
		return "", ErrNotFound
	}

	return originalURL, nil
}

func (m *MemoryRepository) SaveBlob(_ context.Context, blob models.Blob) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.blobs[blob.Path]; exists {
		return ErrPathTaken
	}

	m.blobs[blob.Path] = blob
	return nil
}

func (m *MemoryRepository) GetBlob(_ context.Context, path string) (models.Blob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, exists := m.blobs[path]
	if !exists {
		return models.Blob{}, ErrNotFound
	}

	return blob, nil
}

func (m *MemoryRepository) Ping(_ context.Context) error {
	return nil
}
