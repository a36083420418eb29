package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"

	"github.com/shareup-app/shareup/internal/repository"
)

var (
	ErrEmptyURL   = errors.New("empty url")
	ErrGenerateID = errors.New("failed to generate unique short id")
)

const (
	// shortIDLength matches the identifier space the service has always used:
	// 64^6 possible values.
	shortIDLength = 6

	// maxGenerateAttempts bounds regeneration when an insert loses the race
	// for a short ID. Collisions are statistically rare; hitting the bound
	// means the store is misbehaving, not that we ran out of identifiers.
	maxGenerateAttempts = 5
)

type ShortenerService struct {
	store    repository.LinkStore
	generate func() string
	logger   *zap.Logger
}

func NewShortenerService(store repository.LinkStore, logger *zap.Logger) (*ShortenerService, error) {
	generate, err := nanoid.Standard(shortIDLength)
	if err != nil {
		return nil, fmt.Errorf("create id generator: %w", err)
	}

	return &ShortenerService{
		store:    store,
		generate: generate,
		logger:   logger,
	}, nil
}

// CreateShortLink persists a mapping for originalURL and returns the short
// identifier. The store's unique constraint is authoritative: a collision
// surfaces as repository.ErrShortIDTaken and is retried with a fresh
// identifier up to maxGenerateAttempts. Any other store failure is terminal.
func (s *ShortenerService) CreateShortLink(ctx context.Context, originalURL string) (string, error) {
	if originalURL == "" {
		s.logger.Warn("Attempt to create short link for empty URL")
		return "", ErrEmptyURL
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		shortID := s.generate()

		err := s.store.SaveLink(ctx, shortID, originalURL)
		if err == nil {
			return shortID, nil
		}

		if errors.Is(err, repository.ErrShortIDTaken) {
			s.logger.Info("Short ID collision, regenerating",
				zap.String("short_id", shortID),
				zap.Int("attempt", attempt+1),
			)
			continue
		}

		s.logger.Error("Failed to save short link", zap.Error(err))
		return "", fmt.Errorf("save link: %w", err)
	}

	s.logger.Error("Exhausted short ID generation attempts",
		zap.Int("max_attempts", maxGenerateAttempts),
	)
	return "", ErrGenerateID
}

// ResolveShortLink looks up the original URL for shortID and normalizes its
// scheme: stored values without an explicit http prefix redirect over https.
func (s *ShortenerService) ResolveShortLink(ctx context.Context, shortID string) (string, error) {
	originalURL, err := s.store.GetOriginalURL(ctx, shortID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", err
		}
		s.logger.Error("Failed to look up short link",
			zap.String("short_id", shortID),
			zap.Error(err),
		)
		return "", fmt.Errorf("get original url: %w", err)
	}

	if !strings.HasPrefix(originalURL, "http") {
		originalURL = "https://" + originalURL
	}

	return originalURL, nil
}

func (s *ShortenerService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
