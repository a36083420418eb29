package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shareup-app/shareup/internal/models"
	"github.com/shareup-app/shareup/internal/repository"
)

var ErrEmptyFile = errors.New("empty file")

type FileService struct {
	store  repository.BlobStore
	logger *zap.Logger
}

func NewFileService(store repository.BlobStore, logger *zap.Logger) *FileService {
	return &FileService{
		store:  store,
		logger: logger,
	}
}

// SaveFile stores an uploaded payload and returns its object path. Paths are
// decorated with a random suffix and the upload date, so a repeated filename
// never overwrites an earlier share.
func (f *FileService) SaveFile(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		f.logger.Warn("Attempt to save empty file", zap.String("filename", filename))
		return "", ErrEmptyFile
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		objectPath := buildObjectPath(filename)

		blob := models.Blob{
			ID:          uuid.NewString(),
			Path:        objectPath,
			ContentType: contentType,
			Data:        data,
		}

		err := f.store.SaveBlob(ctx, blob)
		if err == nil {
			return objectPath, nil
		}

		if errors.Is(err, repository.ErrPathTaken) {
			continue
		}

		f.logger.Error("Failed to save blob",
			zap.String("path", objectPath),
			zap.Error(err),
		)
		return "", fmt.Errorf("save blob: %w", err)
	}

	return "", ErrGenerateID
}

func (f *FileService) GetFile(ctx context.Context, objectPath string) (models.Blob, error) {
	blob, err := f.store.GetBlob(ctx, objectPath)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Blob{}, err
		}
		f.logger.Error("Failed to fetch blob",
			zap.String("path", objectPath),
			zap.Error(err),
		)
		return models.Blob{}, fmt.Errorf("get blob: %w", err)
	}

	return blob, nil
}

// buildObjectPath mirrors the naming the upload UI has always produced:
// "<base>-<3-digit suffix>-<YYYY-MM-DD><ext>" under public/.
func buildObjectPath(filename string) string {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(path.Base(filename), ext)
	if base == "" || base == "." {
		base = "file"
	}

	suffix := rand.Intn(900) + 100
	date := time.Now().Format("2006-01-02")

	return fmt.Sprintf("public/%s-%d-%s%s", base, suffix, date, ext)
}
