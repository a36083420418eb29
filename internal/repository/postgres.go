package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shareup-app/shareup/internal/migrations"
	"github.com/shareup-app/shareup/internal/models"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

func NewPostgresRepository(ctx context.Context, dsn string) (*PostgresRepository, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := migrations.RunUp(dsn); err != nil {
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresRepository{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// SaveLink inserts a new mapping record. The primary key on short_id is
// authoritative for uniqueness: a unique violation surfaces as
// ErrShortIDTaken so the caller can regenerate the identifier.
func (p *PostgresRepository) SaveLink(ctx context.Context, shortID, originalURL string) error {
	query, args, err := p.sb.
		Insert("short_urls").
		Columns("short_id", "original_url").
		Values(shortID, originalURL).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrShortIDTaken
		}
		return fmt.Errorf("execute query: %w", err)
	}

	return nil
}

func (p *PostgresRepository) GetOriginalURL(ctx context.Context, shortID string) (string, error) {
	query, args, err := p.sb.
		Select("original_url").
		From("short_urls").
		Where(squirrel.Eq{"short_id": shortID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	var originalURL string
	err = p.pool.QueryRow(ctx, query, args...).Scan(&originalURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("query row: %w", err)
	}

	return originalURL, nil
}

func (p *PostgresRepository) SaveBlob(ctx context.Context, blob models.Blob) error {
	query, args, err := p.sb.
		Insert("blobs").
		Columns("id", "path", "content_type", "data").
		Values(blob.ID, blob.Path, blob.ContentType, blob.Data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrPathTaken
		}
		return fmt.Errorf("execute query: %w", err)
	}

	return nil
}

func (p *PostgresRepository) GetBlob(ctx context.Context, path string) (models.Blob, error) {
	query, args, err := p.sb.
		Select("id", "path", "content_type", "data", "created_at").
		From("blobs").
		Where(squirrel.Eq{"path": path}).
		ToSql()
	if err != nil {
		return models.Blob{}, fmt.Errorf("build query: %w", err)
	}

	var blob models.Blob
	err = p.pool.QueryRow(ctx, query, args...).Scan(
		&blob.ID,
		&blob.Path,
		&blob.ContentType,
		&blob.Data,
		&blob.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Blob{}, ErrNotFound
		}
		return models.Blob{}, fmt.Errorf("query row: %w", err)
	}

	return blob, nil
}

func (p *PostgresRepository) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresRepository) Close() error {
	p.pool.Close()
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
