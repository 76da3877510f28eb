package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/devhussain7/medium-api/internal/domain"
	"github.com/devhussain7/medium-api/internal/platform/logger"
	"github.com/devhussain7/medium-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// It inserts a new post row owned by the post's author and assigns the
// store-generated ID. Returns store.ErrInvalidEntity if the author ID
// doesn't reference an existing user (foreign key violation).
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("author_id", post.AuthorID))
		return err
	}

	query := `
		INSERT INTO posts (title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		post.Title,
		post.Content,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.String("error", err.Error()),
				slog.Int64("author_id", post.AuthorID))
			return MapError(err)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.Int64("author_id", post.AuthorID))
		return MapError(err)
	}

	log.Info("post created successfully",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID))
	return nil
}

// Update implements store.PostStore.Update
// The WHERE clause matches on both id and author_id, so a caller who does
// not own the post can never mutate it; that case surfaces as
// store.ErrPostNotFound, not a forged success.
func (s *PostgresPostStore) Update(
	ctx context.Context,
	id, authorID int64,
	update store.PostUpdate,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE posts
		SET title = COALESCE($1, title),
		    content = COALESCE($2, content),
		    updated_at = $3
		WHERE id = $4 AND author_id = $5
		RETURNING id, title, content, author_id, created_at, updated_at
	`

	var post domain.Post
	err := s.db.QueryRowContext(
		ctx,
		query,
		update.Title,
		update.Content,
		time.Now().UTC(),
		id,
		authorID,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found or not owned by caller",
				slog.Int64("post_id", id),
				slog.Int64("author_id", authorID))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id),
			slog.Int64("author_id", authorID))
		return nil, MapError(err)
	}

	log.Info("post updated successfully",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID))
	return &post, nil
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, MapError(err)
	}

	return &post, nil
}

// List implements store.PostStore.List
// It returns every post with no ordering, filtering or pagination.
func (s *PostgresPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list posts",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			log.Error("failed to scan post row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating post rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return posts, nil
}

// WithTx implements store.PostStore.WithTx
// It returns a new store bound to the given transaction.
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}
