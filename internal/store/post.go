package store

import (
	"context"
	"database/sql"

	"github.com/devhussain7/medium-api/internal/domain"
)

// PostUpdate carries the mutable fields of a post update. Nil fields are
// left unchanged.
type PostUpdate struct {
	Title   *string
	Content *string
}

// PostStore defines the interface for blog post persistence.
type PostStore interface {
	// Create saves a new post to the store and assigns its ID.
	// Returns ErrInvalidEntity if the author does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// Update modifies the title and/or content of the post matching both
	// id and authorID, and returns the updated post. Matching on the pair
	// is what enforces ownership: a mismatched author can never mutate the
	// row. Returns ErrPostNotFound when no such row exists.
	Update(ctx context.Context, id, authorID int64, update PostUpdate) (*domain.Post, error)

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// List returns all posts, unordered and unpaginated.
	List(ctx context.Context) ([]*domain.Post, error)

	// WithTx returns a new PostStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) PostStore
}
