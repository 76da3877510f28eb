package mocks

import (
	"context"
	"database/sql"

	"github.com/devhussain7/medium-api/internal/domain"
	"github.com/devhussain7/medium-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, post *domain.Post) error
	UpdateFn  func(ctx context.Context, id, authorID int64, update store.PostUpdate) (*domain.Post, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Post, error)
	ListFn    func(ctx context.Context) ([]*domain.Post, error)

	// Data for the default implementation
	Posts      map[int64]*domain.Post
	NextPostID int64

	// Call counters for asserting interaction (or its absence)
	CreateCalls int
	UpdateCalls int
}

// NewMockPostStore creates a new mock store with initialized defaults
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{
		Posts:      make(map[int64]*domain.Post),
		NextPostID: 1,
	}
}

// Ensure MockPostStore implements store.PostStore
var _ store.PostStore = (*MockPostStore)(nil)

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	post.ID = m.NextPostID
	m.NextPostID++
	copied := *post
	m.Posts[post.ID] = &copied
	return nil
}

// Update implements the PostStore interface. Like the real store, it only
// touches a row matching both id and authorID.
func (m *MockPostStore) Update(
	ctx context.Context,
	id, authorID int64,
	update store.PostUpdate,
) (*domain.Post, error) {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, authorID, update)
	}

	post, exists := m.Posts[id]
	if !exists || post.AuthorID != authorID {
		return nil, store.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	copied := *post
	return &copied, nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

// List implements the PostStore interface
func (m *MockPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	posts := make([]*domain.Post, 0, len(m.Posts))
	for _, post := range m.Posts {
		copied := *post
		posts = append(posts, &copied)
	}
	return posts, nil
}

// WithTx implements the PostStore interface; the mock ignores transactions.
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}
