package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devhussain7/medium-api/internal/domain"
	"github.com/devhussain7/medium-api/internal/store"
)

// PostService provides author-scoped blog post operations.
type PostService interface {
	// CreatePost creates a post owned by the given author and returns it
	// with the store-assigned id.
	CreatePost(ctx context.Context, authorID int64, title, content string) (*domain.Post, error)

	// UpdatePost modifies the given post's title and/or content, but only
	// when the post is owned by authorID. Nil fields are left unchanged.
	// Returns store.ErrPostNotFound when no row matches (id, authorID).
	UpdatePost(ctx context.Context, authorID, id int64, update store.PostUpdate) (*domain.Post, error)

	// ListPosts returns all posts, unordered and unpaginated.
	ListPosts(ctx context.Context) ([]*domain.Post, error)

	// GetPost fetches a single post by id.
	// Returns store.ErrPostNotFound when it does not exist.
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
}

// PostServiceImpl implements the PostService interface
type PostServiceImpl struct {
	postStore store.PostStore
	logger    *slog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postStore store.PostStore, logger *slog.Logger) *PostServiceImpl {
	return &PostServiceImpl{
		postStore: postStore,
		logger:    logger.With("component", "post_service"),
	}
}

// CreatePost creates a post owned by the given author.
func (s *PostServiceImpl) CreatePost(
	ctx context.Context,
	authorID int64,
	title, content string,
) (*domain.Post, error) {
	post, err := domain.NewPost(authorID, title, content)
	if err != nil {
		s.logger.Debug("post creation rejected by domain validation",
			"error", err,
			"author_id", authorID)
		return nil, err
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post",
			"error", err,
			"author_id", authorID)
		return nil, err
	}

	return post, nil
}

// UpdatePost applies the author-scoped update.
func (s *PostServiceImpl) UpdatePost(
	ctx context.Context,
	authorID, id int64,
	update store.PostUpdate,
) (*domain.Post, error) {
	post, err := s.postStore.Update(ctx, id, authorID, update)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.logger.Debug("update matched no post",
				"post_id", id,
				"author_id", authorID)
			return nil, err
		}
		s.logger.Error("failed to update post",
			"error", err,
			"post_id", id,
			"author_id", authorID)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// ListPosts returns every post.
func (s *PostServiceImpl) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.postStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list posts", "error", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost fetches a single post by id.
func (s *PostServiceImpl) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			s.logger.Debug("post not found", "post_id", id)
			return nil, err
		}
		s.logger.Error("failed to get post", "error", err, "post_id", id)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Ensure PostServiceImpl implements PostService
var _ PostService = (*PostServiceImpl)(nil)
