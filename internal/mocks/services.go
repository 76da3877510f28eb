package mocks

import (
	"context"

	"github.com/devhussain7/medium-api/internal/domain"
	"github.com/devhussain7/medium-api/internal/service"
	"github.com/devhussain7/medium-api/internal/store"
)

// MockUserService implements service.UserService for testing handlers.
type MockUserService struct {
	SignupFn func(ctx context.Context, username, name, password string) (*service.AuthResult, error)
	SigninFn func(ctx context.Context, username, password string) (*service.AuthResult, error)

	SignupCalls int
	SigninCalls int
}

// Ensure MockUserService implements service.UserService
var _ service.UserService = (*MockUserService)(nil)

// Signup implements service.UserService.Signup
func (m *MockUserService) Signup(
	ctx context.Context,
	username, name, password string,
) (*service.AuthResult, error) {
	m.SignupCalls++
	if m.SignupFn != nil {
		return m.SignupFn(ctx, username, name, password)
	}
	return &service.AuthResult{UserID: 1, Token: "mock-token"}, nil
}

// Signin implements service.UserService.Signin
func (m *MockUserService) Signin(
	ctx context.Context,
	username, password string,
) (*service.AuthResult, error) {
	m.SigninCalls++
	if m.SigninFn != nil {
		return m.SigninFn(ctx, username, password)
	}
	return &service.AuthResult{UserID: 1, Token: "mock-token"}, nil
}

// MockPostService implements service.PostService for testing handlers.
type MockPostService struct {
	CreatePostFn func(ctx context.Context, authorID int64, title, content string) (*domain.Post, error)
	UpdatePostFn func(ctx context.Context, authorID, id int64, update store.PostUpdate) (*domain.Post, error)
	ListPostsFn  func(ctx context.Context) ([]*domain.Post, error)
	GetPostFn    func(ctx context.Context, id int64) (*domain.Post, error)

	CreatePostCalls int
	UpdatePostCalls int
}

// Ensure MockPostService implements service.PostService
var _ service.PostService = (*MockPostService)(nil)

// CreatePost implements service.PostService.CreatePost
func (m *MockPostService) CreatePost(
	ctx context.Context,
	authorID int64,
	title, content string,
) (*domain.Post, error) {
	m.CreatePostCalls++
	if m.CreatePostFn != nil {
		return m.CreatePostFn(ctx, authorID, title, content)
	}
	return &domain.Post{ID: 1, Title: title, Content: content, AuthorID: authorID}, nil
}

// UpdatePost implements service.PostService.UpdatePost
func (m *MockPostService) UpdatePost(
	ctx context.Context,
	authorID, id int64,
	update store.PostUpdate,
) (*domain.Post, error) {
	m.UpdatePostCalls++
	if m.UpdatePostFn != nil {
		return m.UpdatePostFn(ctx, authorID, id, update)
	}
	return &domain.Post{ID: id, AuthorID: authorID}, nil
}

// ListPosts implements service.PostService.ListPosts
func (m *MockPostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	if m.ListPostsFn != nil {
		return m.ListPostsFn(ctx)
	}
	return []*domain.Post{}, nil
}

// GetPost implements service.PostService.GetPost
func (m *MockPostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetPostFn != nil {
		return m.GetPostFn(ctx, id)
	}
	return nil, store.ErrPostNotFound
}
