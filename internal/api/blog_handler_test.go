package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devhussain7/medium-api/internal/api"
	"github.com/devhussain7/medium-api/internal/api/shared"
	"github.com/devhussain7/medium-api/internal/domain"
	"github.com/devhussain7/medium-api/internal/mocks"
	"github.com/devhussain7/medium-api/internal/store"
)

// authedRequest builds a request carrying an authenticated user id, the way
// the auth middleware would have left it.
func authedRequest(t *testing.T, method, target, body string, userID int64) *http.Request {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

// withPathParam attaches a chi route parameter to the request context.
func withPathParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestBlogHandler_CreateBlog(t *testing.T) {
	t.Parallel()

	t.Run("creates post for the authenticated author", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{
			CreatePostFn: func(ctx context.Context, authorID int64, title, content string) (*domain.Post, error) {
				assert.Equal(t, int64(7), authorID)
				assert.Equal(t, "T", title)
				assert.Equal(t, "C", content)
				return &domain.Post{ID: 11, Title: title, Content: content, AuthorID: authorID}, nil
			},
		}
		handler := api.NewBlogHandler(postService)

		req := authedRequest(t, http.MethodPost, "/blog", `{"title":"T","content":"C"}`, 7)
		recorder := httptest.NewRecorder()
		handler.CreateBlog(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, float64(11), body["id"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("empty title and content are accepted", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{}
		handler := api.NewBlogHandler(postService)

		req := authedRequest(t, http.MethodPost, "/blog", `{"title":"","content":""}`, 7)
		recorder := httptest.NewRecorder()
		handler.CreateBlog(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, postService.CreatePostCalls)
	})

	t.Run("rejected payloads never reach the service", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			body string
		}{
			{name: "malformed json", body: `{"title"`},
			{name: "missing title", body: `{"content":"C"}`},
			{name: "missing content", body: `{"title":"T"}`},
			{name: "title wrong type", body: `{"title":5,"content":"C"}`},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				postService := &mocks.MockPostService{}
				handler := api.NewBlogHandler(postService)

				req := authedRequest(t, http.MethodPost, "/blog", tt.body, 7)
				recorder := httptest.NewRecorder()
				handler.CreateBlog(recorder, req)

				assert.Equal(t, http.StatusBadRequest, recorder.Code)
				assert.Equal(t, 0, postService.CreatePostCalls)
			})
		}
	})

	t.Run("missing identity is rejected", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{}
		handler := api.NewBlogHandler(postService)

		req := httptest.NewRequest(http.MethodPost, "/blog", bytes.NewBufferString(`{"title":"T","content":"C"}`))
		recorder := httptest.NewRecorder()
		handler.CreateBlog(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, 0, postService.CreatePostCalls)
	})
}

func TestBlogHandler_UpdateBlog(t *testing.T) {
	t.Parallel()

	t.Run("updates an owned post", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{
			UpdatePostFn: func(ctx context.Context, authorID, id int64, update store.PostUpdate) (*domain.Post, error) {
				assert.Equal(t, int64(7), authorID)
				assert.Equal(t, int64(11), id)
				require.NotNil(t, update.Title)
				assert.Equal(t, "New", *update.Title)
				assert.Nil(t, update.Content)
				return &domain.Post{ID: id, Title: *update.Title, AuthorID: authorID}, nil
			},
		}
		handler := api.NewBlogHandler(postService)

		req := authedRequest(t, http.MethodPut, "/blog", `{"id":11,"title":"New"}`, 7)
		recorder := httptest.NewRecorder()
		handler.UpdateBlog(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, float64(11), body["id"])
	})

	t.Run("missing id is rejected before the service", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{}
		handler := api.NewBlogHandler(postService)

		req := authedRequest(t, http.MethodPut, "/blog", `{"title":"New"}`, 7)
		recorder := httptest.NewRecorder()
		handler.UpdateBlog(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, postService.UpdatePostCalls)
	})

	t.Run("post owned by someone else surfaces as not found", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{
			UpdatePostFn: func(ctx context.Context, authorID, id int64, update store.PostUpdate) (*domain.Post, error) {
				return nil, store.ErrPostNotFound
			},
		}
		handler := api.NewBlogHandler(postService)

		req := authedRequest(t, http.MethodPut, "/blog", `{"id":11,"title":"New"}`, 99)
		recorder := httptest.NewRecorder()
		handler.UpdateBlog(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, api.CodePostNotFound, body["code"])
	})
}

func TestBlogHandler_ListBlogs(t *testing.T) {
	t.Parallel()

	postService := &mocks.MockPostService{
		ListPostsFn: func(ctx context.Context) ([]*domain.Post, error) {
			return []*domain.Post{
				{ID: 1, Title: "one", AuthorID: 7},
				{ID: 2, Title: "two", AuthorID: 8},
			}, nil
		},
	}
	handler := api.NewBlogHandler(postService)

	req := authedRequest(t, http.MethodGet, "/blog/bulk", "", 7)
	recorder := httptest.NewRecorder()
	handler.ListBlogs(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	blogs, ok := body["blogs"].([]interface{})
	require.True(t, ok)
	assert.Len(t, blogs, 2)
}

func TestBlogHandler_GetBlog(t *testing.T) {
	t.Parallel()

	t.Run("returns the post", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{
			GetPostFn: func(ctx context.Context, id int64) (*domain.Post, error) {
				assert.Equal(t, int64(11), id)
				return &domain.Post{ID: id, Title: "T", Content: "C", AuthorID: 7}, nil
			},
		}
		handler := api.NewBlogHandler(postService)

		req := withPathParam(authedRequest(t, http.MethodGet, "/blog/11", "", 7), "id", "11")
		recorder := httptest.NewRecorder()
		handler.GetBlog(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		blog, ok := body["blog"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "T", blog["title"])
		assert.Equal(t, "C", blog["content"])
		assert.Equal(t, float64(7), blog["authorId"])
	})

	t.Run("missing post yields not found", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{
			GetPostFn: func(ctx context.Context, id int64) (*domain.Post, error) {
				return nil, store.ErrPostNotFound
			},
		}
		handler := api.NewBlogHandler(postService)

		req := withPathParam(authedRequest(t, http.MethodGet, "/blog/999", "", 7), "id", "999")
		recorder := httptest.NewRecorder()
		handler.GetBlog(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, api.CodePostNotFound, body["code"])
	})

	t.Run("non-numeric id is rejected", func(t *testing.T) {
		t.Parallel()

		postService := &mocks.MockPostService{}
		handler := api.NewBlogHandler(postService)

		req := withPathParam(authedRequest(t, http.MethodGet, "/blog/abc", "", 7), "id", "abc")
		recorder := httptest.NewRecorder()
		handler.GetBlog(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
