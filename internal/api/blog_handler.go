package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/devhussain7/medium-api/internal/api/shared"
	"github.com/devhussain7/medium-api/internal/service"
	"github.com/devhussain7/medium-api/internal/store"
)

// BlogHandler handles the author-scoped blog post endpoints. All of its
// routes sit behind the auth middleware, so the authenticated user id is
// always available from the request context.
type BlogHandler struct {
	postService service.PostService
	validator   *validator.Validate
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
func NewBlogHandler(postService service.PostService) *BlogHandler {
	return &BlogHandler{
		postService: postService,
		validator:   validator.New(),
	}
}

// CreateBlog handles POST /blog.
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	authorID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			CodeUnauthorized, "no token provided")
		return
	}

	var req CreateBlogRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, SanitizeValidationError(err))
		return
	}

	post, err := h.postService.CreatePost(r.Context(), authorID, *req.Title, *req.Content)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), MapErrorToCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreateBlogResponse{
		ID:      post.ID,
		Message: "Create blog success!",
	})
}

// UpdateBlog handles PUT /blog. Only the post's author can update it; a
// mismatched author surfaces as not found, never as a forged success.
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	authorID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			CodeUnauthorized, "no token provided")
		return
	}

	var req UpdateBlogRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, SanitizeValidationError(err))
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), authorID, *req.ID, store.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), MapErrorToCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateBlogResponse{ID: post.ID})
}

// ListBlogs handles GET /blog/bulk. The listing is unordered, unfiltered
// and unpaginated.
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, CodeInternalError, "Get blogs failed", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListBlogsResponse{Blogs: posts})
}

// GetBlog handles GET /blog/{id}. A missing post yields 404 rather than
// the null-body success the original backend returned.
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, GetSafeErrorMessage(err))
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), MapErrorToCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GetBlogResponse{Blog: post})
}
