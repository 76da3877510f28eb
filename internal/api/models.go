package api

import "github.com/devhussain7/medium-api/internal/domain"

// Common request/response structures. The validate tags are the schema
// contracts: payloads failing them are rejected before any store call.
// Pointer fields with a "required" tag encode "must be present, may be
// empty"; plain optional fields may be absent entirely.

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=6"`
}

// SigninRequest defines the payload for the user signin endpoint.
type SigninRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateBlogRequest defines the payload for creating a post. Title and
// content must be present but may be empty strings.
type CreateBlogRequest struct {
	Title   *string `json:"title"   validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// UpdateBlogRequest defines the payload for updating a post. The id is
// required; title and content are each optional and left unchanged when
// absent.
type UpdateBlogRequest struct {
	ID      *int64  `json:"id" validate:"required"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// AuthResponse defines the successful response for the signup and signin
// endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	JWT     string `json:"jwt"`
	UserID  int64  `json:"userId"`
}

// CreateBlogResponse defines the successful response for post creation.
type CreateBlogResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// UpdateBlogResponse defines the successful response for a post update.
type UpdateBlogResponse struct {
	ID int64 `json:"id"`
}

// ListBlogsResponse wraps the full post listing.
type ListBlogsResponse struct {
	Blogs []*domain.Post `json:"blogs"`
}

// GetBlogResponse wraps a single fetched post.
type GetBlogResponse struct {
	Blog *domain.Post `json:"blog"`
}
