package domain

import (
	"errors"
	"time"
)

// Post validation errors
var (
	ErrEmptyAuthorID = errors.New("post author ID cannot be empty")
)

// Post represents a blog post owned by a single author. Title and content
// are free-form strings; either may be empty. The AuthorID references an
// existing User and is immutable after creation.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a new Post owned by the given author and sets the
// creation/update timestamps. The ID is left zero until the store assigns
// one. Returns an error if validation fails.
func NewPost(authorID int64, title, content string) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.AuthorID <= 0 {
		return ErrEmptyAuthorID
	}
	return nil
}
