package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	t.Parallel()

	post, err := NewPost(1, "T", "C")
	require.NoError(t, err)
	assert.Equal(t, "T", post.Title)
	assert.Equal(t, "C", post.Content)
	assert.Equal(t, int64(1), post.AuthorID)
	assert.Zero(t, post.ID)
}

func TestNewPost_AllowsEmptyTitleAndContent(t *testing.T) {
	t.Parallel()

	post, err := NewPost(1, "", "")
	require.NoError(t, err)
	assert.Empty(t, post.Title)
	assert.Empty(t, post.Content)
}

func TestNewPost_RequiresAuthor(t *testing.T) {
	t.Parallel()

	for _, authorID := range []int64{0, -1} {
		post, err := NewPost(authorID, "T", "C")
		assert.ErrorIs(t, err, ErrEmptyAuthorID)
		assert.Nil(t, post)
	}
}
