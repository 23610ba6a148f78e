package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackPosts(t *testing.T) {
	fallback := FallbackPosts()
	require.Len(t, fallback, 2)

	assert.Equal(t, "1", fallback[0].ID)
	assert.Equal(t, "The Essence of Design", fallback[0].Title)
	assert.Equal(t, "2023-05-15", fallback[0].CreatedAt)
	assert.Contains(t, fallback[0].Content, "Less, but better – because it concentrates")

	assert.Equal(t, "2", fallback[1].ID)
	assert.Equal(t, "Simplicity", fallback[1].Title)
	assert.Equal(t, "2023-06-22", fallback[1].CreatedAt)

	fallback[0].Title = "mutated"
	assert.Equal(t, "The Essence of Design", FallbackPosts()[0].Title)
}
