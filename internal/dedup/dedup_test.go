package dedup

import (
	"testing"

	"go-xscraper/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPostCache(t *testing.T) {
	cache := NewPostCache()

	assert.False(t, cache.IsSeen("a"))
	assert.Equal(t, 2, cache.Add("a", "b", "a"))
	assert.True(t, cache.IsSeen("a"))
	assert.Equal(t, 0, cache.Add("b"))
	assert.Equal(t, 2, cache.Len())
}

func TestUnique(t *testing.T) {
	pinned := models.Post{PersonID: 1, Text: "pinned", Time: "2024-05-01T10:00:00.000Z"}
	other := models.Post{PersonID: 1, Text: "", Time: "2024-05-02T10:00:00.000Z"}

	got := Unique([]models.Post{pinned, other, pinned})

	assert.Equal(t, []models.Post{pinned, other}, got)
}
