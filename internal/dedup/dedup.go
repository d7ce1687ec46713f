package dedup

import (
	"sync"

	"go-xscraper/internal/models"
)

// PostCache remembers which posts were already collected. It lives in memory
// only and is meant to span a single scrape.
type PostCache struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewPostCache() *PostCache {
	return &PostCache{
		seen: make(map[string]struct{}),
	}
}

// IsSeen checks if a post key has already been collected
func (pc *PostCache) IsSeen(key string) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	_, exists := pc.seen[key]
	return exists
}

// Add marks keys as seen and reports how many of them were new.
func (pc *PostCache) Add(keys ...string) int {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	added := 0
	for _, key := range keys {
		if _, exists := pc.seen[key]; !exists {
			pc.seen[key] = struct{}{}
			added++
		}
	}
	return added
}

func (pc *PostCache) Len() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return len(pc.seen)
}

// Unique drops repeated posts, keeping the first occurrence and the original
// order. A pinned post can be rendered twice on the same timeline.
func Unique(posts []models.Post) []models.Post {
	cache := NewPostCache()
	unique := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if cache.Add(p.Key()) == 0 {
			continue
		}
		unique = append(unique, p)
	}
	return unique
}
