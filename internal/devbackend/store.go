// Package devbackend is an in-memory stand-in for the data service. It
// serves the same two resources the scraper talks to and is meant for local
// runs and tests only.
package devbackend

import (
	"strings"
	"sync"

	"go-xscraper/internal/models"
)

type Store struct {
	mu     sync.RWMutex
	people []models.Profile
	posts  []models.Post
	nextID int
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

// AddPerson registers p and returns it with its id. A profile that already
// carries an id keeps it.
func (s *Store) AddPerson(p models.Profile) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == nil {
		id := s.nextID
		p.ID = &id
	}
	if *p.ID >= s.nextID {
		s.nextID = *p.ID + 1
	}
	s.people = append(s.people, p)
	return p
}

// FindPerson looks up a registered profile by username, ignoring case.
func (s *Store) FindPerson(username string) (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.people {
		if strings.EqualFold(p.Username, username) {
			return p, true
		}
	}
	return models.Profile{}, false
}

func (s *Store) People() []models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Profile, len(s.people))
	copy(out, s.people)
	return out
}

func (s *Store) AddPosts(posts []models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, posts...)
}

// Posts returns stored posts, filtered by owner when personID > 0.
func (s *Store) Posts(personID int) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if personID > 0 && p.PersonID != personID {
			continue
		}
		out = append(out, p)
	}
	return out
}
