package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go-xscraper/internal/config"
	"go-xscraper/internal/dedup"
	"go-xscraper/internal/models"
)

var ErrNavigation = errors.New("navigation failed")

type XScraper struct {
	siteURL     string
	clickSettle time.Duration
}

func NewXScraper(cfg *config.Config) *XScraper {
	return &XScraper{
		siteURL:     strings.TrimRight(cfg.SiteURL, "/"),
		clickSettle: cfg.ClickSettle,
	}
}

func (s *XScraper) Name() string {
	return "X"
}

// ProfileURL is the canonical profile page of handle. Handles are case
// insensitive, so the path is always lowercase.
func (s *XScraper) ProfileURL(handle string) string {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), handlePrefix)
	return s.siteURL + "/" + strings.ToLower(handle)
}

func (s *XScraper) ScrapeProfile(ctx context.Context, page Page, handle string) (models.Profile, error) {
	if err := s.open(ctx, page, handle); err != nil {
		return models.Profile{}, err
	}

	profile, err := BuildProfile(page.Root(), s.clickSettle)
	if err != nil {
		return models.Profile{}, fmt.Errorf("build profile %s: %w", handle, err)
	}
	log.Printf("  ✅ %s", profile)
	return profile, nil
}

// ScrapeProfilePosts builds one post per container rendered without
// scrolling. Containers that fail to build are skipped, not fatal.
func (s *XScraper) ScrapeProfilePosts(ctx context.Context, page Page, handle string, ownerID int) ([]models.Post, error) {
	if err := s.open(ctx, page, handle); err != nil {
		return nil, err
	}

	containers, err := page.Root().FindAll(PostArticle)
	if err != nil {
		return nil, fmt.Errorf("find posts of %s: %w", handle, err)
	}
	log.Printf("    📦 Found %d rendered posts for '%s'", len(containers), handle)

	posts := make([]models.Post, 0, len(containers))
	for i, container := range containers {
		post, err := BuildPost(container, ownerID)
		if err != nil {
			log.Printf("      ⚠️ Skipping post %d of '%s': %v", i, handle, err)
			continue
		}
		posts = append(posts, post)
	}

	unique := dedup.Unique(posts)
	if skipped := len(posts) - len(unique); skipped > 0 {
		log.Printf("      🔁 Dropped %d repeated posts", skipped)
	}
	return unique, nil
}

func (s *XScraper) open(ctx context.Context, page Page, handle string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	url := s.ProfileURL(handle)
	log.Printf("  🔍 Visiting %s", url)
	if !page.Navigate(url) {
		return fmt.Errorf("%w: %s", ErrNavigation, url)
	}
	return nil
}
