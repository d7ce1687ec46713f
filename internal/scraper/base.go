// Define the contract between the sync loop and the site scraper

package scraper

import (
	"context"

	"go-xscraper/internal/dom"
	"go-xscraper/internal/models"
)

// Page is one open browser tab. Navigate loads url and waits for client-side
// rendering; it reports failure instead of returning an error so the caller
// decides whether to abort or skip.
type Page interface {
	Navigate(url string) bool
	Root() dom.Node
}

//ProfileScraper defines what the sync loop needs from a platform scraper
type ProfileScraper interface {
	//ScrapeProfile reads the profile header of handle
	ScrapeProfile(ctx context.Context, page Page, handle string) (models.Profile, error)

	//ScrapeProfilePosts reads the posts rendered on the profile page, tagged with ownerID
	ScrapeProfilePosts(ctx context.Context, page Page, handle string, ownerID int) ([]models.Post, error)

	//Name is the platform name
	Name() string
}
