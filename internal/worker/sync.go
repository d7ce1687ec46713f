package worker

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go-xscraper/internal/models"
)

// CycleResult summarises one pass over the identity list.
type CycleResult struct {
	People    int
	Skipped   int
	Failed    int
	Submitted int
	Posts     int
	Err       error
}

func (r CycleResult) String() string {
	return fmt.Sprintf("%d people, %d submitted (%d posts), %d failed, %d skipped", r.People, r.Submitted, r.Posts, r.Failed, r.Skipped)
}

// RunCycle scrapes every person the backend knows, one after another. A
// failure for one person is logged and the cycle moves on.
func (w *Worker) RunCycle(ctx context.Context) CycleResult {
	people, err := w.backend.ListPeople(ctx)
	if err != nil {
		log.Printf("❌ Error getting people: %v", err)
		w.notifyError(err)
		return CycleResult{Err: err}
	}

	result := CycleResult{People: len(people)}
	log.Printf("👥 Backend knows %d people", len(people))

	for _, person := range people {
		if ctx.Err() != nil {
			result.Err = ctx.Err()
			break
		}
		if !person.HasID() {
			log.Printf("⚠️ Skipping '%s': no id assigned yet", person.Username)
			result.Skipped++
			continue
		}

		n, err := w.scrapeAndSubmit(ctx, person.Username, *person.ID)
		if err != nil {
			result.Failed++
			continue
		}
		if n > 0 {
			result.Submitted++
			result.Posts += n
		}
	}

	log.Printf("✅ Cycle finished: %s", result)
	w.notifyStatus("Cycle finished: " + result.String())
	return result
}

// RunOnce scrapes a single handle and submits its posts once. The identity
// list is only used to find the person's id; a person the backend does not
// know yet gets the provisional id from ResolveID.
func (w *Worker) RunOnce(ctx context.Context, handle string) error {
	people, err := w.backend.ListPeople(ctx)
	if err != nil {
		log.Printf("❌ Error getting people: %v", err)
		return fmt.Errorf("list people: %w", err)
	}

	id, known := ResolveID(people, handle)
	if !known {
		log.Printf("⚠️ '%s' is not registered yet, using provisional id %d", handle, id)
	}

	_, err = w.scrapeAndSubmit(ctx, handle, id)
	return err
}

// ResolveID returns the backend id of handle, or count of known people + 1
// when the handle is unknown. The provisional value is a best-effort guess:
// two registrations racing each other can end up with the same id.
func ResolveID(people []models.Profile, handle string) (id int, known bool) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	for _, p := range people {
		if p.HasID() && strings.EqualFold(p.Username, handle) {
			return *p.ID, true
		}
	}
	return len(people) + 1, false
}

// ScrapeProfile opens a session, reads the profile header of handle and
// closes the session again.
func (w *Worker) ScrapeProfile(ctx context.Context, handle string) (models.Profile, error) {
	var profile models.Profile
	err := w.withSession(ctx, func(s Session) error {
		var err error
		profile, err = w.scraper.ScrapeProfile(ctx, s, handle)
		return err
	})
	return profile, err
}

// scrapeAndSubmit returns how many posts were accepted by the backend. A
// failed submission drops the batch; the next cycle scrapes it again.
func (w *Worker) scrapeAndSubmit(ctx context.Context, handle string, id int) (int, error) {
	log.Printf("\n▶️ Scraping '%s' (person %d)", handle, id)

	var posts []models.Post
	err := w.withSession(ctx, func(s Session) error {
		var err error
		posts, err = w.scraper.ScrapeProfilePosts(ctx, s, handle, id)
		return err
	})
	if err != nil {
		log.Printf("❌ Scrape of '%s' aborted: %v", handle, err)
		w.notifyError(err)
		return 0, err
	}

	if len(posts) == 0 {
		log.Printf("ℹ️ No posts to submit for '%s'", handle)
		return 0, nil
	}

	if err := w.backend.SubmitPosts(ctx, posts); err != nil {
		log.Printf("❌ Failed to insert scraped posts of '%s': %v", handle, err)
		w.notifyError(err)
		return 0, fmt.Errorf("submit posts of %s: %w", handle, err)
	}

	log.Printf("💾 Submitted %d posts for '%s'", len(posts), handle)
	w.notifyBatch(handle, posts)
	return len(posts), nil
}

// withSession opens a browser session, runs fn and always closes the session
// afterwards, even when fn fails or panics.
func (w *Worker) withSession(ctx context.Context, fn func(Session) error) error {
	session, err := w.open(ctx)
	if err != nil {
		return fmt.Errorf("open browser session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser session: %v", err)
		}
	}()

	return fn(session)
}
