package worker

import (
	"context"
	"log"
	"time"

	"go-xscraper/internal/models"
	"go-xscraper/internal/scraper"
)

// Backend is the system of record the worker reads identities from and
// writes posts to.
type Backend interface {
	ListPeople(ctx context.Context) ([]models.Profile, error)
	SubmitPosts(ctx context.Context, posts []models.Post) error
}

// Session is a browser tab that is opened for one scrape and closed after it.
type Session interface {
	scraper.Page
	Close() error
}

type OpenSessionFunc func(ctx context.Context) (Session, error)

// Notifier receives cycle reports. It is optional.
type Notifier interface {
	SendBatch(handle string, posts []models.Post) error
	SendError(err error) error
	SendStatus(message string) error
}

type Worker struct {
	backend  Backend
	open     OpenSessionFunc
	scraper  scraper.ProfileScraper
	interval time.Duration
	notifier Notifier
	sleep    func(ctx context.Context, d time.Duration) error
}

type Option func(*Worker)

func WithNotifier(n Notifier) Option {
	return func(w *Worker) {
		w.notifier = n
	}
}

// WithSleep replaces the wait between cycles.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(w *Worker) {
		w.sleep = sleep
	}
}

func New(backend Backend, open OpenSessionFunc, s scraper.ProfileScraper, interval time.Duration, opts ...Option) *Worker {
	w := &Worker{
		backend:  backend,
		open:     open,
		scraper:  s,
		interval: interval,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls the backend and scrapes every known person, then waits the
// interval and starts over. Cycle failures never stop the loop; only ctx
// does.
func (w *Worker) Run(ctx context.Context) error {
	log.Printf("🚀 Starting %s sync loop (interval %v)...", w.scraper.Name(), w.interval)
	for {
		w.RunCycle(ctx)

		if err := w.sleep(ctx, w.interval); err != nil {
			log.Println("🏁 Sync loop stopped.")
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (w *Worker) notifyError(err error) {
	if w.notifier == nil {
		return
	}
	if sendErr := w.notifier.SendError(err); sendErr != nil {
		log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
	}
}

func (w *Worker) notifyStatus(message string) {
	if w.notifier == nil {
		return
	}
	if err := w.notifier.SendStatus(message); err != nil {
		log.Printf("⚠️ Failed to send status to Telegram: %v", err)
	}
}

func (w *Worker) notifyBatch(handle string, posts []models.Post) {
	if w.notifier == nil {
		return
	}
	if err := w.notifier.SendBatch(handle, posts); err != nil {
		log.Printf("⚠️ Failed to send batch to Telegram: %v", err)
	}
}
