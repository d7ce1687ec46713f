package scraper

import (
	"context"
	"strings"
	"testing"

	"go-xscraper/internal/config"
	"go-xscraper/internal/dom"
	"go-xscraper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScraper() *XScraper {
	cfg := config.Default()
	cfg.ClickSettle = 0
	return NewXScraper(cfg)
}

func loadPage(t *testing.T, name string) *dom.StaticPage {
	t.Helper()
	page, err := dom.StaticPageFromFile("testdata/" + name)
	require.NoError(t, err)
	return page
}

func TestXScraper_ProfileURL(t *testing.T) {
	s := newTestScraper()

	assert.Equal(t, "https://x.com/alice", s.ProfileURL("Alice"))
	assert.Equal(t, "https://x.com/alice", s.ProfileURL("@ALICE"))
}

func TestXScraper_ScrapeProfile(t *testing.T) {
	s := newTestScraper()
	page := loadPage(t, "profile.html")

	profile, err := s.ScrapeProfile(context.Background(), page, "Alice")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://x.com/alice"}, page.Visited)
	assert.Nil(t, profile.ID)
	assert.Equal(t, "Alice Example", profile.ProfileName)
	assert.Equal(t, "Alice", profile.Username, "display casing is kept")
	assert.Equal(t, "Writes about Go.", profile.Description)
	assert.Equal(t, "https://pbs.twimg.com/profile_images/1/alice_400x400.jpg", profile.ImgURL, "full-size image comes from the expanded view")
}

func TestXScraper_ScrapeProfile_OptionalFieldsMissing(t *testing.T) {
	s := newTestScraper()

	profile, err := s.ScrapeProfile(context.Background(), loadPage(t, "profile_minimal.html"), "bob")
	require.NoError(t, err)

	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, "", profile.Description)
	assert.Equal(t, "", profile.ImgURL)
}

func TestXScraper_ScrapeProfile_NoHandle(t *testing.T) {
	s := newTestScraper()
	page, err := dom.StaticPageFromString(`<div data-testid="UserName"><span><span>Nameless</span></span></div>`)
	require.NoError(t, err)

	_, err = s.ScrapeProfile(context.Background(), page, "nameless")
	assert.ErrorIs(t, err, ErrMissingHandle)

	page, err = dom.StaticPageFromString(`<p>This account doesn't exist</p>`)
	require.NoError(t, err)

	_, err = s.ScrapeProfile(context.Background(), page, "ghost")
	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestXScraper_ScrapeProfilePosts(t *testing.T) {
	s := newTestScraper()
	page := loadPage(t, "timeline.html")

	posts, err := s.ScrapeProfilePosts(context.Background(), page, "alice", 1)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, models.Post{
		PersonID: 1,
		Text:     "Hello from the timeline",
		Time:     "2024-05-01T10:00:00.000Z",
		Comments: 3,
		Retweets: 5,
		Likes:    42,
		Views:    1234,
	}, posts[0])

	assert.Equal(t, 1, posts[1].PersonID)
	assert.Equal(t, "", posts[1].Text, "media-only post has empty text")
	assert.Equal(t, models.ViewsUnavailable, posts[1].Views)
	assert.False(t, posts[1].HasViews())
	assert.Equal(t, 7, posts[1].Likes)
}

func TestXScraper_ScrapeProfilePosts_SkipsBrokenContainers(t *testing.T) {
	s := newTestScraper()

	posts, err := s.ScrapeProfilePosts(context.Background(), loadPage(t, "timeline_partial.html"), "bob", 7)
	require.NoError(t, err)
	require.Len(t, posts, 1, "post without timestamp is skipped and the repeat is dropped")

	post := posts[0]
	assert.Equal(t, 7, post.PersonID)
	assert.Equal(t, 0, post.Comments)
	assert.Equal(t, 0, post.Retweets)
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, models.ViewsUnavailable, post.Views)
}

func TestXScraper_NavigationFailure(t *testing.T) {
	s := newTestScraper()
	page := loadPage(t, "timeline.html")
	page.Fail = true

	posts, err := s.ScrapeProfilePosts(context.Background(), page, "alice", 1)
	assert.ErrorIs(t, err, ErrNavigation)
	assert.Nil(t, posts)

	_, err = s.ScrapeProfile(context.Background(), page, "alice")
	assert.ErrorIs(t, err, ErrNavigation)
}

func TestXScraper_CancelledContext(t *testing.T) {
	s := newTestScraper()
	page := loadPage(t, "timeline.html")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ScrapeProfilePosts(ctx, page, "alice", 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, page.Visited)
}

func TestBuildPost(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		want    models.Post
		wantErr error
	}{
		{
			name: "views label parsed",
			html: `<article><time datetime="2024-01-01T00:00:00Z"></time><a aria-label="1234 views."></a></article>`,
			want: models.Post{PersonID: 2, Time: "2024-01-01T00:00:00Z", Views: 1234},
		},
		{
			name: "verified zero views stays zero",
			html: `<article><time datetime="2024-01-01T00:00:00Z"></time><a aria-label="0 views."></a></article>`,
			want: models.Post{PersonID: 2, Time: "2024-01-01T00:00:00Z", Views: 0},
		},
		{
			name:    "missing time element",
			html:    `<article><div data-testid="tweetText">text</div></article>`,
			wantErr: ErrMissingTimestamp,
		},
		{
			name:    "time element without datetime",
			html:    `<article><time>yesterday</time></article>`,
			wantErr: ErrMissingTimestamp,
		},
		{
			name:    "datetime not ISO-8601",
			html:    `<article><time datetime="yesterday"></time></article>`,
			wantErr: models.ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := dom.ParseHTML(strings.NewReader(tt.html))
			require.NoError(t, err)
			container, err := root.FindOne("article")
			require.NoError(t, err)

			post, err := BuildPost(container, 2)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, post)
		})
	}
}
