package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ViewsUnavailable marks a post whose view counter is not rendered at all.
// It is not the same as a verified zero.
const ViewsUnavailable = -1

var (
	ErrInvalidTime   = errors.New("time is not ISO-8601")
	ErrNegativeCount = errors.New("negative counter")
	ErrMissingOwner  = errors.New("personId is not set")
)

type Post struct {
	PersonID int    `json:"personId"`
	Text     string `json:"text"`
	Time     string `json:"time"`
	Comments int    `json:"comments"`
	Retweets int    `json:"retweets"`
	Likes    int    `json:"likes"`
	Views    int    `json:"views"`
}

// NewPost assembles and validates a post in one step.
func NewPost(personID int, text, ts string, comments, retweets, likes, views int) (Post, error) {
	p := Post{
		PersonID: personID,
		Text:     text,
		Time:     ts,
		Comments: comments,
		Retweets: retweets,
		Likes:    likes,
		Views:    views,
	}
	if err := p.Validate(); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (p Post) Validate() error {
	if p.PersonID <= 0 {
		return ErrMissingOwner
	}
	if _, err := ParseTime(p.Time); err != nil {
		return err
	}
	if p.Comments < 0 || p.Retweets < 0 || p.Likes < 0 {
		return ErrNegativeCount
	}
	if p.Views < ViewsUnavailable {
		return fmt.Errorf("%w: views %d", ErrNegativeCount, p.Views)
	}
	return nil
}

// HasViews is false when the view counter was not rendered for this post.
func (p Post) HasViews() bool {
	return p.Views != ViewsUnavailable
}

// Key identifies a post inside one scraped batch.
func (p Post) Key() string {
	return fmt.Sprintf("%d|%s|%s", p.PersonID, p.Time, p.Text)
}

func (p Post) String() string {
	return fmt.Sprintf("Text: %q, Time: %q, Comments: %d, Retweets: %d, Likes: %d, Views: %d", p.Text, p.Time, p.Comments, p.Retweets, p.Likes, p.Views)
}

// ParseTime accepts the machine-readable datetime values the site renders,
// with or without fractional seconds.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t, nil
}

// ParsePosts decodes a batch of posts and validates every entry.
func ParsePosts(data []byte) ([]Post, error) {
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	for i, p := range posts {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("post %d: %w", i, err)
		}
	}
	return posts, nil
}
