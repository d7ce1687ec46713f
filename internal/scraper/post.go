package scraper

import (
	"errors"
	"fmt"

	"go-xscraper/internal/dom"
	"go-xscraper/internal/extract"
	"go-xscraper/internal/models"
)

var ErrMissingTimestamp = errors.New("post has no timestamp")

// BuildPost reads one post container. The timestamp is the only required
// field; a missing text block means a media-only post.
func BuildPost(container dom.Node, personID int) (models.Post, error) {
	text := extract.TextOr(container, PostText, "")

	ts, err := extract.Attr(container, PostTime, "datetime")
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %v", ErrMissingTimestamp, err)
	}

	//reply/repost/like buttons are always rendered, so absence counts as zero.
	//the views link is legitimately missing on some posts.
	return models.NewPost(
		personID,
		text,
		ts,
		extract.CountOr(container, ReplyButton, 0),
		extract.CountOr(container, RepostButton, 0),
		extract.CountOr(container, LikeButton, 0),
		extract.CountOr(container, ViewsLink, models.ViewsUnavailable),
	)
}
