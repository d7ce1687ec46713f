// Package backend talks to the data service that owns profiles and posts.
package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-xscraper/internal/models"

	"github.com/go-resty/resty/v2"
)

// ErrStatus wraps every non-2xx answer from the backend.
var ErrStatus = errors.New("backend returned non-2xx status")

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: httpClient}
}

// ListPeople fetches the identity list, in backend order.
func (c *Client) ListPeople(ctx context.Context) ([]models.Profile, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/people")
	if err != nil {
		return nil, fmt.Errorf("get people: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, statusError("get people", resp)
	}
	return models.ParseProfiles(resp.Body())
}

// SubmitPosts sends one batch as a single JSON array.
func (c *Client) SubmitPosts(ctx context.Context, posts []models.Post) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(posts).
		Post("/posts")
	if err != nil {
		return fmt.Errorf("post posts: %w", err)
	}
	if !resp.IsSuccess() {
		return statusError("post posts", resp)
	}
	return nil
}

func statusError(op string, resp *resty.Response) error {
	body := strings.TrimSpace(resp.String())
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Errorf("%s: %w: %s %s", op, ErrStatus, resp.Status(), body)
}
