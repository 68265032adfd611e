// Package strapi provides an HTTP client for the sekai.best news CMS.
//
// Announcements are passed through verbatim: the client only guarantees
// that each element is a JSON value, not any particular shape.
package strapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sekaimcp/sekaimcp/pkg/integrations"
)

// DefaultBaseURL is the public CMS endpoint.
const DefaultBaseURL = "https://strapi.sekai.best"

// Announcement is one feed entry as published.
type Announcement = json.RawMessage

// Client fetches announcements.
type Client struct {
	*integrations.Client
}

// NewClient creates a Client for the CMS at baseURL.
// An empty baseURL selects [DefaultBaseURL].
func NewClient(baseURL string, opts integrations.Options) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Client: integrations.NewClient(baseURL, opts)}
}

// FetchAnnouncements returns up to limit announcements, newest first.
func (c *Client) FetchAnnouncements(ctx context.Context, limit int) ([]Announcement, error) {
	q := url.Values{
		"_limit": {strconv.Itoa(limit)},
		"_sort":  {"published_at:DESC"},
	}
	var items []Announcement
	if err := c.Get(ctx, "announcements", q, &items); err != nil {
		return nil, fmt.Errorf("fetch announcements: %w", err)
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
