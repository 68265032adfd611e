package masterdb

import (
	"context"

	"github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/integrations"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

// DefaultBaseURL is the public master-data mirror.
const DefaultBaseURL = "https://sekai-world.github.io/sekai-master-db-diff"

// Resource file names.
const (
	ResourceCards      = "cards.json"
	ResourceCharacters = "gameCharacters.json"
	ResourceMusics     = "musics.json"
	ResourceEvents     = "events.json"
)

// Client fetches snapshot collections.
type Client struct {
	*integrations.Client
}

// NewClient creates a Client for the snapshot at baseURL.
// An empty baseURL selects [DefaultBaseURL].
func NewClient(baseURL string, opts integrations.Options) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{Client: integrations.NewClient(baseURL, opts)}
}

// FetchCards downloads cards.json.
func (c *Client) FetchCards(ctx context.Context) ([]sekai.Card, error) {
	return fetch[sekai.Card](ctx, c, ResourceCards)
}

// FetchCharacters downloads gameCharacters.json.
func (c *Client) FetchCharacters(ctx context.Context) ([]sekai.GameCharacter, error) {
	return fetch[sekai.GameCharacter](ctx, c, ResourceCharacters)
}

// FetchMusics downloads musics.json.
func (c *Client) FetchMusics(ctx context.Context) ([]sekai.Music, error) {
	return fetch[sekai.Music](ctx, c, ResourceMusics)
}

// FetchEvents downloads events.json.
func (c *Client) FetchEvents(ctx context.Context) ([]sekai.Event, error) {
	return fetch[sekai.Event](ctx, c, ResourceEvents)
}

// fetch decodes resource into a fresh slice so a failed attempt never leaks
// a partially decoded collection to the caller.
func fetch[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	var items []T
	if err := c.Get(ctx, resource, nil, &items); err != nil {
		return nil, errors.FetchFailed(resource, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
