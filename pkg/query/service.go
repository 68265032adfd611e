package query

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sekaimcp/sekaimcp/pkg/assets"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

// Result limits and defaults.
const (
	MaxSearchResults         = 20
	DefaultEventLimit        = 5
	DefaultAnnouncementLimit = 5
)

// Collections provides the four snapshot collections.
type Collections interface {
	Cards(ctx context.Context) ([]sekai.Card, error)
	Characters(ctx context.Context) ([]sekai.GameCharacter, error)
	Musics(ctx context.Context) ([]sekai.Music, error)
	Events(ctx context.Context) ([]sekai.Event, error)
}

// AnnouncementFeed fetches the newest announcements.
type AnnouncementFeed interface {
	FetchAnnouncements(ctx context.Context, limit int) ([]json.RawMessage, error)
}

// Options configures a Service.
type Options struct {
	Assets assets.Resolver  // Zero value uses assets.DefaultRoot
	Now    func() time.Time // Clock for CurrentEvent; defaults to time.Now
	Logger *log.Logger      // Defaults to log.Default()
}

// Service answers queries against the snapshot.
// It is safe for concurrent use.
type Service struct {
	data   Collections
	feed   AnnouncementFeed
	assets assets.Resolver
	now    func() time.Time
	logger *log.Logger
}

// NewService creates a Service. feed may be nil, in which case
// Announcements always returns an empty list.
func NewService(data Collections, feed AnnouncementFeed, opts Options) *Service {
	if opts.Assets.Root == "" {
		opts.Assets = assets.NewResolver("")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Service{
		data:   data,
		feed:   feed,
		assets: opts.Assets,
		now:    opts.Now,
		logger: opts.Logger,
	}
}

// find returns the first item whose id matches.
func find[T any](items []T, id int, idOf func(T) int) (T, bool) {
	for _, it := range items {
		if idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
