package snapshot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

// Slot names.
const (
	SlotCards      = "cards"
	SlotCharacters = "characters"
	SlotMusics     = "musics"
	SlotEvents     = "events"
)

// Source fetches the raw collections. masterdb.Client implements it.
type Source interface {
	FetchCards(ctx context.Context) ([]sekai.Card, error)
	FetchCharacters(ctx context.Context) ([]sekai.GameCharacter, error)
	FetchMusics(ctx context.Context) ([]sekai.Music, error)
	FetchEvents(ctx context.Context) ([]sekai.Event, error)
}

// Store is the read-through cache of all four collections. It is created
// once per process and shared by every query.
type Store struct {
	cards      *Slot[sekai.Card]
	characters *Slot[sekai.GameCharacter]
	musics     *Slot[sekai.Music]
	events     *Slot[sekai.Event]
}

// NewStore creates a Store with four empty slots backed by src.
func NewStore(src Source) *Store {
	return &Store{
		cards:      NewSlot[sekai.Card](SlotCards, src.FetchCards),
		characters: NewSlot[sekai.GameCharacter](SlotCharacters, src.FetchCharacters),
		musics:     NewSlot[sekai.Music](SlotMusics, src.FetchMusics),
		events:     NewSlot[sekai.Event](SlotEvents, src.FetchEvents),
	}
}

// Cards returns the card collection.
func (s *Store) Cards(ctx context.Context) ([]sekai.Card, error) { return s.cards.Get(ctx) }

// Characters returns the character collection.
func (s *Store) Characters(ctx context.Context) ([]sekai.GameCharacter, error) {
	return s.characters.Get(ctx)
}

// Musics returns the music collection.
func (s *Store) Musics(ctx context.Context) ([]sekai.Music, error) { return s.musics.Get(ctx) }

// Events returns the event collection.
func (s *Store) Events(ctx context.Context) ([]sekai.Event, error) { return s.events.Get(ctx) }

// Warm loads every slot concurrently. It returns the first error; slots
// that loaded successfully stay loaded.
func (s *Store) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := s.cards.Get(ctx); return err })
	g.Go(func() error { _, err := s.characters.Get(ctx); return err })
	g.Go(func() error { _, err := s.musics.Get(ctx); return err })
	g.Go(func() error { _, err := s.events.Get(ctx); return err })
	return g.Wait()
}

// SlotStatus describes one slot.
type SlotStatus struct {
	Name    string `json:"name"`
	Loaded  bool   `json:"loaded"`
	Records int    `json:"records"`
}

// Status reports every slot in a fixed order.
func (s *Store) Status() []SlotStatus {
	return []SlotStatus{
		status(s.cards),
		status(s.characters),
		status(s.musics),
		status(s.events),
	}
}

func status[T any](slot *Slot[T]) SlotStatus {
	return SlotStatus{Name: slot.Name(), Loaded: slot.Loaded(), Records: slot.Len()}
}
