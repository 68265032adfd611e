package snapshot

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sekaimcp/sekaimcp/pkg/observability"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

type fakeSource struct {
	cards      []sekai.Card
	characters []sekai.GameCharacter
	musics     []sekai.Music
	events     []sekai.Event
	eventsErr  error

	cardCalls  atomic.Int32
	eventCalls atomic.Int32
}

func (f *fakeSource) FetchCards(context.Context) ([]sekai.Card, error) {
	f.cardCalls.Add(1)
	return f.cards, nil
}

func (f *fakeSource) FetchCharacters(context.Context) ([]sekai.GameCharacter, error) {
	return f.characters, nil
}

func (f *fakeSource) FetchMusics(context.Context) ([]sekai.Music, error) {
	return f.musics, nil
}

func (f *fakeSource) FetchEvents(context.Context) ([]sekai.Event, error) {
	f.eventCalls.Add(1)
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		cards:      []sekai.Card{{ID: 1, CharacterID: 1, Rarity: 4, Attr: sekai.AttrCute}},
		characters: []sekai.GameCharacter{{ID: 1, FirstName: "Miku", GivenName: "Hatsune"}},
		musics:     []sekai.Music{{ID: 1, Title: "Tell Your World"}, {ID: 2, Title: "Melt"}},
		events:     []sekai.Event{{ID: 1, Name: "Opening"}},
	}
}

type recordingCacheHooks struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingCacheHooks) record(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, s)
}

func (r *recordingCacheHooks) OnCacheHit(_ context.Context, slot string)  { r.record("hit:" + slot) }
func (r *recordingCacheHooks) OnCacheMiss(_ context.Context, slot string) { r.record("miss:" + slot) }
func (r *recordingCacheHooks) OnCacheSet(_ context.Context, slot string, _ int) {
	r.record("set:" + slot)
}

func TestStoreReadThrough(t *testing.T) {
	src := newFakeSource()
	store := NewStore(src)
	ctx := context.Background()

	first, err := store.Cards(ctx)
	if err != nil {
		t.Fatalf("Cards() error: %v", err)
	}
	second, err := store.Cards(ctx)
	if err != nil {
		t.Fatalf("Cards() error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Cards() mismatch (-first +second):\n%s", diff)
	}
	if got := src.cardCalls.Load(); got != 1 {
		t.Errorf("FetchCards calls = %d, want 1", got)
	}

	// Slots are independent: loading cards does not touch events.
	if got := src.eventCalls.Load(); got != 0 {
		t.Errorf("FetchEvents calls = %d, want 0", got)
	}
}

func TestStoreEmptyCollectionIsCached(t *testing.T) {
	src := newFakeSource()
	src.events = []sekai.Event{}
	store := NewStore(src)
	ctx := context.Background()

	for range 3 {
		events, err := store.Events(ctx)
		if err != nil {
			t.Fatalf("Events() error: %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("Events() = %v, want empty", events)
		}
	}
	if got := src.eventCalls.Load(); got != 1 {
		t.Errorf("FetchEvents calls = %d, want 1", got)
	}
}

func TestStoreWarmAndStatus(t *testing.T) {
	store := NewStore(newFakeSource())

	for _, st := range store.Status() {
		if st.Loaded {
			t.Errorf("slot %s loaded before Warm", st.Name)
		}
	}

	if err := store.Warm(context.Background()); err != nil {
		t.Fatalf("Warm() error: %v", err)
	}

	want := []SlotStatus{
		{Name: SlotCards, Loaded: true, Records: 1},
		{Name: SlotCharacters, Loaded: true, Records: 1},
		{Name: SlotMusics, Loaded: true, Records: 2},
		{Name: SlotEvents, Loaded: true, Records: 1},
	}
	if diff := cmp.Diff(want, store.Status()); diff != "" {
		t.Errorf("Status() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreWarmReportsFailure(t *testing.T) {
	src := newFakeSource()
	src.eventsErr = errors.New("events.json: 503")
	store := NewStore(src)

	if err := store.Warm(context.Background()); err == nil {
		t.Fatal("Warm() error = nil, want failure")
	}

	for _, st := range store.Status() {
		if st.Name == SlotEvents && st.Loaded {
			t.Error("events slot loaded after failed fetch")
		}
	}

	src.eventsErr = nil
	if _, err := store.Events(context.Background()); err != nil {
		t.Fatalf("Events() after recovery error: %v", err)
	}
	if got := src.eventCalls.Load(); got != 2 {
		t.Errorf("FetchEvents calls = %d, want 2", got)
	}
}

func TestStoreCacheHooks(t *testing.T) {
	hooks := &recordingCacheHooks{}
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	store := NewStore(newFakeSource())
	ctx := context.Background()
	if _, err := store.Musics(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Musics(ctx); err != nil {
		t.Fatal(err)
	}

	want := []string{"miss:musics", "set:musics", "hit:musics"}
	if diff := cmp.Diff(want, hooks.events); diff != "" {
		t.Errorf("hook events mismatch (-want +got):\n%s", diff)
	}
}
