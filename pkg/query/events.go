package query

import (
	"cmp"
	"context"
	"slices"

	"github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

// EventPage selects a window of the event list, newest first.
type EventPage struct {
	Limit  int
	Offset int
}

// CurrentEvent returns the first event whose window contains the current
// time. When none is running it falls back to the last event in snapshot
// order.
func (s *Service) CurrentEvent(ctx context.Context) (*sekai.Event, error) {
	events, err := s.data.Events(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, errors.NotFound("events", nil)
	}

	now := s.now()
	for _, e := range events {
		if e.ActiveAt(now) {
			return &e, nil
		}
	}
	last := events[len(events)-1]
	return &last, nil
}

// ListEvents returns events ordered by start time descending, sliced to p.
// An offset past the end yields an empty list.
func (s *Service) ListEvents(ctx context.Context, p EventPage) ([]sekai.Event, error) {
	events, err := s.data.Events(ctx)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b sekai.Event) int {
		return cmp.Compare(b.StartAt, a.StartAt)
	})

	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	if p.Offset >= len(sorted) {
		return []sekai.Event{}, nil
	}
	end := min(p.Offset+p.Limit, len(sorted))
	return sorted[p.Offset:end], nil
}
