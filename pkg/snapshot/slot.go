package snapshot

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/sekaimcp/sekaimcp/pkg/observability"
)

// FetchFunc loads a full collection.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Slot is a write-once, read-many cache of one collection.
// The zero value is not usable; create slots with [NewSlot].
type Slot[T any] struct {
	name    string
	fetch   FetchFunc[T]
	value   atomic.Pointer[[]T]
	group   singleflight.Group
	fetches atomic.Int64
}

// NewSlot creates an empty slot that loads through fetch.
func NewSlot[T any](name string, fetch FetchFunc[T]) *Slot[T] {
	return &Slot[T]{name: name, fetch: fetch}
}

// Name returns the slot name used in hooks and status output.
func (s *Slot[T]) Name() string { return s.name }

// Get returns the cached collection, fetching it on first use.
// The returned slice is shared and must not be modified.
func (s *Slot[T]) Get(ctx context.Context) ([]T, error) {
	hooks := observability.Cache()
	if v := s.value.Load(); v != nil {
		hooks.OnCacheHit(ctx, s.name)
		return *v, nil
	}
	hooks.OnCacheMiss(ctx, s.name)

	ch := s.group.DoChan(s.name, func() (any, error) {
		if v := s.value.Load(); v != nil {
			return *v, nil
		}
		s.fetches.Add(1)
		items, err := s.fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.value.Store(&items)
		hooks.OnCacheSet(ctx, s.name, len(items))
		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]T), nil
	}
}

// Loaded reports whether the slot holds a collection.
func (s *Slot[T]) Loaded() bool {
	return s.value.Load() != nil
}

// Len returns the number of cached records, or 0 when the slot is empty.
func (s *Slot[T]) Len() int {
	if v := s.value.Load(); v != nil {
		return len(*v)
	}
	return 0
}

// Fetches returns how many upstream fetches the slot has started.
func (s *Slot[T]) Fetches() int64 {
	return s.fetches.Load()
}
