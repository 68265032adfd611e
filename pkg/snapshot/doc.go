// Package snapshot provides the lazy, process-lifetime cache of master-data
// collections.
//
// # Slots
//
// A [Slot] holds one collection. The first [Slot.Get] fetches it; every later
// call returns the stored slice without I/O. A slot is published atomically
// only after a fully successful fetch, so readers never observe a partial
// collection, and a failed fetch leaves the slot empty so the next call
// retries.
//
// Concurrent cold-start callers share a single in-flight fetch
// (golang.org/x/sync/singleflight). A caller whose context is cancelled
// stops waiting, but the shared fetch keeps running for the others.
//
// # Store
//
// [Store] bundles the four independent slots (cards, characters, musics,
// events) behind a [Source], typically a masterdb.Client:
//
//	store := snapshot.NewStore(masterdb.NewClient("", integrations.Options{}))
//	cards, err := store.Cards(ctx)
//
// Slots never expire and are never refreshed; the snapshot is treated as
// immutable for the lifetime of the process.
package snapshot
