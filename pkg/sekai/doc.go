// Package sekai defines the Project Sekai master-data entities served by
// sekaimcp.
//
// The types mirror the JSON published in the upstream snapshot
// (cards.json, gameCharacters.json, musics.json, events.json). The fields
// the query layer reads are decoded into struct fields; every other upstream
// key is kept verbatim in the record's Extra map and written back on encode,
// so a record round-trips to the object the snapshot published.
//
// Timestamps (releaseAt, publishedAt, startAt, aggregateAt) are Unix epoch
// milliseconds, exactly as published.
//
// Values of these types are treated as immutable once loaded into a
// snapshot slot: query code filters and projects them but never edits them
// in place.
package sekai
