// Package query implements the read-only operations behind every tool.
//
// A [Service] reads collections through a [Collections] implementation
// (normally a *snapshot.Store), filters and projects them, and resolves
// asset URLs with an [assets.Resolver]. Collections are shared and never
// modified: operations that reorder data sort a copy.
//
// Lookups of unknown identities return *errors.NotFoundError; collection
// fetch failures propagate unchanged as *errors.DataFetchError. The only
// operation that swallows upstream failures is [Service.Announcements].
package query
