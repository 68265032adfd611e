// Package pkg provides the core libraries for sekaimcp.
//
// # Overview
//
// sekaimcp answers read-only questions about Project Sekai game data. The
// pkg directory is organized by concern:
//
//  1. [sekai] - Entity model (cards, characters, music, events)
//  2. [integrations] - Upstream HTTP clients (master data mirror, news CMS)
//  3. [snapshot] - Lazy, process-lifetime cache of the four collections
//  4. [assets] - Asset URL templates
//  5. [query] - Filter, lookup and paging operations behind every tool
//
// Supporting packages: [errors] (coded errors and input validation),
// [httputil] (retry with backoff), [observability] (hooks) and [buildinfo].
//
// # Architecture
//
// The typical data flow for a tool call:
//
//	MCP client
//	     ↓
//	internal/mcpserver (validate input, apply defaults)
//	     ↓
//	[query] Service ──→ [assets] Resolver
//	     ↓
//	[snapshot] Store (cold slot → fetch)
//	     ↓
//	[integrations/masterdb] ──→ https://sekai-world.github.io/sekai-master-db-diff
//
// # Quick Start
//
//	import (
//	    "github.com/sekaimcp/sekaimcp/pkg/integrations"
//	    "github.com/sekaimcp/sekaimcp/pkg/integrations/masterdb"
//	    "github.com/sekaimcp/sekaimcp/pkg/query"
//	    "github.com/sekaimcp/sekaimcp/pkg/snapshot"
//	)
//
//	store := snapshot.NewStore(masterdb.NewClient("", integrations.Options{}))
//	svc := query.NewService(store, nil, query.Options{})
//	cards, err := svc.SearchCards(ctx, query.CardFilter{Keyword: "miku"})
package pkg
