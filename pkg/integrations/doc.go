// Package integrations provides HTTP clients for the upstream services
// sekaimcp reads from.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [masterdb]: the published game-data snapshot (cards, characters,
//     musics, events)
//   - [strapi]: the news/announcements CMS
//
// # Shared Infrastructure
//
// The [Client] type provides the HTTP plumbing used by both: base URL
// handling, default headers (including a User-Agent from [buildinfo]),
// JSON decoding, retry of transient failures via [httputil.Retry], and
// request/response events via [observability.HTTP].
//
// Status handling:
//   - 200: decoded into the target value
//   - 404: [ErrNotFound], not retried
//   - 429 and 5xx: [ErrNetwork] wrapped as retryable
//   - anything else: [ErrNetwork], not retried
//
// # Adding a New Upstream
//
//  1. Create a subpackage: pkg/integrations/<name>/
//  2. Define response structs matching the API schema
//  3. Embed a [Client] created with [NewClient]
//  4. Translate errors into pkg/errors types at the package boundary
//
// [masterdb]: github.com/sekaimcp/sekaimcp/pkg/integrations/masterdb
// [strapi]: github.com/sekaimcp/sekaimcp/pkg/integrations/strapi
// [buildinfo]: github.com/sekaimcp/sekaimcp/pkg/buildinfo
// [httputil.Retry]: github.com/sekaimcp/sekaimcp/pkg/httputil.Retry
// [observability.HTTP]: github.com/sekaimcp/sekaimcp/pkg/observability.HTTP
package integrations
