// Package masterdb provides an HTTP client for the published Project Sekai
// master-data snapshot.
//
// # Overview
//
// The snapshot is a set of static JSON files, one array per collection,
// served from a single base URL (by default the sekai-master-db-diff
// mirror at https://sekai-world.github.io/sekai-master-db-diff).
//
// # Usage
//
//	client := masterdb.NewClient(masterdb.DefaultBaseURL, integrations.Options{})
//	cards, err := client.FetchCards(ctx)
//	if err != nil {
//	    var fe *errors.DataFetchError
//	    // fe.Resource == "cards.json"
//	}
//
// # Resources
//
//   - cards.json: [sekai.Card]
//   - gameCharacters.json: [sekai.GameCharacter]
//   - musics.json: [sekai.Music]
//   - events.json: [sekai.Event]
//
// Every failure (transport, status, or decode) is returned as a
// *errors.DataFetchError naming the resource. The client never caches;
// callers that want read-through caching wrap it in a snapshot.Store.
package masterdb
