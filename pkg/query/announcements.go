package query

import (
	"context"
	"encoding/json"
)

// Announcements returns up to limit announcements, newest first.
// Upstream failures are logged and yield an empty list.
func (s *Service) Announcements(ctx context.Context, limit int) []json.RawMessage {
	if s.feed == nil || limit <= 0 {
		return []json.RawMessage{}
	}
	items, err := s.feed.FetchAnnouncements(ctx, limit)
	if err != nil {
		s.logger.Warn("failed to fetch announcements", "error", err)
		return []json.RawMessage{}
	}
	if items == nil {
		return []json.RawMessage{}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
