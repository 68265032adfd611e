package query

import (
	"context"
	"strings"

	"github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

// MusicFilter selects songs. Empty fields do not filter.
type MusicFilter struct {
	Keyword  string // Matched against title, lyricist and composer
	Category string // Exact tag, e.g. "mv" or "image"
}

// SearchMusic returns up to [MaxSearchResults] songs matching f, in
// snapshot order.
func (s *Service) SearchMusic(ctx context.Context, f MusicFilter) ([]sekai.Music, error) {
	musics, err := s.data.Musics(ctx)
	if err != nil {
		return nil, err
	}

	keyword := strings.ToLower(f.Keyword)
	out := []sekai.Music{}
	for _, m := range musics {
		if len(out) == MaxSearchResults {
			break
		}
		if f.Category != "" && !m.HasCategory(f.Category) {
			continue
		}
		if keyword != "" {
			text := strings.ToLower(m.Title + " " + m.Lyricist + " " + m.Composer)
			if !strings.Contains(text, keyword) {
				continue
			}
		}
		out = append(out, m)
	}
	return out, nil
}

// GetMusic returns the song with id.
func (s *Service) GetMusic(ctx context.Context, id int) (*sekai.Music, error) {
	musics, err := s.data.Musics(ctx)
	if err != nil {
		return nil, err
	}
	m, ok := find(musics, id, func(m sekai.Music) int { return m.ID })
	if !ok {
		return nil, errors.NotFound("music", id)
	}
	return &m, nil
}
