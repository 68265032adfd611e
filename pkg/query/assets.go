package query

import (
	"context"
	"fmt"

	"github.com/sekaimcp/sekaimcp/pkg/assets"
	"github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

// AssetURL resolves the asset of the given kind for entity id. Card kinds
// and icon look the id up in cards, music kinds in musics.
func (s *Service) AssetURL(ctx context.Context, kind assets.Kind, id int) (string, error) {
	var token string
	switch kind.Source() {
	case assets.SourceCards:
		cards, err := s.data.Cards(ctx)
		if err != nil {
			return "", err
		}
		if c, ok := find(cards, id, func(c sekai.Card) int { return c.ID }); ok {
			token = c.AssetbundleName
		}
	case assets.SourceMusics:
		musics, err := s.data.Musics(ctx)
		if err != nil {
			return "", err
		}
		if m, ok := find(musics, id, func(m sekai.Music) int { return m.ID }); ok {
			token = m.AssetbundleName
		}
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown asset type %q", kind)
	}

	if token == "" {
		return "", errors.NotFound(fmt.Sprintf("asset bundle for %s", kind), id)
	}
	return s.assets.URL(kind, token), nil
}
