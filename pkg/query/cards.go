package query

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sekaimcp/sekaimcp/pkg/assets"
	"github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

// UnknownCharacter is shown for cards whose character is not in the snapshot.
const UnknownCharacter = "Unknown"

// CardFilter selects cards. Unset fields do not filter; set fields are
// combined with AND. CharacterID and Rarity are pointers so that any
// supplied value, including 0, is a real filter.
type CardFilter struct {
	Keyword     string
	CharacterID *int
	Attribute   sekai.Attribute
	Rarity      *int
}

// CardSummary is one row of a card search.
type CardSummary struct {
	ID        int             `json:"id"`
	Prefix    string          `json:"prefix"`
	Character string          `json:"character"`
	Rarity    int             `json:"rarity"`
	Attribute sekai.Attribute `json:"attribute"`
}

// CardDetail is a card plus its artwork URLs. TrainingImageURL is nil for
// cards below [sekai.TrainableRarity] and encodes as JSON null.
type CardDetail struct {
	sekai.Card
	ImageURL         string  `json:"imageUrl"`
	TrainingImageURL *string `json:"trainingImageUrl"`
}

// MarshalJSON encodes the full card record with the artwork URLs added.
// The URLs replace any upstream keys of the same name.
func (d CardDetail) MarshalJSON() ([]byte, error) {
	card, err := d.Card.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(card, &fields); err != nil {
		return nil, err
	}
	artwork, err := json.Marshal(struct {
		ImageURL         string  `json:"imageUrl"`
		TrainingImageURL *string `json:"trainingImageUrl"`
	}{d.ImageURL, d.TrainingImageURL})
	if err != nil {
		return nil, err
	}
	return sekai.MergeObject(artwork, fields)
}

// SearchCards returns up to [MaxSearchResults] cards matching f, in
// snapshot order.
func (s *Service) SearchCards(ctx context.Context, f CardFilter) ([]CardSummary, error) {
	cards, err := s.data.Cards(ctx)
	if err != nil {
		return nil, err
	}
	chars, err := s.data.Characters(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int]string, len(chars))
	for _, c := range chars {
		names[c.ID] = c.DisplayName()
	}
	keyword := strings.ToLower(f.Keyword)

	out := []CardSummary{}
	for _, card := range cards {
		if len(out) == MaxSearchResults {
			break
		}
		if f.CharacterID != nil && card.CharacterID != *f.CharacterID {
			continue
		}
		if f.Attribute != "" && card.Attr != f.Attribute {
			continue
		}
		if f.Rarity != nil && card.Rarity != *f.Rarity {
			continue
		}
		name, known := names[card.CharacterID]
		if keyword != "" {
			target := strings.ToLower(card.Prefix + " " + name)
			if !strings.Contains(target, keyword) {
				continue
			}
		}
		if !known {
			name = UnknownCharacter
		}
		out = append(out, CardSummary{
			ID:        card.ID,
			Prefix:    card.Prefix,
			Character: name,
			Rarity:    card.Rarity,
			Attribute: card.Attr,
		})
	}
	return out, nil
}

// GetCard returns the card with id and its artwork URLs.
func (s *Service) GetCard(ctx context.Context, id int) (*CardDetail, error) {
	cards, err := s.data.Cards(ctx)
	if err != nil {
		return nil, err
	}
	card, ok := find(cards, id, func(c sekai.Card) int { return c.ID })
	if !ok {
		return nil, errors.NotFound("card", id)
	}

	detail := &CardDetail{
		Card:     card,
		ImageURL: s.assets.URL(assets.CardNormal, card.AssetbundleName),
	}
	if card.Rarity >= sekai.TrainableRarity {
		u := s.assets.URL(assets.CardTraining, card.AssetbundleName)
		detail.TrainingImageURL = &u
	}
	return detail, nil
}

// GetCharacter returns the character with id.
func (s *Service) GetCharacter(ctx context.Context, id int) (*sekai.GameCharacter, error) {
	chars, err := s.data.Characters(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := find(chars, id, func(c sekai.GameCharacter) int { return c.ID })
	if !ok {
		return nil, errors.NotFound("character", id)
	}
	return &c, nil
}
