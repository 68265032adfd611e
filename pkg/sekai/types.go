package sekai

import (
	"slices"
	"strings"
	"time"
)

// Card is a member card.
type Card struct {
	ID              int       `json:"id"`
	CharacterID     int       `json:"characterId"`     // References GameCharacter.ID; may dangle
	Rarity          int       `json:"rarity"`          // 1-4
	Attr            Attribute `json:"attr"`            // cool, cute, happy, mysterious or pure
	Prefix          string    `json:"prefix"`          // Display title fragment
	ReleaseAt       int64     `json:"releaseAt"`       // Epoch milliseconds
	SkillID         int       `json:"skillId"`         // Skill reference
	AssetbundleName string    `json:"assetbundleName"` // Naming token for asset URLs
	Extra           Extra     `json:"-"`
}

// GameCharacter is a playable character profile.
type GameCharacter struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"` // e.g. "Miku"
	GivenName string `json:"givenName"` // e.g. "Hatsune"
	Gender    string `json:"gender"`
	Height    int    `json:"height"`
	Unit      string `json:"unit"`
	Extra     Extra  `json:"-"`
}

// DisplayName returns the name as shown in game: given name, then first name.
func (c GameCharacter) DisplayName() string {
	return c.GivenName + " " + c.FirstName
}

// Music is a playable song.
type Music struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Pronunciation   string   `json:"pronunciation"`
	Lyricist        string   `json:"lyricist"`
	Composer        string   `json:"composer"`
	Arranger        string   `json:"arranger"`
	Categories      []string `json:"categories"`
	PublishedAt     int64    `json:"publishedAt"`
	AssetbundleName string   `json:"assetbundleName,omitempty"`
	Extra           Extra    `json:"-"`
}

// HasCategory reports whether category is one of the song's tags.
func (m Music) HasCategory(category string) bool {
	return slices.Contains(m.Categories, category)
}

// Event is an in-game event.
type Event struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	StartAt         int64  `json:"startAt"`     // Epoch milliseconds
	AggregateAt     int64  `json:"aggregateAt"` // Epoch milliseconds; end of ranking window
	EventType       string `json:"eventType"`
	AssetbundleName string `json:"assetbundleName"`
	Extra           Extra  `json:"-"`
}

// ActiveAt reports whether t falls inside [StartAt, AggregateAt], inclusive
// on both ends.
func (e Event) ActiveAt(t time.Time) bool {
	ms := t.UnixMilli()
	return e.StartAt <= ms && ms <= e.AggregateAt
}

// Attribute is a card attribute.
type Attribute string

// Card attributes as published upstream.
const (
	AttrCool       Attribute = "cool"
	AttrCute       Attribute = "cute"
	AttrHappy      Attribute = "happy"
	AttrMysterious Attribute = "mysterious"
	AttrPure       Attribute = "pure"
)

// Attributes returns every known attribute in a stable order.
func Attributes() []Attribute {
	return []Attribute{AttrCool, AttrCute, AttrHappy, AttrMysterious, AttrPure}
}

// Valid reports whether a is one of the known attributes.
func (a Attribute) Valid() bool {
	return slices.Contains(Attributes(), a)
}

// ParseAttribute converts s to an Attribute. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseAttribute(s string) (Attribute, bool) {
	a := Attribute(strings.ToLower(strings.TrimSpace(s)))
	return a, a.Valid()
}

// Rarity bounds for cards.
const (
	MinRarity = 1
	MaxRarity = 4
)

// TrainableRarity is the lowest rarity that has post-training artwork.
const TrainableRarity = 3
