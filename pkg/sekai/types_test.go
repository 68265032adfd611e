package sekai

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDisplayName(t *testing.T) {
	c := GameCharacter{FirstName: "Miku", GivenName: "Hatsune"}
	if got := c.DisplayName(); got != "Hatsune Miku" {
		t.Errorf("DisplayName() = %q, want %q", got, "Hatsune Miku")
	}
}

func TestHasCategory(t *testing.T) {
	m := Music{Categories: []string{"mv", "original"}}
	if !m.HasCategory("mv") {
		t.Error("HasCategory(mv) = false, want true")
	}
	if m.HasCategory("image") {
		t.Error("HasCategory(image) = true, want false")
	}
	if (Music{}).HasCategory("mv") {
		t.Error("HasCategory on nil categories should be false")
	}
}

func TestEventActiveAt(t *testing.T) {
	e := Event{StartAt: 100, AggregateAt: 200}

	tests := []struct {
		name string
		ms   int64
		want bool
	}{
		{"before", 99, false},
		{"start inclusive", 100, true},
		{"inside", 150, true},
		{"end inclusive", 200, true},
		{"after", 201, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.ActiveAt(time.UnixMilli(tt.ms)); got != tt.want {
				t.Errorf("ActiveAt(%d) = %v, want %v", tt.ms, got, tt.want)
			}
		})
	}
}

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		input  string
		want   Attribute
		wantOK bool
	}{
		{"cool", AttrCool, true},
		{" Mysterious ", AttrMysterious, true},
		{"PURE", AttrPure, true},
		{"fire", Attribute("fire"), false},
		{"", Attribute(""), false},
	}

	for _, tt := range tests {
		got, ok := ParseAttribute(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseAttribute(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCardDecode(t *testing.T) {
	raw := `{"id":1,"seq":10010001,"characterId":1,"cardRarityType":"rarity_4","rarity":4,
		"attr":"cool","prefix":"Unwavering Resolve","releaseAt":1601438400000,"skillId":4,
		"assetbundleName":"res001_no001","cardParameters":[]}`

	var got Card
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	want := Card{
		ID:              1,
		CharacterID:     1,
		Rarity:          4,
		Attr:            AttrCool,
		Prefix:          "Unwavering Resolve",
		ReleaseAt:       1601438400000,
		SkillID:         4,
		AssetbundleName: "res001_no001",
		Extra: Extra{
			"seq":            json.RawMessage(`10010001`),
			"cardRarityType": json.RawMessage(`"rarity_4"`),
			"cardParameters": json.RawMessage(`[]`),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded card mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		into any
	}{
		{
			name: "character",
			raw:  `{"id":1,"firstName":"Ichika","givenName":"Hoshino","gender":"female","height":162,"unit":"light_sound","supportUnitType":"none"}`,
			into: &GameCharacter{},
		},
		{
			name: "card",
			raw:  `{"id":1,"characterId":1,"rarity":4,"attr":"cool","prefix":"Unwavering Resolve","releaseAt":0,"skillId":4,"assetbundleName":"res001_no001","cardSkillName":"Resolve","gachaPhrase":"-"}`,
			into: &Card{},
		},
		{
			name: "music",
			raw:  `{"id":1,"title":"Tell Your World","pronunciation":"","lyricist":"livetune","composer":"livetune","arranger":"livetune","categories":["mv"],"publishedAt":0,"fillerSec":9,"isNewlyWrittenMusic":false}`,
			into: &Music{},
		},
		{
			name: "event",
			raw:  `{"id":1,"name":"Opening","startAt":1,"aggregateAt":2,"eventType":"marathon","assetbundleName":"event_a","unit":"none"}`,
			into: &Event{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := json.Unmarshal([]byte(tt.raw), tt.into); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			out, err := json.Marshal(tt.into)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			var want, got map[string]any
			if err := json.Unmarshal([]byte(tt.raw), &want); err != nil {
				t.Fatal(err)
			}
			if err := json.Unmarshal(out, &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-upstream +encoded):\n%s", diff)
			}
		})
	}
}

func TestRecordWithoutExtraKeys(t *testing.T) {
	var c GameCharacter
	if err := json.Unmarshal([]byte(`{"id":21,"firstName":"Miku","givenName":"Hatsune"}`), &c); err != nil {
		t.Fatal(err)
	}
	if c.Extra != nil {
		t.Errorf("Extra = %v, want nil", c.Extra)
	}
}

func TestMergeObjectKeepsExistingKeys(t *testing.T) {
	out, err := MergeObject([]byte(`{"id":1}`), map[string]json.RawMessage{
		"id":   json.RawMessage(`2`),
		"unit": json.RawMessage(`"piapro"`),
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"id":1,"unit":"piapro"}` {
		t.Errorf("MergeObject() = %s", out)
	}
}
