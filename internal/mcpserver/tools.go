package mcpserver

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sekaimcp/sekaimcp/pkg/assets"
	"github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/query"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

// Tool names.
const (
	ToolSearchCards      = "search_cards"
	ToolGetCardInfo      = "get_card_info"
	ToolGetCharacterInfo = "get_character_info"
	ToolSearchMusic      = "search_music"
	ToolGetMusicInfo     = "get_music_info"
	ToolGetCurrentEvent  = "get_current_event"
	ToolGetEvents        = "get_events"
	ToolGetAnnouncements = "get_announcements"
	ToolGetAssetURL      = "get_asset_url"
)

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolSearchCards,
		Description: "Search for Project Sekai cards by keyword, character, attribute, or rarity.",
		InputSchema: searchCardsSchema(),
	}, handler(s, ToolSearchCards, s.searchCards))

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolGetCardInfo,
		Description: "Get detailed information for a specific card by ID.",
	}, handler(s, ToolGetCardInfo, s.getCardInfo))

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolGetCharacterInfo,
		Description: "Get profile information for a character.",
	}, handler(s, ToolGetCharacterInfo, s.getCharacterInfo))

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolSearchMusic,
		Description: "Search for music tracks.",
	}, handler(s, ToolSearchMusic, s.searchMusic))

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolGetMusicInfo,
		Description: "Get detailed info for a song.",
	}, handler(s, ToolGetMusicInfo, s.getMusicInfo))

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolGetCurrentEvent,
		Description: "Get the currently active event.",
	}, handler(s, ToolGetCurrentEvent, s.getCurrentEvent))

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolGetEvents,
		Description: "List events, newest first.",
		InputSchema: getEventsSchema(),
	}, handler(s, ToolGetEvents, s.getEvents))

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolGetAnnouncements,
		Description: "Fetch news and announcements.",
		InputSchema: getAnnouncementsSchema(),
	}, handler(s, ToolGetAnnouncements, s.getAnnouncements))

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        ToolGetAssetURL,
		Description: "Get the URL for a game asset.",
		InputSchema: getAssetURLSchema(),
	}, handler(s, ToolGetAssetURL, s.getAssetURL))
}

// --- Tool input types ---

type searchCardsInput struct {
	Keyword     string `json:"keyword,omitempty" jsonschema:"search term for card name or character name"`
	CharacterID *int   `json:"characterId,omitempty" jsonschema:"filter by specific character ID"`
	Attribute   string `json:"attribute,omitempty" jsonschema:"card attribute"`
	Rarity      *int   `json:"rarity,omitempty" jsonschema:"card rarity (1-4)"`
}

type getCardInfoInput struct {
	CardID int `json:"cardId" jsonschema:"the unique ID of the card"`
}

type getCharacterInfoInput struct {
	CharacterID int `json:"characterId" jsonschema:"the unique ID of the character"`
}

type searchMusicInput struct {
	Keyword  string `json:"keyword,omitempty" jsonschema:"search term for title, lyricist or composer"`
	Category string `json:"category,omitempty" jsonschema:"music category tag, e.g. mv or image"`
}

type getMusicInfoInput struct {
	MusicID int `json:"musicId" jsonschema:"the unique ID of the song"`
}

type getCurrentEventInput struct{}

type getEventsInput struct {
	Limit  *int `json:"limit,omitempty" jsonschema:"number of events to return (default 5)"`
	Offset *int `json:"offset,omitempty" jsonschema:"number of events to skip (default 0)"`
}

type getAnnouncementsInput struct {
	Limit *int `json:"limit,omitempty" jsonschema:"number of announcements to return (default 5)"`
}

type getAssetURLInput struct {
	Type string `json:"type" jsonschema:"asset type"`
	ID   int    `json:"id" jsonschema:"card ID for card and icon assets, music ID for music assets"`
}

// --- Input schemas ---

func schemaFor[T any]() *jsonschema.Schema {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		panic("mcpserver: infer schema: " + err.Error())
	}
	return schema
}

func searchCardsSchema() *jsonschema.Schema {
	schema := schemaFor[searchCardsInput]()
	attrs := make([]any, 0, len(sekai.Attributes()))
	for _, a := range sekai.Attributes() {
		attrs = append(attrs, string(a))
	}
	schema.Properties["attribute"].Enum = attrs
	schema.Properties["rarity"].Minimum = ptr(float64(sekai.MinRarity))
	schema.Properties["rarity"].Maximum = ptr(float64(sekai.MaxRarity))
	return schema
}

func getEventsSchema() *jsonschema.Schema {
	schema := schemaFor[getEventsInput]()
	schema.Properties["limit"].Minimum = ptr(0.0)
	schema.Properties["limit"].Maximum = ptr(float64(errors.MaxPageLimit))
	schema.Properties["offset"].Minimum = ptr(0.0)
	return schema
}

func getAnnouncementsSchema() *jsonschema.Schema {
	schema := schemaFor[getAnnouncementsInput]()
	schema.Properties["limit"].Minimum = ptr(0.0)
	schema.Properties["limit"].Maximum = ptr(float64(errors.MaxPageLimit))
	return schema
}

func getAssetURLSchema() *jsonschema.Schema {
	schema := schemaFor[getAssetURLInput]()
	kinds := make([]any, 0, len(assets.Kinds()))
	for _, k := range assets.Kinds() {
		kinds = append(kinds, string(k))
	}
	schema.Properties["type"].Enum = kinds
	return schema
}

// --- Tool handlers ---

func (s *Server) searchCards(ctx context.Context, in searchCardsInput) (any, error) {
	if err := errors.ValidateKeyword(in.Keyword); err != nil {
		return nil, err
	}
	filter := query.CardFilter{
		Keyword:     in.Keyword,
		CharacterID: in.CharacterID,
		Rarity:      in.Rarity,
	}
	if in.Attribute != "" {
		attr, ok := sekai.ParseAttribute(in.Attribute)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown attribute %q", in.Attribute)
		}
		filter.Attribute = attr
	}
	if in.Rarity != nil {
		if err := errors.ValidateRange("rarity", *in.Rarity, sekai.MinRarity, sekai.MaxRarity); err != nil {
			return nil, err
		}
	}
	return s.svc.SearchCards(ctx, filter)
}

func (s *Server) getCardInfo(ctx context.Context, in getCardInfoInput) (any, error) {
	if err := errors.ValidateID("cardId", in.CardID); err != nil {
		return nil, err
	}
	return s.svc.GetCard(ctx, in.CardID)
}

func (s *Server) getCharacterInfo(ctx context.Context, in getCharacterInfoInput) (any, error) {
	if err := errors.ValidateID("characterId", in.CharacterID); err != nil {
		return nil, err
	}
	return s.svc.GetCharacter(ctx, in.CharacterID)
}

func (s *Server) searchMusic(ctx context.Context, in searchMusicInput) (any, error) {
	if err := errors.ValidateKeyword(in.Keyword); err != nil {
		return nil, err
	}
	return s.svc.SearchMusic(ctx, query.MusicFilter{Keyword: in.Keyword, Category: in.Category})
}

func (s *Server) getMusicInfo(ctx context.Context, in getMusicInfoInput) (any, error) {
	if err := errors.ValidateID("musicId", in.MusicID); err != nil {
		return nil, err
	}
	return s.svc.GetMusic(ctx, in.MusicID)
}

func (s *Server) getCurrentEvent(ctx context.Context, _ getCurrentEventInput) (any, error) {
	return s.svc.CurrentEvent(ctx)
}

func (s *Server) getEvents(ctx context.Context, in getEventsInput) (any, error) {
	page := query.EventPage{Limit: query.DefaultEventLimit}
	if in.Limit != nil {
		page.Limit = *in.Limit
	}
	if in.Offset != nil {
		page.Offset = *in.Offset
	}
	if err := errors.ValidatePage(page.Limit, page.Offset); err != nil {
		return nil, err
	}
	return s.svc.ListEvents(ctx, page)
}

func (s *Server) getAnnouncements(ctx context.Context, in getAnnouncementsInput) (any, error) {
	limit := query.DefaultAnnouncementLimit
	if in.Limit != nil {
		limit = *in.Limit
	}
	if err := errors.ValidatePage(limit, 0); err != nil {
		return nil, err
	}
	return s.svc.Announcements(ctx, limit), nil
}

func (s *Server) getAssetURL(ctx context.Context, in getAssetURLInput) (any, error) {
	kind := assets.Kind(in.Type)
	if !kind.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown asset type %q", in.Type)
	}
	if err := errors.ValidateID("id", in.ID); err != nil {
		return nil, err
	}
	return s.svc.AssetURL(ctx, kind, in.ID)
}

func ptr[T any](v T) *T { return &v }
