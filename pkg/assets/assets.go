// Package assets maps entity naming tokens to asset URLs.
//
// Asset files live under a fixed external root and follow a per-kind
// naming convention keyed by an entity's assetbundleName:
//
//	card_normal    {root}/character/member/{token}/card_normal.webp
//	card_training  {root}/character/member/{token}/card_after_training.webp
//	icon           {root}/thumbnail/chara/{token}_normal.webp
//	music_jacket   {root}/music/jacket/{token}/{token}.webp
//	music_short    {root}/music/short/{token}/{token}_short.mp3
//
// No network call is made; URLs are built from strings only.
package assets

import "strings"

// DefaultRoot is the public asset mirror for the JP server.
const DefaultRoot = "https://storage.sekai.best/sekai-jp-assets"

// Kind names an asset type.
type Kind string

// Supported asset kinds.
const (
	CardNormal   Kind = "card_normal"
	CardTraining Kind = "card_training"
	Icon         Kind = "icon"
	MusicJacket  Kind = "music_jacket"
	MusicShort   Kind = "music_short"
)

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{CardNormal, CardTraining, Icon, MusicJacket, MusicShort}
}

// Source identifies the collection an asset kind's token is looked up in.
type Source int

const (
	SourceUnknown Source = iota
	SourceCards
	SourceMusics
)

// Source returns the collection that owns the naming token for k.
func (k Kind) Source() Source {
	switch k {
	case CardNormal, CardTraining, Icon:
		return SourceCards
	case MusicJacket, MusicShort:
		return SourceMusics
	default:
		return SourceUnknown
	}
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	return k.Source() != SourceUnknown
}

// Resolver builds asset URLs under Root.
type Resolver struct {
	Root string
}

// NewResolver returns a Resolver for root. An empty root selects
// [DefaultRoot]; a trailing slash is trimmed.
func NewResolver(root string) Resolver {
	if root == "" {
		root = DefaultRoot
	}
	return Resolver{Root: strings.TrimSuffix(root, "/")}
}

// URL returns the asset URL for kind and token.
// An unknown kind yields "", which callers must treat as unsupported.
func (r Resolver) URL(kind Kind, token string) string {
	switch kind {
	case CardNormal:
		return r.Root + "/character/member/" + token + "/card_normal.webp"
	case CardTraining:
		return r.Root + "/character/member/" + token + "/card_after_training.webp"
	case Icon:
		return r.Root + "/thumbnail/chara/" + token + "_normal.webp"
	case MusicJacket:
		return r.Root + "/music/jacket/" + token + "/" + token + ".webp"
	case MusicShort:
		return r.Root + "/music/short/" + token + "/" + token + "_short.mp3"
	default:
		return ""
	}
}
