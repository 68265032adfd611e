package sekai

import "encoding/json"

// Extra holds the upstream keys a record type does not declare, keyed by
// their JSON name. Values are kept verbatim so a record re-encodes to the
// object it was decoded from.
type Extra map[string]json.RawMessage

// decodeRecord decodes data into v, a pointer to a method-less twin of the
// record type, and returns every key of data that v does not encode. The
// result is nil when data has no unknown keys.
func decodeRecord(data []byte, v any) (Extra, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var all Extra
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	known, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var declared map[string]json.RawMessage
	if err := json.Unmarshal(known, &declared); err != nil {
		return nil, err
	}
	for k := range declared {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// encodeRecord encodes v and adds extra. Declared fields win over extra keys
// of the same name.
func encodeRecord(v any, extra Extra) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	return MergeObject(b, extra)
}

// MergeObject adds fields to the JSON object obj. Keys already present in
// obj are left alone.
func MergeObject(obj []byte, fields map[string]json.RawMessage) ([]byte, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(obj, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]json.RawMessage, len(fields))
	}
	for k, v := range fields {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a card and keeps its undeclared keys in Extra.
func (c *Card) UnmarshalJSON(data []byte) error {
	type plain Card
	var p plain
	extra, err := decodeRecord(data, &p)
	if err != nil {
		return err
	}
	*c = Card(p)
	c.Extra = extra
	return nil
}

// MarshalJSON encodes the card with its Extra keys restored.
func (c Card) MarshalJSON() ([]byte, error) {
	type plain Card
	return encodeRecord(plain(c), c.Extra)
}

// UnmarshalJSON decodes a character and keeps its undeclared keys in Extra.
func (c *GameCharacter) UnmarshalJSON(data []byte) error {
	type plain GameCharacter
	var p plain
	extra, err := decodeRecord(data, &p)
	if err != nil {
		return err
	}
	*c = GameCharacter(p)
	c.Extra = extra
	return nil
}

// MarshalJSON encodes the character with its Extra keys restored.
func (c GameCharacter) MarshalJSON() ([]byte, error) {
	type plain GameCharacter
	return encodeRecord(plain(c), c.Extra)
}

// UnmarshalJSON decodes a song and keeps its undeclared keys in Extra.
func (m *Music) UnmarshalJSON(data []byte) error {
	type plain Music
	var p plain
	extra, err := decodeRecord(data, &p)
	if err != nil {
		return err
	}
	*m = Music(p)
	m.Extra = extra
	return nil
}

// MarshalJSON encodes the song with its Extra keys restored.
func (m Music) MarshalJSON() ([]byte, error) {
	type plain Music
	return encodeRecord(plain(m), m.Extra)
}

// UnmarshalJSON decodes an event and keeps its undeclared keys in Extra.
func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	var p plain
	extra, err := decodeRecord(data, &p)
	if err != nil {
		return err
	}
	*e = Event(p)
	e.Extra = extra
	return nil
}

// MarshalJSON encodes the event with its Extra keys restored.
func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	return encodeRecord(plain(e), e.Extra)
}
