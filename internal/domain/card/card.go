// Package card holds the card record schema and the immutable
// collection snapshot the search path reads from.
package card

// Card is one card record, immutable after load. The JSON tags are the
// external wire schema: the card file on disk and the API responses
// both use this exact shape, so it must round-trip losslessly.
type Card struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Img         []string          `json:"img,omitempty"`
	Description string            `json:"description"`
	Cost        int               `json:"cost"`
	Health      int               `json:"health"`
	Defense     int               `json:"defense"`
	Power       int               `json:"power"`
	Type        string            `json:"type"`
	Keywords    []Keyword         `json:"keywords,omitempty"`
	Kins        []string          `json:"kins,omitempty"`
	Abilities   []string          `json:"abilities,omitempty"`
	Artists     []string          `json:"artists,omitempty"`
	Set         string            `json:"set"`
	Legality    map[string]string `json:"legality"`
	Other       []string          `json:"other,omitempty"`
	Functions   []string          `json:"functions,omitempty"`
}

// Keyword is a named keyword on a card with an optional payload.
type Keyword struct {
	Name string       `json:"name"`
	Data *KeywordData `json:"data,omitempty"`
}

// Pattern is a partial card: every field is optional, and each present
// field names a constraint on other cards in the collection. A keyword
// carrying a Pattern refers to the set of cards matching it, resolved
// at query time rather than load time.
type Pattern struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Health      *int      `json:"health,omitempty"`
	Defense     *int      `json:"defense,omitempty"`
	Power       *int      `json:"power,omitempty"`
	Kins        []string  `json:"kins,omitempty"`
	Abilities   []string  `json:"abilities,omitempty"`
	Functions   []string  `json:"functions,omitempty"`
	Keywords    []Keyword `json:"keywords,omitempty"`
}
