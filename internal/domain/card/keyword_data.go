package card

import (
	"encoding/json"
	"fmt"
)

// Wire discriminator values for the keyword data union.
const (
	dataTypeString = "String"
	dataTypeCardID = "CardID"
)

// KeywordData is the tagged-union payload of a keyword: either literal
// reminder text or a card-reference pattern. Exactly one of Text and
// Pattern is meaningful; IsPattern discriminates.
//
// Wire form is adjacently tagged, keeping the discriminator clear of
// the pattern's own "type" field:
//
//	{"type": "String", "value": "..."}
//	{"type": "CardID", "value": {"type": "Unit", "power": 5}}
type KeywordData struct {
	Text    string
	Pattern *Pattern
}

// LiteralData creates a literal text payload.
func LiteralData(text string) *KeywordData {
	return &KeywordData{Text: text}
}

// PatternData creates a card-reference payload.
func PatternData(p Pattern) *KeywordData {
	return &KeywordData{Pattern: &p}
}

// IsPattern reports whether the payload is a card-reference pattern.
func (d *KeywordData) IsPattern() bool {
	return d != nil && d.Pattern != nil
}

// MarshalJSON renders the tagged union form.
func (d *KeywordData) MarshalJSON() ([]byte, error) {
	if d.Pattern != nil {
		return json.Marshal(struct {
			Type  string   `json:"type"`
			Value *Pattern `json:"value"`
		}{Type: dataTypeCardID, Value: d.Pattern})
	}
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{Type: dataTypeString, Value: d.Text})
}

// UnmarshalJSON decodes the union by its "type" discriminator.
func (d *KeywordData) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode keyword data: %w", err)
	}

	switch probe.Type {
	case dataTypeString:
		var text string
		if err := json.Unmarshal(probe.Value, &text); err != nil {
			return fmt.Errorf("decode keyword literal: %w", err)
		}
		d.Text = text
		d.Pattern = nil
		return nil
	case dataTypeCardID:
		var p Pattern
		if err := json.Unmarshal(probe.Value, &p); err != nil {
			return fmt.Errorf("decode keyword pattern: %w", err)
		}
		d.Text = ""
		d.Pattern = &p
		return nil
	default:
		return fmt.Errorf("unknown keyword data type %q", probe.Type)
	}
}
