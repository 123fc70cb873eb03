package search

import (
	"slices"
	"strings"

	"github.com/veilbound/cardex/internal/domain/card"
	"github.com/veilbound/cardex/internal/domain/query"
)

// Cross-reference recursion depth. Patterns on a referenced card's own
// keywords are matched by name only, never expanded further, so cycles
// through mutually referencing keywords cannot recurse.
const maxPatternDepth = 1

// Matches reports whether a card satisfies every restriction in the
// list. An empty list matches everything. The collection is consulted
// only to resolve keyword card-reference patterns.
func Matches(c *card.Card, list query.List, coll *card.Collection) bool {
	return matchesAt(c, list, coll, 0)
}

func matchesAt(c *card.Card, list query.List, coll *card.Collection, depth int) bool {
	for _, r := range list {
		if !matchRestriction(c, r, coll, depth) {
			return false
		}
	}
	return true
}

func matchRestriction(c *card.Card, r query.Restriction, coll *card.Collection, depth int) bool {
	switch r.Kind() {
	case query.KindComparison:
		return r.Operator().Compare(numericAttr(c, r.Attribute()), r.Number())
	case query.KindContains:
		return containsFold(textAttr(c, r.Attribute()), r.Text())
	case query.KindSetContains:
		return slices.Contains(setAttr(c, r.Attribute()), r.Text())
	case query.KindKeywordName:
		return matchKeywordName(c, r.Text(), coll, depth)
	case query.KindFuzzy:
		return matchFuzzy(c, r.Text())
	default:
		return false
	}
}

// numericAttr extracts a numeric stat by attribute tag.
func numericAttr(c *card.Card, attr query.Attribute) int {
	switch attr {
	case query.AttrCost:
		return c.Cost
	case query.AttrHealth:
		return c.Health
	case query.AttrDefense:
		return c.Defense
	case query.AttrPower:
		return c.Power
	default:
		return 0
	}
}

// textAttr extracts a text field by attribute tag.
func textAttr(c *card.Card, attr query.Attribute) string {
	switch attr {
	case query.AttrName:
		return c.Name
	case query.AttrType:
		return c.Type
	case query.AttrDescription:
		return c.Description
	default:
		return ""
	}
}

// setAttr extracts a set-valued field by attribute tag.
func setAttr(c *card.Card, attr query.Attribute) []string {
	switch attr {
	case query.AttrKins:
		return c.Kins
	case query.AttrAbilities:
		return c.Abilities
	case query.AttrFunctions:
		return c.Functions
	case query.AttrOther:
		return c.Other
	case query.AttrArtists:
		return c.Artists
	default:
		return nil
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// matchFuzzy is the structural side of a free-text term: the card must
// contain the term somewhere in its searchable text (name, description,
// type, kin tags, keyword names). Relevance ordering is the ranker's job.
func matchFuzzy(c *card.Card, term string) bool {
	if containsFold(c.Name, term) || containsFold(c.Description, term) || containsFold(c.Type, term) {
		return true
	}
	for _, kin := range c.Kins {
		if containsFold(kin, term) {
			return true
		}
	}
	for _, kw := range c.Keywords {
		if containsFold(kw.Name, term) {
			return true
		}
	}
	return false
}

// matchKeywordName finds a keyword whose name contains v. A keyword
// carrying a card-reference pattern only counts when at least one other
// card in the collection satisfies the pattern; an unresolvable pattern
// simply does not match. At the recursion limit patterns are not
// expanded and the name match alone decides.
func matchKeywordName(c *card.Card, v string, coll *card.Collection, depth int) bool {
	for _, kw := range c.Keywords {
		if !containsFold(kw.Name, v) {
			continue
		}
		if !kw.Data.IsPattern() || depth >= maxPatternDepth {
			return true
		}
		if patternResolves(c, kw.Data.Pattern, coll, depth) {
			return true
		}
	}
	return false
}

// patternResolves tests the partial card pattern against every card in
// the collection except the bearer.
func patternResolves(bearer *card.Card, p *card.Pattern, coll *card.Collection, depth int) bool {
	for _, other := range coll.Cards() {
		if other == bearer || other.ID == bearer.ID {
			continue
		}
		if matchesPattern(other, p, coll, depth+1) {
			return true
		}
	}
	return false
}

// matchesPattern tests one card against a partial card. Name and type
// constrain by case-insensitive equality, never substring: a pattern
// naming "Unit" must not be satisfied by "Subunit". Description is a
// containment test, stats are exact equality, list fields are
// membership per element. Pattern keywords match by name, subject to
// the recursion limit.
func matchesPattern(c *card.Card, p *card.Pattern, coll *card.Collection, depth int) bool {
	if p.Name != nil && !strings.EqualFold(c.Name, *p.Name) {
		return false
	}
	if p.Type != nil && !strings.EqualFold(c.Type, *p.Type) {
		return false
	}
	if p.Description != nil && !containsFold(c.Description, *p.Description) {
		return false
	}
	if p.Health != nil && c.Health != *p.Health {
		return false
	}
	if p.Defense != nil && c.Defense != *p.Defense {
		return false
	}
	if p.Power != nil && c.Power != *p.Power {
		return false
	}
	for _, kin := range p.Kins {
		if !slices.Contains(c.Kins, kin) {
			return false
		}
	}
	for _, a := range p.Abilities {
		if !slices.Contains(c.Abilities, a) {
			return false
		}
	}
	for _, f := range p.Functions {
		if !slices.Contains(c.Functions, f) {
			return false
		}
	}
	for _, kw := range p.Keywords {
		if !matchKeywordName(c, kw.Name, coll, depth) {
			return false
		}
	}
	return true
}
