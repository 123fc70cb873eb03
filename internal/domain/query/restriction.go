package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates restriction variants.
type Kind int

const (
	// KindFuzzy is a free-text term matched by approximate similarity.
	KindFuzzy Kind = iota
	// KindComparison compares a numeric attribute against an integer.
	KindComparison
	// KindContains is a case-insensitive substring test on a text attribute.
	KindContains
	// KindSetContains is an exact membership test on a set attribute.
	KindSetContains
	// KindKeywordName matches cards with a keyword whose name contains
	// the value; keywords carrying a card-reference pattern must also
	// resolve to at least one other card.
	KindKeywordName
)

// Restriction is one typed predicate parsed from a query token. The
// zero value is not valid; use the constructors.
type Restriction struct {
	kind Kind
	attr Attribute
	op   Operator
	num  int
	text string
}

// NewFuzzy creates a free-text relevance term.
func NewFuzzy(text string) Restriction {
	return Restriction{kind: KindFuzzy, text: text}
}

// NewComparison creates a numeric comparison restriction.
func NewComparison(attr Attribute, op Operator, n int) (Restriction, error) {
	if !attr.IsNumeric() {
		return Restriction{}, fmt.Errorf("attribute %q is not numeric", attr)
	}
	if n < 0 {
		return Restriction{}, fmt.Errorf("negative comparison value %d", n)
	}
	return Restriction{kind: KindComparison, attr: attr, op: op, num: n}, nil
}

// NewContains creates a substring restriction on a text attribute.
func NewContains(attr Attribute, s string) (Restriction, error) {
	if !attr.IsText() {
		return Restriction{}, fmt.Errorf("attribute %q is not a text field", attr)
	}
	return Restriction{kind: KindContains, attr: attr, text: s}, nil
}

// NewSetContains creates a membership restriction on a set attribute.
func NewSetContains(attr Attribute, v string) (Restriction, error) {
	if !attr.IsSet() {
		return Restriction{}, fmt.Errorf("attribute %q is not set-valued", attr)
	}
	return Restriction{kind: KindSetContains, attr: attr, text: v}, nil
}

// NewKeywordName creates a keyword-name restriction.
func NewKeywordName(v string) Restriction {
	return Restriction{kind: KindKeywordName, text: v}
}

// Kind returns the restriction variant.
func (r Restriction) Kind() Kind { return r.kind }

// Attribute returns the attribute tag (comparison, contains, set variants).
func (r Restriction) Attribute() Attribute { return r.attr }

// Operator returns the comparison operator (comparison variant only).
func (r Restriction) Operator() Operator { return r.op }

// Number returns the comparison right-hand side (comparison variant only).
func (r Restriction) Number() int { return r.num }

// Text returns the text payload (all variants except comparison).
func (r Restriction) Text() string { return r.text }

// Render returns the canonical token form of the restriction.
func (r Restriction) Render() string {
	switch r.kind {
	case KindComparison:
		return string(r.attr) + string(r.op) + strconv.Itoa(r.num)
	case KindContains, KindSetContains:
		return string(r.attr) + ":" + quoteIfSpaced(r.text)
	case KindKeywordName:
		return "keyword:" + quoteIfSpaced(r.text)
	default:
		return quoteIfSpaced(r.text)
	}
}

func quoteIfSpaced(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}

// List is the ordered restriction sequence parsed from one query.
// Order does not affect filtering (restrictions combine with logical
// AND) but is preserved for rendering the normalized query back.
type List []Restriction

// Render returns the canonical text form of the whole query, the
// inverse of parsing up to whitespace and quoting normalization.
func (l List) Render() string {
	tokens := make([]string, len(l))
	for i, r := range l {
		tokens[i] = r.Render()
	}
	return strings.Join(tokens, " ")
}

// HasFuzzy reports whether the list contains a free-text term, which
// decides whether ranking applies.
func (l List) HasFuzzy() bool {
	for _, r := range l {
		if r.kind == KindFuzzy {
			return true
		}
	}
	return false
}
