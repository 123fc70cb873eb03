// Package search implements the query language: parsing query text
// into a restriction list, evaluating restrictions against cards, and
// ranking matches by fuzzy relevance.
package search

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/veilbound/cardex/internal/domain"
	"github.com/veilbound/cardex/internal/domain/query"
)

// Parse tokenizes and classifies a query string into an ordered
// restriction list. It is pure and deterministic; there is no partial
// recovery — the first bad token fails the whole query. An empty query
// yields an empty list, which matches every card.
func Parse(text string) (query.List, error) {
	tokens := tokenize(text)
	list := make(query.List, 0, len(tokens))
	for _, tok := range tokens {
		r, err := classify(tok)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, nil
}

// token is one raw query token. Quoted tokens keep their internal
// whitespace and always classify as fuzzy terms.
type token struct {
	text   string
	quoted bool
}

// tokenize splits on whitespace, treating double-quoted segments as
// single tokens. An unterminated quote runs to the end of the input.
func tokenize(text string) []token {
	var tokens []token
	var cur strings.Builder
	inQuote := false
	quoted := false

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		tokens = append(tokens, token{text: cur.String(), quoted: quoted})
		cur.Reset()
		quoted = false
	}

	for _, r := range text {
		switch {
		case r == '"':
			if inQuote {
				inQuote = false
			} else {
				inQuote = true
				quoted = true
			}
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// classify maps a token to a restriction, trying shapes in priority
// order: field<op>value, then field:value, then fuzzy.
func classify(tok token) (query.Restriction, error) {
	if tok.quoted {
		return query.NewFuzzy(tok.text), nil
	}

	if field, op, value, ok := splitComparison(tok.text); ok {
		return classifyComparison(tok.text, field, op, value)
	}

	if field, value, ok := strings.Cut(tok.text, ":"); ok {
		return classifyColon(tok.text, field, value)
	}

	return query.NewFuzzy(tok.text), nil
}

// splitComparison finds the first comparison operator in the token and
// splits around it. Two-character operators win over their one-character
// prefixes. A '!' not followed by '=' is not an operator.
func splitComparison(s string) (field string, op query.Operator, value string, ok bool) {
	for i, r := range s {
		switch r {
		case '>', '<':
			if i+1 < len(s) && s[i+1] == '=' {
				return s[:i], query.Operator(s[i : i+2]), s[i+2:], true
			}
			return s[:i], query.Operator(s[i : i+1]), s[i+1:], true
		case '=':
			return s[:i], query.OpEq, s[i+1:], true
		case '!':
			if i+1 < len(s) && s[i+1] == '=' {
				return s[:i], query.OpNe, s[i+2:], true
			}
		}
	}
	return "", "", "", false
}

func classifyComparison(raw, field string, op query.Operator, value string) (query.Restriction, error) {
	attr, known := query.LookupAttribute(field)
	if !known {
		return query.Restriction{}, domain.NewParseError(domain.ErrUnknownField, raw)
	}

	switch {
	case attr.IsNumeric():
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return query.Restriction{}, domain.NewParseError(domain.ErrInvalidNumber, raw)
		}
		r, err := query.NewComparison(attr, op, n)
		if err != nil {
			return query.Restriction{}, domain.NewParseError(domain.ErrMalformedToken, raw)
		}
		return r, nil
	case attr.IsText() && op == query.OpEq:
		r, err := query.NewContains(attr, value)
		if err != nil {
			return query.Restriction{}, domain.NewParseError(domain.ErrMalformedToken, raw)
		}
		return r, nil
	default:
		// Ordering operators on non-numeric fields have no structural
		// meaning; the token falls through to fuzzy matching.
		return query.NewFuzzy(raw), nil
	}
}

func classifyColon(raw, field, value string) (query.Restriction, error) {
	if field == "keyword" {
		return query.NewKeywordName(value), nil
	}

	attr, known := query.LookupAttribute(field)
	if !known {
		return query.Restriction{}, domain.NewParseError(domain.ErrUnknownField, raw)
	}

	switch {
	case attr.IsSet():
		r, err := query.NewSetContains(attr, value)
		if err != nil {
			return query.Restriction{}, domain.NewParseError(domain.ErrMalformedToken, raw)
		}
		return r, nil
	case attr.IsText():
		r, err := query.NewContains(attr, value)
		if err != nil {
			return query.Restriction{}, domain.NewParseError(domain.ErrMalformedToken, raw)
		}
		return r, nil
	default:
		// cost:3 reads as an equality comparison.
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return query.Restriction{}, domain.NewParseError(domain.ErrInvalidNumber, raw)
		}
		r, err := query.NewComparison(attr, query.OpEq, n)
		if err != nil {
			return query.Restriction{}, domain.NewParseError(domain.ErrMalformedToken, raw)
		}
		return r, nil
	}
}
