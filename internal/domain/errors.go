package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField signals a query restriction naming an attribute
	// the query language does not support.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidNumber signals a numeric comparison whose right-hand
	// side is not a valid non-negative integer.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrMalformedToken signals a token matching none of the recognized
	// shapes. The current grammar sends unmatched tokens to fuzzy
	// matching, so this is reserved for future grammar extensions.
	ErrMalformedToken = errors.New("malformed token")
	// ErrCardNotFound signals a missing card id.
	ErrCardNotFound = errors.New("card not found")
)

// ParseError wraps a parse sentinel with the token that failed to parse.
type ParseError struct {
	Token string
	kind  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.kind.Error(), e.Token)
}

func (e *ParseError) Unwrap() error { return e.kind }

// NewParseError creates a parse error for the given token.
func NewParseError(kind error, token string) error {
	return &ParseError{Token: token, kind: kind}
}
