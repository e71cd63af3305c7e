package uri

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingScheme indicates the input has no ':' at all.
	ErrMissingScheme = errors.New("missing scheme")

	// ErrUnterminatedAuthority indicates an authority marker that is not followed by '/'.
	ErrUnterminatedAuthority = errors.New("unterminated authority")

	// ErrMalformedIPv6Host indicates a '[' host without its closing ']' or with
	// unexpected content after it.
	ErrMalformedIPv6Host = errors.New("malformed IPv6 host")

	// ErrEmptyPort indicates a ':' in the authority with no digits after it.
	ErrEmptyPort = errors.New("empty port")

	// ErrInvalidPort indicates port text that is not a base-10 number in 0-65535.
	ErrInvalidPort = errors.New("invalid port")
)

// ParseError records where parsing stopped. Offset is the byte index into
// Input at which the failing component starts. Error does not repeat Input,
// which may carry credentials.
type ParseError struct {
	Input     string
	Offset    int
	Component string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse uri: %s at offset %d: %v", e.Component, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
