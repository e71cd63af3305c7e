// Package uri splits URI strings into their RFC 3986 generic components.
//
// Parsing is structural only: nothing is percent-decoded, normalized or
// checked against scheme rules. Malformed delimiter structure is rejected.
package uri

import (
	"strings"

	"github.com/jacoelho/uriparse/internal/keyval"
)

// Component names reported in ParseError.
const (
	ComponentScheme    = "scheme"
	ComponentAuthority = "authority"
)

// URI holds the components of a parsed URI. Authority, Query and Fragment
// are nil when the input has no such component.
type URI struct {
	Scheme    string
	Authority *Authority
	Path      string
	Query     *keyval.Store
	Fragment  *string
}

// HasFragment reports whether the input carried a '#'.
func (u *URI) HasFragment() bool {
	return u != nil && u.Fragment != nil
}

// Release drops every component, including the authority and query store.
// It is safe on a nil URI and on one that is already released.
func (u *URI) Release() {
	if u == nil {
		return
	}
	u.Authority.Release()
	u.Query.Release()
	*u = URI{}
}

// Parse splits raw into its components in a single left-to-right pass.
//
// The returned URI is never nil. When err is not nil it holds every
// component determined before the failure so callers can inspect how far
// parsing got; err is then a *ParseError wrapping one of the Err values.
func Parse(raw string) (*URI, error) {
	u := &URI{}
	return u, parse(u, raw)
}

// TryParse is Parse without partial results: on failure it releases what
// was read and returns nil, false.
func TryParse(raw string) (*URI, bool) {
	u, err := Parse(raw)
	if err != nil {
		u.Release()
		return nil, false
	}
	return u, true
}

func parse(u *URI, raw string) error {
	// Components are substrings of this private copy, never of the caller's buffer.
	input := strings.Clone(raw)

	colon := strings.IndexByte(input, ':')
	if colon <= 0 {
		return &ParseError{Input: raw, Offset: 0, Component: ComponentScheme, Err: ErrMissingScheme}
	}
	u.Scheme = input[:colon]

	pos := colon + 1
	if rest := input[pos:]; strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "[") {
		start := pos
		if rest[0] == '/' {
			start += 2
		}

		// The authority must be closed by a path, even an empty one: a '?' or
		// '#' reached before any '/' is not accepted as its terminator.
		end := strings.IndexAny(input[start:], "/?#")
		if end < 0 || input[start+end] != '/' {
			return &ParseError{Input: raw, Offset: start, Component: ComponentAuthority, Err: ErrUnterminatedAuthority}
		}

		u.Authority = &Authority{}
		if offset, err := parseAuthority(u.Authority, input[start:start+end]); err != nil {
			return &ParseError{Input: raw, Offset: start + offset, Component: ComponentAuthority, Err: err}
		}

		pos = start + end
	}

	rest := input[pos:]

	if hash := strings.IndexByte(rest, '#'); hash >= 0 {
		fragment := rest[hash+1:]
		u.Fragment = &fragment
		rest = rest[:hash]
	}

	if question := strings.IndexByte(rest, '?'); question >= 0 {
		u.Query = keyval.ParseQuery(rest[question+1:])
		rest = rest[:question]
	}

	u.Path = rest

	return nil
}
