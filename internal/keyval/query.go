package keyval

import (
	"iter"
	"strings"
)

// Tokens splits a raw query on '&' and each token on its first '='.
// A token without '=' yields the token as key and an empty value; empty
// tokens (as in "a&&b" or an empty query) yield nothing.
// The input is never modified and the sequence can be ranged over repeatedly.
func Tokens(raw string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for token := range strings.SplitSeq(raw, "&") {
			if token == "" {
				continue
			}
			key, value, _ := strings.Cut(token, "=")
			if !yield(key, value) {
				return
			}
		}
	}
}

// ParseQuery decodes raw into a new store, keeping every token in order.
func ParseQuery(raw string) *Store {
	store := New()
	for key, value := range Tokens(raw) {
		store = store.Append(key, value)
	}
	return store
}
