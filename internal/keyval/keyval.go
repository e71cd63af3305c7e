package keyval

import (
	"encoding/json"
	"iter"
	"slices"
)

// Pair is one key/value entry.
type Pair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Store is an ordered association list. Keys are compared exactly and may
// repeat when pairs are appended; lookups see the most recent match.
type Store struct {
	pairs []Pair
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Set overwrites the value of the most recent pair stored under key, keeping
// its position, or appends a new pair when key is absent. The returned store
// must be used by the caller; a nil receiver allocates a new one.
func (s *Store) Set(key, value string) *Store {
	if s == nil {
		s = New()
	}

	if i := s.index(key); i >= 0 {
		s.pairs[i].Value = value
		return s
	}

	s.pairs = append(s.pairs, Pair{Key: key, Value: value})
	return s
}

// Append adds a pair at the end without looking for an existing key.
func (s *Store) Append(key, value string) *Store {
	if s == nil {
		s = New()
	}

	s.pairs = append(s.pairs, Pair{Key: key, Value: value})
	return s
}

// Clear removes every pair stored under key.
func (s *Store) Clear(key string) {
	if s == nil {
		return
	}

	s.pairs = slices.DeleteFunc(s.pairs, func(p Pair) bool {
		return p.Key == key
	})
}

// Get returns the last value for an exact key match.
func (s *Store) Get(key string) (string, bool) {
	if i := s.index(key); i >= 0 {
		return s.pairs[i].Value, true
	}
	return "", false
}

// GetMut returns a pointer to the last value stored under key, or nil.
// The pointer is invalidated by any later Set, Append or Clear.
func (s *Store) GetMut(key string) *string {
	if i := s.index(key); i >= 0 {
		return &s.pairs[i].Value
	}
	return nil
}

// Len returns the number of pairs.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.pairs)
}

// All yields pairs in insertion order. Every call starts from the first
// pair and observes the store as it is when iteration reaches each index.
func (s *Store) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if s == nil {
			return
		}
		for i := 0; i < len(s.pairs); i++ {
			if !yield(s.pairs[i].Key, s.pairs[i].Value) {
				return
			}
		}
	}
}

// Pairs returns a copy of the pairs in insertion order.
func (s *Store) Pairs() []Pair {
	if s == nil {
		return nil
	}
	return slices.Clone(s.pairs)
}

// Release drops every pair. It is safe on a nil or already released store.
func (s *Store) Release() {
	if s == nil {
		return
	}
	clear(s.pairs)
	s.pairs = nil
}

// MarshalJSON emits the ordered sequence representation.
func (s *Store) MarshalJSON() ([]byte, error) {
	out := s.Pairs()
	if out == nil {
		out = []Pair{}
	}
	return json.Marshal(out)
}

func (s *Store) index(key string) int {
	if s == nil {
		return -1
	}
	for i := len(s.pairs) - 1; i >= 0; i-- {
		if s.pairs[i].Key == key {
			return i
		}
	}
	return -1
}
