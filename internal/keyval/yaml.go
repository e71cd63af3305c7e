package keyval

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"
)

// ErrDecode reports a YAML document that cannot be read as a store.
var ErrDecode = errors.New("keyval: invalid document")

// UnmarshalYAML supports both mapping and sequence forms:
//
//	tag: networking
//	order: newest
//
// or:
//
//   - key: tag
//     value: networking
//
// The sequence form is the only one able to carry repeated keys.
func (s *Store) UnmarshalYAML(node ast.Node) error {
	switch n := node.(type) {
	case *ast.NullNode:
		s.pairs = nil
		return nil
	case *ast.MappingNode:
		out := make([]Pair, 0, len(n.Values))
		for _, pair := range n.Values {
			key, err := nodeToString(pair.Key)
			if err != nil {
				return fmt.Errorf("%w: invalid key: %v", ErrDecode, err)
			}

			value, err := nodeToString(pair.Value)
			if err != nil {
				return fmt.Errorf("%w: invalid value for key %q: %v", ErrDecode, key, err)
			}

			out = append(out, Pair{Key: key, Value: value})
		}
		s.pairs = out
		return nil
	case *ast.SequenceNode:
		out := make([]Pair, 0, len(n.Values))
		for index, item := range n.Values {
			mapNode, ok := item.(*ast.MappingNode)
			if !ok {
				return fmt.Errorf("%w: entry at index %d must be mapping", ErrDecode, index)
			}

			var (
				key    string
				value  string
				hasKey bool
			)

			for _, pair := range mapNode.Values {
				fieldNode, ok := pair.Key.(*ast.StringNode)
				if !ok {
					return fmt.Errorf("%w: entry field key must be string", ErrDecode)
				}

				parsed, err := nodeToString(pair.Value)
				if err != nil {
					return fmt.Errorf("%w: invalid %s at index %d: %v", ErrDecode, fieldNode.Value, index, err)
				}

				switch fieldNode.Value {
				case "key":
					key = parsed
					hasKey = true
				case "value":
					value = parsed
				default:
					return fmt.Errorf("%w: entry unknown field %q", ErrDecode, fieldNode.Value)
				}
			}

			if !hasKey {
				return fmt.Errorf("%w: entry at index %d missing key", ErrDecode, index)
			}

			out = append(out, Pair{Key: key, Value: value})
		}
		s.pairs = out
		return nil
	default:
		return fmt.Errorf("%w: must be mapping or sequence", ErrDecode)
	}
}

// MarshalYAML emits the ordered sequence representation.
func (s *Store) MarshalYAML() (any, error) {
	out := s.Pairs()
	if out == nil {
		out = []Pair{}
	}
	return out, nil
}

func nodeToString(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.NullNode:
		return "", nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return strconv.FormatInt(v, 10), nil
		case uint64:
			return strconv.FormatUint(v, 10), nil
		default:
			return "", fmt.Errorf("unexpected integer node value type: %T", n.Value)
		}
	case *ast.FloatNode:
		return strconv.FormatFloat(n.Value, 'f', -1, 64), nil
	case *ast.BoolNode:
		return strconv.FormatBool(n.Value), nil
	default:
		return "", fmt.Errorf("value must be scalar, got %T", node)
	}
}
