package output

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

// ErrInvalidSelector indicates a JSONPath expression that does not compile.
var ErrInvalidSelector = errors.New("invalid selector")

// Selector picks values out of the JSON view of a document.
type Selector struct {
	expr string
	path *jsonpath.Path
}

// NewSelector compiles a JSONPath expression such as "$.host" or
// "$.query[?@.key=='tag'].value".
func NewSelector(expr string) (*Selector, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidSelector)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSelector, expr, err)
	}

	return &Selector{expr: expr, path: path}, nil
}

// String returns the source expression.
func (s *Selector) String() string {
	return s.expr
}

// Select returns every value matched in doc, in document order.
func (s *Selector) Select(doc Document) ([]any, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	var data any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	results := s.path.Select(data)
	if len(results) == 0 {
		return nil, nil
	}

	return []any(results), nil
}
