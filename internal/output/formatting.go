package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format determines how documents are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrInvalidFormat is returned for an unknown format name.
var ErrInvalidFormat = errors.New("format must be one of: text, json, yaml")

// ParseFormat accepts a case-insensitive format name; empty means text.
func ParseFormat(input string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(input))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidFormat, input)
	}
}

// Printer writes documents to w. When a selector is set only the selected
// values are written.
type Printer struct {
	w        io.Writer
	format   Format
	selector *Selector
	count    int
}

// NewPrinter creates a printer; selector may be nil.
func NewPrinter(w io.Writer, format Format, selector *Selector) *Printer {
	return &Printer{
		w:        w,
		format:   format,
		selector: selector,
	}
}

// Print writes one document. Text and YAML documents after the first are
// preceded by a separator; JSON is written one value per line.
func (p *Printer) Print(doc Document) error {
	defer func() { p.count++ }()

	if p.selector != nil {
		values, err := p.selector.Select(doc)
		if err != nil {
			return err
		}
		return p.printValues(values)
	}

	switch p.format {
	case FormatJSON:
		return json.NewEncoder(p.w).Encode(doc)
	case FormatYAML:
		return p.printYAML(doc)
	case FormatText:
		fallthrough
	default:
		if p.count > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		return formatText(p.w, doc)
	}
}

func (p *Printer) printYAML(v any) error {
	payload, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	if p.count > 0 {
		if _, err := io.WriteString(p.w, "---\n"); err != nil {
			return err
		}
	}

	_, err = p.w.Write(payload)
	return err
}

func (p *Printer) printValues(values []any) error {
	switch p.format {
	case FormatJSON:
		if values == nil {
			values = []any{}
		}
		return json.NewEncoder(p.w).Encode(values)
	case FormatYAML:
		if values == nil {
			values = []any{}
		}
		return p.printYAML(values)
	case FormatText:
		fallthrough
	default:
		for _, value := range values {
			if _, err := fmt.Fprintln(p.w, textValue(value)); err != nil {
				return err
			}
		}
		return nil
	}
}

// formatText uses one "name: value" line per present component.
func formatText(w io.Writer, doc Document) error {
	if _, err := fmt.Fprintf(w, "scheme: %s\n", doc.Scheme); err != nil {
		return err
	}

	if doc.UserInfo != nil {
		if _, err := fmt.Fprintf(w, "userinfo: %s\n", *doc.UserInfo); err != nil {
			return err
		}
	}
	if doc.Host != nil {
		if _, err := fmt.Fprintf(w, "host: %s\n", *doc.Host); err != nil {
			return err
		}
	}
	if doc.Port != 0 {
		if _, err := fmt.Fprintf(w, "port: %d\n", doc.Port); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "path: %s\n", doc.Path); err != nil {
		return err
	}

	if doc.Query != nil {
		if _, err := fmt.Fprintln(w, "query:"); err != nil {
			return err
		}
		for key, value := range doc.Query.All() {
			if _, err := fmt.Fprintf(w, " key: %s\n value: %s\n", key, value); err != nil {
				return err
			}
		}
	}

	if doc.Fragment != nil {
		if _, err := fmt.Fprintf(w, "fragment: %s\n", *doc.Fragment); err != nil {
			return err
		}
	}

	return nil
}

func textValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
