package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/uriparse/internal/exit"
	"github.com/jacoelho/uriparse/internal/output"
)

var (
	ErrNoArguments    = errors.New("no arguments provided")
	ErrNoURIs         = errors.New("no uri specified")
	ErrEmptyRedactKey = errors.New("redact key cannot be empty")
)

// Config represents the complete configuration for the uriparse tool.
type Config struct {
	URIs     []string
	File     string
	Format   output.Format
	Selector *output.Selector
	Debug    bool

	// Redaction of userinfo passwords and selected query values
	Redact     bool
	RedactKeys []string
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.URIs) == 0 {
		return ErrNoURIs
	}

	return nil
}

// keysFlag implements flag.Value for parsing multiple -redact-key flags.
type keysFlag []string

// String returns a string representation of the keys flag for flag.Value interface.
func (k *keysFlag) String() string {
	return strings.Join(*k, ",")
}

// Set stores one query key for flag.Value interface.
func (k *keysFlag) Set(value string) error {
	if value == "" {
		return ErrEmptyRedactKey
	}

	*k = append(*k, value)
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s\n", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Usage and errors are reported through exit results.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		debug  = fs.Bool("debug", false, "Log parse steps to stderr")
		file   = fs.String("file", "", "Path to a file with one URI per line")
		format = fs.String("format", string(output.FormatText), "Output format: text, json or yaml")
		sel    = fs.String("select", "", "JSONPath expression applied to each parsed URI")
		redact = fs.Bool("redact", false, "Hide userinfo passwords")
	)

	var keys keysFlag

	fs.Var(&keys, "redact-key", "Query key whose values are hidden (can be used multiple times)")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage() + "\n")
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s\n", err, Usage())
	}

	parsedFormat, err := output.ParseFormat(*format)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s\n", err, Usage())
	}

	var selector *output.Selector
	if *sel != "" {
		selector, err = output.NewSelector(*sel)
		if err != nil {
			return nil, exit.Errorf("Error: %v\n", err)
		}
	}

	// File URIs come first, then positional arguments.
	var uris []string
	if *file != "" {
		fileURIs, err := loadURIFile(*file)
		if err != nil {
			return nil, exit.Errorf("Error: failed to load uri file: %v\n", err)
		}
		uris = append(uris, fileURIs...)
	}
	uris = append(uris, fs.Args()...)

	// A redacted key implies redaction.
	config := &Config{
		URIs:       uris,
		File:       *file,
		Format:     parsedFormat,
		Selector:   selector,
		Debug:      *debug,
		Redact:     *redact || len(keys) > 0,
		RedactKeys: []string(keys),
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s\n", err, Usage())
	}

	return config, nil
}

// loadURIFile reads one URI per line. Empty lines and lines starting
// with '#' are skipped; surrounding whitespace is trimmed.
func loadURIFile(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var uris []string
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		uris = append(uris, line)
	}

	return uris, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `uriparse - split URIs into their generic components

Usage: uriparse [options] <uri> [uri...]

Options:
  --format FORMAT    Output format: text, json or yaml (default: text)
  --select PATH      JSONPath expression applied to each parsed URI
  --file FILE        Path to a file with one URI per line ('#' starts a comment line)
  --redact           Hide userinfo passwords
  --redact-key KEY   Hide values of query key KEY (can be used multiple times, implies --redact)
  --debug            Log parse steps to stderr
  -h, --help         Show this help message

Examples:
  uriparse 'https://john.doe@www.example.com:123/forum/questions/?tag=networking#top'
  uriparse --format json 'ldap://[2001:db8::7]/c=GB?objectClass?one'
  uriparse --select '$.query[*].key' 'http://h/?a=1&b=2'
  uriparse --file uris.txt --format yaml`
}
