package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/jacoelho/uriparse/internal/config"
	"github.com/jacoelho/uriparse/internal/exit"
	"github.com/jacoelho/uriparse/internal/logging"
	"github.com/jacoelho/uriparse/internal/output"
	"github.com/jacoelho/uriparse/internal/sanitizer"
	"github.com/jacoelho/uriparse/internal/uri"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, exitResult := config.Parse(args)
	if exitResult != nil {
		exitResult.PrintTo(stdout, stderr)
		return exitResult.ExitCode
	}

	logger := logging.New(stderr, cfg.Debug)
	printer := output.NewPrinter(stdout, cfg.Format, cfg.Selector)

	var redactor *sanitizer.Redactor
	if cfg.Redact {
		redactor = sanitizer.New(cfg.RedactKeys, uuid.NewString())
	}

	logger.Debug().
		Str("File", cfg.File).
		Int("URIs", len(cfg.URIs)).
		Str("Format", string(cfg.Format)).
		Bool("Redact", cfg.Redact).
		Msg("config loaded")

	exitCode := 0
	for _, raw := range cfg.URIs {
		u, err := uri.Parse(raw)
		if err != nil {
			logger.Debug().
				Str("Method", "Parse").
				Str("URI", redactor.Mask(raw)).
				Str("Scheme", u.Scheme).
				Bool("Authority", u.Authority != nil).
				Err(err).
				Msg("parse failed")

			exit.ParseFailure(err).PrintTo(stdout, stderr)
			u.Release()
			exitCode = 1
			continue
		}

		logger.Debug().
			Str("Method", "Parse").
			Str("URI", redactor.Mask(raw)).
			Str("Scheme", u.Scheme).
			Bool("Authority", u.Authority != nil).
			Int("QueryPairs", u.Query.Len()).
			Bool("Fragment", u.HasFragment()).
			Msg("parsed")

		err = printer.Print(redactor.Redact(output.NewDocument(u)))
		u.Release()
		if err != nil {
			fmt.Fprintf(stderr, "uriparse: failed to write output: %v\n", err)
			return 1
		}
	}

	return exitCode
}
