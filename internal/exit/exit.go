package exit

import (
	"fmt"
	"io"
)

// Result holds the message and exit code for program termination.
type Result struct {
	ExitCode int
	Message  string
}

// PrintTo writes the message to stdout for a zero exit code and to stderr otherwise.
func (r *Result) PrintTo(stdout, stderr io.Writer) {
	if r.ExitCode == 0 {
		fmt.Fprint(stdout, r.Message)
		return
	}
	fmt.Fprint(stderr, r.Message)
}

// Success creates a successful exit result with exit code 0.
func Success(message string) *Result {
	return &Result{
		ExitCode: 0,
		Message:  message,
	}
}

// Error creates an error exit result with exit code 1.
func Error(message string) *Result {
	return &Result{
		ExitCode: 1,
		Message:  message,
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// ParseFailure reports a URI that could not be parsed as a one-line diagnostic.
func ParseFailure(err error) *Result {
	return Errorf("uriparse: failed to parse uri: %v\n", err)
}
