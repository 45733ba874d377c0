package llm

import (
	"context"
	"errors"
	"fmt"
)

// Generator sends a single prompt to a generative-language model and returns
// the text it produced. Implementations request JSON output when the provider
// supports it but do not validate the text.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrTransport reports that the provider could not be reached.
	ErrTransport = errors.New("llm transport failure")
	// ErrTimeout reports that the call exceeded its deadline or was cancelled.
	ErrTimeout = errors.New("llm request timeout")
	// ErrEmptyResponse reports a response without the expected text field.
	ErrEmptyResponse = errors.New("llm empty or invalid response")
)

// StatusError is returned when the provider answers with a non-success status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}
