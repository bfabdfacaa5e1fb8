package scenario

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrInvalidDifficulty means the caller asked for a difficulty outside
	// the three supported levels. Safe to surface verbatim.
	ErrInvalidDifficulty = errors.New("difficulty must be one of: easy, medium, hard")

	// ErrMissingCredentials means the generation collaborator cannot be
	// reached because the OpenAI key is absent or rejected.
	ErrMissingCredentials = errors.New("scenario: openai credentials are not configured")

	// ErrScenarioNotFound means no stored payload exists for the given id.
	ErrScenarioNotFound = errors.New("scenario: not found")
)

// MalformedPayloadError reports model output that did not parse as a single
// JSON object. Raw preserves the full offending text for diagnostics.
type MalformedPayloadError struct {
	Raw   string
	cause error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("scenario: model returned malformed payload: %v (text: %s)", e.cause, snippet(e.Raw))
}

func (e *MalformedPayloadError) Unwrap() error { return e.cause }

// GenerationError wraps any collaborator failure that is not a credential or
// parse problem (network, rate limit, server error).
type GenerationError struct {
	cause error
}

func (e *GenerationError) Error() string {
	return "scenario: generation failed: " + e.cause.Error()
}

func (e *GenerationError) Unwrap() error { return e.cause }

// classifyProviderError maps an OpenAI client error into the scenario error
// taxonomy. Auth rejections are a configuration fault, not a transient one.
func classifyProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrMissingCredentials, err)
		}
	}
	return &GenerationError{cause: err}
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 140 {
		return s[:140] + "..."
	}
	return s
}
