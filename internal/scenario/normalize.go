package scenario

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Normalize parses raw model output into a Payload and repairs the identity
// fields: a missing scenario id gets a fresh short unique one, and the
// language is forced to "en" no matter what came back. Every other field is
// passed through untouched; this is deliberately not a full-schema validator.
func Normalize(raw string) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &MalformedPayloadError{Raw: raw, cause: err}
	}

	if strings.TrimSpace(payload.Scenario.ID) == "" {
		payload.Scenario.ID = newScenarioID()
	}
	payload.Scenario.Language = "en"

	return &payload, nil
}

// newScenarioID produces a short identifier with negligible collision odds at
// training-session volumes.
func newScenarioID() string {
	id := uuid.New()
	return fmt.Sprintf("scenario-%x", id[:4])
}
