package scenario

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize_MalformedText(t *testing.T) {
	raw := "{not json"
	_, err := Normalize(raw)
	if err == nil {
		t.Fatal("expected error for malformed text")
	}

	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %T: %v", err, err)
	}
	if malformed.Raw != raw {
		t.Fatalf("expected original text preserved, got %q", malformed.Raw)
	}
	if !strings.Contains(malformed.Error(), "{not json") {
		t.Fatalf("expected snippet in message, got %q", malformed.Error())
	}
}

func TestNormalize_AssignsMissingID(t *testing.T) {
	payload, err := Normalize(`{"scenario": {"title": "Kitchen fire"}}`)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if payload.Scenario.ID == "" {
		t.Fatal("expected generated scenario id")
	}
	if !strings.HasPrefix(payload.Scenario.ID, "scenario-") {
		t.Fatalf("expected scenario- prefix, got %q", payload.Scenario.ID)
	}

	second, err := Normalize(`{"scenario": {}}`)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if second.Scenario.ID == payload.Scenario.ID {
		t.Fatalf("expected distinct generated ids, both were %q", payload.Scenario.ID)
	}
}

func TestNormalize_KeepsExistingID(t *testing.T) {
	payload, err := Normalize(`{"scenario": {"id": "scenario-abc123"}}`)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if payload.Scenario.ID != "scenario-abc123" {
		t.Fatalf("expected id preserved, got %q", payload.Scenario.ID)
	}
}

func TestNormalize_ForcesEnglish(t *testing.T) {
	for _, raw := range []string{
		`{"scenario": {"id": "s1", "language": "es"}}`,
		`{"scenario": {"id": "s1"}}`,
		`{"scenario": {"id": "s1", "language": ""}}`,
	} {
		payload, err := Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize(%q) returned error: %v", raw, err)
		}
		if payload.Scenario.Language != "en" {
			t.Fatalf("Normalize(%q) language = %q, want en", raw, payload.Scenario.Language)
		}
	}
}

func TestNormalize_MissingScenarioRecord(t *testing.T) {
	payload, err := Normalize(`{"role_instruction": "You are Maria."}`)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if payload.Scenario.ID == "" || payload.Scenario.Language != "en" {
		t.Fatalf("expected identity repair on empty scenario record, got %+v", payload.Scenario)
	}
	if payload.RoleInstruction != "You are Maria." {
		t.Fatalf("expected other fields untouched, got %q", payload.RoleInstruction)
	}
}

func TestNormalize_LeavesOtherFieldsAlone(t *testing.T) {
	raw := `{
		"scenario": {"id": "s1", "language": "fr", "difficulty": "medium",
			"caller_profile": {"name": "Dan", "age": 52}},
		"persona": {"stability": 0.45, "style": 0.3, "speed": 1.1, "voice_description": "worried"},
		"critical_info": ["Address is 12 Oak St"],
		"withheld_information": ["Dog in the house"],
		"opening_line": "Please hurry"
	}`
	payload, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if payload.Persona.Stability != 0.45 || payload.Persona.VoiceDescription != "worried" {
		t.Fatalf("persona modified: %+v", payload.Persona)
	}
	if len(payload.CriticalInfo) != 1 || payload.CriticalInfo[0] != "Address is 12 Oak St" {
		t.Fatalf("critical_info modified: %v", payload.CriticalInfo)
	}
	if payload.Scenario.Difficulty != DifficultyMedium {
		t.Fatalf("difficulty modified: %q", payload.Scenario.Difficulty)
	}
	if payload.Scenario.CallerProfile.Age != 52 {
		t.Fatalf("caller profile modified: %+v", payload.Scenario.CallerProfile)
	}
	if payload.OpeningLine != "Please hurry" {
		t.Fatalf("opening line modified: %q", payload.OpeningLine)
	}
}

func TestNewScenarioIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := newScenarioID()
		if len(id) != len("scenario-")+8 {
			t.Fatalf("unexpected id length: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
