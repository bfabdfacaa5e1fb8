package scenario

import (
	"fmt"
	"strings"
)

// ParseDifficulty validates a caller-supplied difficulty string. It is the
// only place difficulty input is checked; everything downstream assumes a
// valid level.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrInvalidDifficulty, s)
	}
}

const easyGuidance = `**Easy:** The caller gives information relatively calmly and accurately. They answer questions in order, speak clearly, and stay coherent. Persona: higher stability (e.g. 0.6-0.8), normal speed (e.g. 1.0), voice_description like "calm, clear, cooperative" or "composed, speaks in full sentences". behavior_notes: "Caller remains cooperative and follows operator guidance; may need minimal reassurance." Keep complications minimal (0-1) and withheld_information at 0-1 items.`

const mediumGuidance = `**Medium:** The caller is stressed or worried but can still answer when prompted. Some hesitation or repeated details; may need brief reassurance to stay on track. Persona: moderate stability (e.g. 0.4-0.6), slightly faster speed (e.g. 1.0-1.1), voice_description like "anxious but coherent" or "worried, occasional hesitation". behavior_notes: "Caller may repeat themselves or need one or two prompts to give location; remains responsive to direct questions." Include 1-2 complications and 1-4 withheld_information items.`

const hardGuidance = `**Hard:** The caller is panicked, emotional, or overwhelmed and often must be calmed before useful information can be given. May cry, speak in fragments, give information out of order, or fixate on one detail. Persona: lower stability (e.g. 0.2-0.45), faster or uneven speed (e.g. 1.1-1.3), voice_description like "panicked, breathless, needs calming" or "distraught, crying, speaks in bursts". behavior_notes: "Caller is highly emotional; operator may need to calmly repeat questions and reassure before getting location or key facts; may misstate details once or become tearful mid-call." Include 2-3 complications and 1-4 withheld_information items.`

// difficultyGuidance returns the behavioral-guidance fragment injected into
// the generation instructions for a level: target persona ranges, disfluency
// and volatility intensity, and complication density.
func difficultyGuidance(d Difficulty) (string, error) {
	switch d {
	case DifficultyEasy:
		return easyGuidance, nil
	case DifficultyMedium:
		return mediumGuidance, nil
	case DifficultyHard:
		return hardGuidance, nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrInvalidDifficulty, string(d))
	}
}
