package scenario

// Difficulty selects how demanding the generated caller is on the trainee.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// CallerProfile describes the person on the line so the voice agent can stay
// grounded in a consistent identity.
type CallerProfile struct {
	Name                 string `json:"name,omitempty"`
	Age                  int    `json:"age,omitempty"`
	Emotion              string `json:"emotion,omitempty"`
	Gender               string `json:"gender,omitempty"`
	Race                 string `json:"race,omitempty"`
	OtherRelevantDetails string `json:"other_relevant_details,omitempty"`
}

// Scenario is the trainee-facing ground-truth record nested inside a payload.
type Scenario struct {
	ID                    string        `json:"id"`
	ScenarioType          string        `json:"scenario_type,omitempty"`
	Title                 string        `json:"title,omitempty"`
	Description           string        `json:"description,omitempty"`
	CallerProfile         CallerProfile `json:"caller_profile"`
	CriticalInfo          []string      `json:"critical_info,omitempty"`
	ExpectedActions       []string      `json:"expected_actions,omitempty"`
	OptionalComplications []string      `json:"optional_complications,omitempty"`
	Difficulty            Difficulty    `json:"difficulty,omitempty"`
	Language              string        `json:"language"`
}

// Persona carries the voice parameters handed to the text-to-speech layer.
// Stability and style are 0-1 floats; speed is a positive multiplier.
type Persona struct {
	Stability        float64 `json:"stability"`
	Style            float64 `json:"style"`
	Speed            float64 `json:"speed"`
	VoiceDescription string  `json:"voice_description,omitempty"`
}

// Payload is the full structured record produced by one generation call. It
// covers both the trainee-facing scenario metadata and the voice-agent
// instructions, and is discarded once returned to the caller or rendered into
// a prompt. The top-level critical_info (facts the caller reveals on request)
// is distinct from scenario.critical_info (facts the trainee is graded on).
type Payload struct {
	Scenario                Scenario `json:"scenario"`
	Persona                 Persona  `json:"persona"`
	CallerScript            []string `json:"caller_script,omitempty"`
	RoleInstruction         string   `json:"role_instruction,omitempty"`
	ScenarioSummaryForAgent string   `json:"scenario_summary_for_agent,omitempty"`
	CriticalInfo            []string `json:"critical_info,omitempty"`
	WithheldInformation     []string `json:"withheld_information,omitempty"`
	BehaviorNotes           string   `json:"behavior_notes,omitempty"`
	DialogueDirections      string   `json:"dialogue_directions,omitempty"`
	ResponseBehavior        []string `json:"response_behavior,omitempty"`
	OpeningLine             string   `json:"opening_line,omitempty"`
	DoNotSay                []string `json:"do_not_say,omitempty"`
}
