package scenario

import (
	"fmt"
	"strings"
)

// promptSections lists the section renderers in the order the voice agent
// expects them. Each returns "" when its data is absent; empty sections are
// dropped entirely. The order is a contract: role and caller identity come
// before behavioral and reactive guidance.
var promptSections = []func(*Payload) string{
	renderRole,
	renderCallerDetails,
	renderSummary,
	renderCriticalInfo,
	renderWithheldInformation,
	renderVoice,
	renderDialogueDirections,
	renderResponseBehavior,
	renderOpeningLine,
	renderDoNotSay,
	renderBehaviorNotes,
}

// ComposePrompt renders a payload into the single system-prompt string handed
// to the conversational voice agent. It is pure and deterministic; a payload
// with nothing to render composes to the empty string.
func ComposePrompt(p *Payload) string {
	if p == nil {
		return ""
	}
	var parts []string
	for _, render := range promptSections {
		if section := render(p); section != "" {
			parts = append(parts, section)
		}
	}
	return strings.Join(parts, "\n\n")
}

func renderRole(p *Payload) string {
	if p.RoleInstruction == "" {
		return ""
	}
	return "## Role\n" + p.RoleInstruction
}

func renderCallerDetails(p *Payload) string {
	profile := p.Scenario.CallerProfile
	var lines []string
	if profile.Name != "" {
		lines = append(lines, "- name: "+profile.Name)
	}
	if profile.Age > 0 {
		lines = append(lines, fmt.Sprintf("- age: %d", profile.Age))
	}
	if profile.Emotion != "" {
		lines = append(lines, "- emotion: "+profile.Emotion)
	}
	if profile.Gender != "" {
		lines = append(lines, "- gender: "+profile.Gender)
	}
	if profile.Race != "" {
		lines = append(lines, "- race: "+profile.Race)
	}
	if profile.OtherRelevantDetails != "" {
		lines = append(lines, "- other_relevant_details: "+profile.OtherRelevantDetails)
	}
	if len(lines) == 0 {
		return ""
	}
	return "## Caller personal details\n" + strings.Join(lines, "\n")
}

func renderSummary(p *Payload) string {
	if p.ScenarioSummaryForAgent == "" {
		return ""
	}
	return "## Scenario summary (ground truth)\n" + p.ScenarioSummaryForAgent
}

func renderCriticalInfo(p *Payload) string {
	if len(p.CriticalInfo) == 0 {
		return ""
	}
	return "## Critical information to convey (reveal when the operator asks; do not dump all at once)\n" + bulletList(p.CriticalInfo)
}

func renderWithheldInformation(p *Payload) string {
	if len(p.WithheldInformation) == 0 {
		return ""
	}
	return "## Details that emerge with operator probing\n" + bulletList(p.WithheldInformation) +
		"\nThese are NOT things you are purposely hiding. They are contextual details that help the operator understand the situation better; they simply don't come up until the operator asks the right questions (e.g. suspect description, layout, who else is present). When the operator probes or asks relevant questions, provide these details naturally."
}

func renderVoice(p *Payload) string {
	if p.Persona.VoiceDescription == "" {
		return ""
	}
	return "## Voice / how to speak\nYou sound like: " + p.Persona.VoiceDescription
}

func renderDialogueDirections(p *Payload) string {
	if p.DialogueDirections == "" {
		return ""
	}
	return "## Dialogue / acting directions\n" + p.DialogueDirections
}

func renderResponseBehavior(p *Payload) string {
	if len(p.ResponseBehavior) == 0 {
		return ""
	}
	return "## How to react to the operator\n" + bulletList(p.ResponseBehavior)
}

func renderOpeningLine(p *Payload) string {
	if p.OpeningLine == "" {
		return ""
	}
	return fmt.Sprintf("## Opening line\nWhen the call connects, start with something like: %q", p.OpeningLine)
}

func renderDoNotSay(p *Payload) string {
	if len(p.DoNotSay) == 0 {
		return ""
	}
	return "## Do NOT say (stay in character)\n" + bulletList(p.DoNotSay)
}

func renderBehaviorNotes(p *Payload) string {
	if p.BehaviorNotes == "" {
		return ""
	}
	return "## Behavioral notes\n" + p.BehaviorNotes
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
