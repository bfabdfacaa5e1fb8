package scenario

import "fmt"

// The generation instructions are assembled from three independently
// versionable pieces: a fixed preamble, the difficulty-specific guidance
// fragment, and a fixed output-shape block the model must follow.

const systemPreamble = `You are an AI 911 training assistant. Generate exactly ONE realistic emergency scenario for a trainee 911 operator. Your response must be valid JSON only, no markdown or extra text.

Requirements:
- Scenario must be realistic and grounded: plausible emergencies, correct protocols, no fantasy or inappropriate content.
- Emphasize edge/rare scenarios that 911 operators must be trained on but are less common: e.g. domestic violence, suicidal caller, child calling for parent, intoxicated or confused caller, hearing-impaired caller, barricaded subject, hoax, medical with language barrier. Scale detail and complications by difficulty (easy: fewer; hard: more stress, misreporting, or emotional volatility).
- Keep scenarios not overly complex: 4-7 critical_info items, 4-7 expected_actions, 1-3 optional_complications. Short descriptions and caller_script lines.
- Language is always English ("en").
- Caller profile must include personal details: name, age, emotion, gender, race, and optionally other_relevant_details (e.g. accent, first language, occupation if relevant to the scenario, physical description). Use these so the persona and voice agent can generate realistic, grounded dialogue.
- Caller persona must be aligned to the voice-agent settings: provide stability (0-1 float, lower = more emotional range), style (0-1 float), speed (float e.g. 0.9-1.2), and voice_description (short text: accent, age, gender, emotional tone). These will be used for the voice agent system prompt and the text-to-speech API.
- Voice-agent fields: role_instruction (one short line, e.g. "You are [name], [age], calling 911 as..."), scenario_summary_for_agent (2-4 sentences ground truth the agent must know), critical_info (facts the caller should reveal when asked), withheld_information (details that require more probing and questioning from the operator to surface - NOT information the persona is purposely hiding from 911. These are contextual details that help the operator understand the situation better but only come out when the operator asks the right questions. Examples: after a crime, perpetrator height/race/clothing; layout of the room; whether anyone else is in the building.), behavior_notes (how caller may react, e.g. may become tearful, may misstate address once), dialogue_directions (explicit acting directions for how to speak: disfluencies like ums/uhs/pauses, false starts, volatility of language, sentence length; scale by difficulty), response_behavior (array of short instructions for how to react to the operator, e.g. "Give address only after being asked" or "Reveal suspect description when operator asks what they looked like"), opening_line (the first thing the caller says when the call connects; one short line), do_not_say (array of phrases or topics the caller would never say - stay in character; e.g. "I'm an AI", "What's the script?", breaking the fourth wall).`

const outputShape = `Output JSON with this exact structure (use these keys):
{
  "scenario": {
    "id": "<unique short id>",
    "scenario_type": "<e.g. domestic-violence, suicidal-caller, cardiac-arrest, fire, traffic-accident>",
    "title": "<short title>",
    "description": "<2-4 sentences>",
    "caller_profile": { "name": "<string>", "age": <number>, "emotion": "<string>", "gender": "<string>", "race": "<string>", "other_relevant_details": "<optional: accent, first language, occupation, etc.>" },
    "critical_info": ["<item>", ...],
    "expected_actions": ["<item>", ...],
    "optional_complications": ["<item>", ...],
    "difficulty": "easy" | "medium" | "hard",
    "language": "en"
  },
  "persona": {
    "stability": <0-1 float>,
    "style": <0-1 float>,
    "speed": <float>,
    "voice_description": "<short: accent, age, gender, emotional tone>"
  },
  "caller_script": ["<suggested caller line>", ...],
  "role_instruction": "<one short line for voice agent>",
  "scenario_summary_for_agent": "<2-4 sentences ground truth>",
  "critical_info": ["<fact to reveal when asked>", ...],
  "withheld_information": ["<detail that needs operator probing to surface>", ...],
  "behavior_notes": "<optional complications / how caller may react>",
  "dialogue_directions": "<how to speak: disfluencies, pauses, volatility; match difficulty>",
  "response_behavior": ["<how to react to operator>", ...],
  "opening_line": "<first thing caller says when call connects>",
  "do_not_say": ["<phrase/topic caller would never say>", ...]
}`

// buildSystemInstructions assembles the full system instruction for one
// generation request at the given difficulty.
func buildSystemInstructions(d Difficulty) (string, error) {
	guidance, err := difficultyGuidance(d)
	if err != nil {
		return "", err
	}
	return systemPreamble +
		"\n\nDifficulty drives how the caller persona behaves (tone, coherence, need for calming). Match persona and behavior_notes to this pattern:\n\n- " + guidance +
		"\n\n" + outputShape, nil
}

// userInstructions names the requested difficulty for one generation call.
func userInstructions(d Difficulty) string {
	return fmt.Sprintf("Generate one 911 training scenario for difficulty: %s. Return only the JSON object, no other text. Ensure the scenario is realistic, grounded, and appropriate for 911 operator training. Use edge or rare scenario types where appropriate for this difficulty level.", d)
}
