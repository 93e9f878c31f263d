package generation

import (
	"encoding/json"
	"strings"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// SanitizeResponse strips a leading code fence or "json" language marker and
// surrounding whitespace from a raw provider response. Stage one of the
// response pipeline; stage two is a strict JSON decode.
func SanitizeResponse(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(strings.TrimSpace(text), "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// decodeQuestions parses a sanitized provider response into question triples.
// Accepts either the documented {"questions": [...]} object or a bare array.
func decodeQuestions(raw string) ([]GeneratedQuestion, error) {
	candidate := SanitizeResponse(raw)

	var wrapped struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(candidate), &wrapped); err == nil && len(wrapped.Questions) > 0 {
		return wrapped.Questions, nil
	}

	var list []GeneratedQuestion
	if err := json.Unmarshal([]byte(candidate), &list); err != nil {
		return nil, interview.NewGenerationParseError("invalid JSON in provider response", err)
	}
	if len(list) == 0 {
		return nil, interview.NewGenerationParseError("provider response contained no questions", nil)
	}

	return list, nil
}

// decodeExplanation parses a sanitized provider response into a concept
// explanation
func decodeExplanation(raw string) (*ConceptExplanation, error) {
	candidate := SanitizeResponse(raw)

	var explanation ConceptExplanation
	if err := json.Unmarshal([]byte(candidate), &explanation); err != nil {
		return nil, interview.NewGenerationParseError("invalid JSON in provider response", err)
	}

	if explanation.Explanation == "" {
		return nil, interview.NewGenerationParseError("provider response missing explanation", nil)
	}

	return &explanation, nil
}
