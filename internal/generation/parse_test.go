package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

func TestSanitizeResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading json marker", "json {\"a\":1}", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeResponse(tt.raw))
		})
	}
}

func TestDecodeQuestionsWrappedObject(t *testing.T) {
	raw := "```json\n" +
		`{"questions": [` +
		`{"question": "What is a goroutine?", "answer": "A lightweight thread.", "difficulty": "Easy"},` +
		`{"question": "Explain channels.", "answer": "Typed conduits.", "difficulty": "Medium"}` +
		`]}` + "\n```"

	result, err := decodeQuestions(raw)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "What is a goroutine?", result[0].Question)
	assert.Equal(t, "Medium", result[1].Difficulty)
}

func TestDecodeQuestionsBareArray(t *testing.T) {
	raw := `[{"question": "Q", "answer": "A", "difficulty": "Hard"}]`

	result, err := decodeQuestions(raw)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Hard", result[0].Difficulty)
}

func TestDecodeQuestionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "Sorry, I cannot help with that."},
		{"empty list", `{"questions": []}`},
		{"truncated", `{"questions": [{"question": "Q"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := decodeQuestions(tt.raw)
			assert.Nil(t, result)
			assert.True(t, interview.IsGeneration(err), "expected generation error, got: %v", err)
		})
	}
}

func TestDecodeExplanation(t *testing.T) {
	raw := "```json\n" +
		`{"explanation": "A hash map stores key/value pairs.", "keyPoints": ["O(1) lookup"], "examples": ["map[string]int"]}` +
		"\n```"

	explanation, err := decodeExplanation(raw)
	require.NoError(t, err)

	assert.Equal(t, "A hash map stores key/value pairs.", explanation.Explanation)
	assert.Equal(t, []string{"O(1) lookup"}, explanation.KeyPoints)
	assert.Equal(t, []string{"map[string]int"}, explanation.Examples)
}

func TestDecodeExplanationInvalid(t *testing.T) {
	explanation, err := decodeExplanation("no structured payload here")
	assert.Nil(t, explanation)
	assert.True(t, interview.IsGeneration(err))

	explanation, err = decodeExplanation(`{"keyPoints": ["missing explanation"]}`)
	assert.Nil(t, explanation)
	assert.True(t, interview.IsGeneration(err))
}
