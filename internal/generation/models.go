package generation

import "strings"

// GenerationSpec describes one question-generation request. It is not
// persisted; it only travels from the API layer into the provider.
type GenerationSpec struct {
	Role              string `json:"role"`
	Experience        string `json:"experience"`
	TopicsToFocus     string `json:"topicsToFocus"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

// GeneratedQuestion is one question/answer/difficulty triple produced by a
// provider. IDs are assigned by the service, 1..N in result order.
type GeneratedQuestion struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

// ConceptExplanation is the structured result of an explain-concept request
type ConceptExplanation struct {
	Explanation string   `json:"explanation"`
	KeyPoints   []string `json:"keyPoints"`
	Examples    []string `json:"examples"`
}

// SplitTopics splits a comma-separated topics string into trimmed topic names,
// dropping empty entries
func SplitTopics(topicsToFocus string) []string {
	parts := strings.Split(topicsToFocus, ",")
	topics := make([]string, 0, len(parts))
	for _, part := range parts {
		topic := strings.TrimSpace(part)
		if topic == "" {
			continue
		}
		topics = append(topics, topic)
	}
	return topics
}
