package generation

import (
	"fmt"
	"strings"
)

// QuestionAnswerPrompt builds the single generation prompt submitted to the
// text provider for a question-set request
func QuestionAnswerPrompt(spec GenerationSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an AI trained to generate technical interview questions and answers.\n\n")
	fmt.Fprintf(&b, "Task:\n")
	fmt.Fprintf(&b, "- Role: %s\n", spec.Role)
	fmt.Fprintf(&b, "- Candidate experience: %s years\n", spec.Experience)
	fmt.Fprintf(&b, "- Focus topics: %s\n", spec.TopicsToFocus)
	fmt.Fprintf(&b, "- Write %d interview questions.\n", spec.NumberOfQuestions)
	fmt.Fprintf(&b, "- For each question, write a detailed but beginner-friendly answer.\n")
	fmt.Fprintf(&b, "- Label each question with a difficulty of Easy, Medium or Hard.\n\n")
	fmt.Fprintf(&b, "Return a pure JSON object in this exact format:\n")
	fmt.Fprintf(&b, `{"questions": [{"question": "...", "answer": "...", "difficulty": "Easy"}]}`)
	fmt.Fprintf(&b, "\n\nImportant: do not add any extra text outside the JSON.")

	return b.String()
}

// ConceptExplainPrompt builds the prompt for an explain-concept request
func ConceptExplainPrompt(question string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an AI trained to explain technical interview concepts.\n\n")
	fmt.Fprintf(&b, "Explain the following interview question in depth, as if teaching a developer:\n\n")
	fmt.Fprintf(&b, "Question: %q\n\n", question)
	fmt.Fprintf(&b, "Return a pure JSON object in this exact format:\n")
	fmt.Fprintf(&b, `{"explanation": "...", "keyPoints": ["..."], "examples": ["..."]}`)
	fmt.Fprintf(&b, "\n\nImportant: do not add any extra text outside the JSON.")

	return b.String()
}
