package generation

import (
	"context"
	"fmt"
)

var difficulties = []string{"Easy", "Medium", "Hard"}

// TemplateProvider implements Provider with deterministic templated output
// and no network calls. Question i uses topics[i mod T] and the difficulty
// 3-cycle at position i mod 3. It backs local runs without an API key and the
// service tests.
type TemplateProvider struct{}

// NewTemplateProvider creates a new template provider
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

// GenerateQuestions produces one templated triple per requested index
func (p *TemplateProvider) GenerateQuestions(ctx context.Context, spec GenerationSpec) ([]GeneratedQuestion, error) {
	topics := SplitTopics(spec.TopicsToFocus)

	result := make([]GeneratedQuestion, 0, spec.NumberOfQuestions)
	for i := 0; i < spec.NumberOfQuestions; i++ {
		topic := topics[i%len(topics)]
		result = append(result, GeneratedQuestion{
			Question: fmt.Sprintf("What is your experience with %s in %s development?", topic, spec.Role),
			Answer: fmt.Sprintf("%s is a key technology for %s developers. It involves understanding core concepts, "+
				"best practices, and practical implementation.", topic, spec.Role),
			Difficulty: difficulties[i%len(difficulties)],
		})
	}

	return result, nil
}

// ExplainConcept produces a templated explanation
func (p *TemplateProvider) ExplainConcept(ctx context.Context, question string) (*ConceptExplanation, error) {
	return &ConceptExplanation{
		Explanation: fmt.Sprintf("%q covers a fundamental concept that involves understanding key principles and "+
			"best practices. It requires knowledge of core technologies, implementation patterns, and real-world "+
			"applications, and is commonly asked in technical interviews.", question),
		KeyPoints: []string{
			"Understanding the fundamental principles",
			"Practical implementation techniques",
			"Common use cases and applications",
			"Best practices and optimization strategies",
		},
		Examples: []string{
			"Real-world implementation example",
			"Code snippet demonstration",
			"Industry use case scenario",
		},
	}, nil
}
