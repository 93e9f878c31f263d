package generation

import "context"

// Provider produces question sets and concept explanations. The service takes
// a Provider explicitly so tests can substitute a fake and so the template
// backend and the OpenAI backend are interchangeable.
type Provider interface {
	GenerateQuestions(ctx context.Context, spec GenerationSpec) ([]GeneratedQuestion, error)
	ExplainConcept(ctx context.Context, question string) (*ConceptExplanation, error)
}
