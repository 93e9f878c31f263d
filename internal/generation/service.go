package generation

import (
	"context"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// GenerationManager defines the interface for generation operations
type GenerationManager interface {
	GenerateQuestions(ctx context.Context, spec GenerationSpec) ([]GeneratedQuestion, error)
	ExplainConcept(ctx context.Context, question string) (*ConceptExplanation, error)
}

// Service implements GenerationManager by validating requests and delegating
// to the injected provider. Each call is stateless: no retries, no caching.
type Service struct {
	provider Provider
}

// NewService creates a new generation service
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
	}
}

// GenerateQuestions validates the spec, delegates to the provider, and
// assigns IDs 1..N in result order. A provider or parse failure fails the
// whole request; no partial list is returned.
func (s *Service) GenerateQuestions(ctx context.Context, spec GenerationSpec) ([]GeneratedQuestion, error) {
	if spec.Role == "" {
		return nil, interview.NewValidationError("role", "role is required")
	}

	if spec.Experience == "" {
		return nil, interview.NewValidationError("experience", "experience is required")
	}

	if len(SplitTopics(spec.TopicsToFocus)) == 0 {
		return nil, interview.NewValidationError("topicsToFocus", "at least one topic is required")
	}

	if spec.NumberOfQuestions <= 0 {
		return nil, interview.NewValidationError("numberOfQuestions", "numberOfQuestions must be a positive integer")
	}

	result, err := s.provider.GenerateQuestions(ctx, spec)
	if err != nil {
		return nil, err
	}

	for i := range result {
		result[i].ID = i + 1
	}

	return result, nil
}

// ExplainConcept validates the question and delegates to the provider
func (s *Service) ExplainConcept(ctx context.Context, question string) (*ConceptExplanation, error) {
	if question == "" {
		return nil, interview.NewValidationError("question", "question is required")
	}

	return s.provider.ExplainConcept(ctx, question)
}
