package generation

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/SaiPrasanth27/interview-prep/internal/interview"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = openai.ChatModelGPT4oMini

// OpenAIProvider implements Provider against the OpenAI chat completions API.
// Each request is a single prompt-in / text-out call; the response text goes
// through the sanitize/decode pipeline in parse.go.
type OpenAIProvider struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAIProvider creates a provider backed by the OpenAI API
func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	chatModel := openai.ChatModel(model)
	if model == "" {
		chatModel = DefaultOpenAIModel
	}

	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  chatModel,
	}
}

// GenerateQuestions submits one generation prompt and parses the response
// into question triples
func (p *OpenAIProvider) GenerateQuestions(ctx context.Context, spec GenerationSpec) ([]GeneratedQuestion, error) {
	raw, err := p.complete(ctx, QuestionAnswerPrompt(spec))
	if err != nil {
		return nil, err
	}

	return decodeQuestions(raw)
}

// ExplainConcept submits one explanation prompt and parses the response
func (p *OpenAIProvider) ExplainConcept(ctx context.Context, question string) (*ConceptExplanation, error) {
	raw, err := p.complete(ctx, ConceptExplainPrompt(question))
	if err != nil {
		return nil, err
	}

	return decodeExplanation(raw)
}

func (p *OpenAIProvider) complete(ctx context.Context, prompt string) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: p.model,
	})
	if err != nil {
		return "", interview.NewGenerationRequestError("provider call failed", err)
	}

	if len(completion.Choices) == 0 {
		return "", interview.NewGenerationRequestError("provider returned no choices", nil)
	}

	return completion.Choices[0].Message.Content, nil
}
