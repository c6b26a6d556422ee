package contracts

import "context"

// GenAIClient abstracts the text-generation provider behind a single call.
type GenAIClient interface {
	GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	ModelName() string
}
