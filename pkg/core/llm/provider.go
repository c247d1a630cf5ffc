// Package llm wraps the text-generation providers the narrative
// synthesizer can talk to. Providers are optional collaborators: every
// caller must tolerate their absence or failure.
package llm

import (
	"context"
	"fmt"
)

// Provider is the interface all text-generation backends implement.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats.
	AdaptInstructions(rawInstructions string) string
}

// NewProvider builds a provider by name. Names match the config file's
// activeProvider values.
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "gemini":
		return &GeminiProvider{Model: model}, nil
	case "deepseek":
		return &DeepSeekProvider{Model: model}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", name)
	}
}
