// Package llm holds the chat-completion clients that answer legal queries.
package llm

import (
	"context"
	"fmt"

	"legal-advisor-backend/config"
)

const (
	// Temperature is kept low to favour factual, citation-heavy answers
	Temperature = 0.3

	// SystemInstruction is sent as the system-role message on every completion
	SystemInstruction = "You are an Australian legal expert assistant. Provide detailed, well-structured legal analysis with proper citations."
)

// Completer sends a rendered prompt to a remote model and returns the first completion's text.
// Implementations make exactly one outbound request per call and never retry.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewFromConfig creates the completer selected by cfg.LLMProvider.
// Missing API keys are not reported here; they surface as a ConfigurationError on first use.
func NewFromConfig(cfg *config.Config) (Completer, error) {
	switch cfg.LLMProvider {
	case config.ProviderGroq:
		return NewGroqClient(cfg.GroqAPIKey,
			GroqWithBaseURL(cfg.GroqBaseURL),
			GroqWithModel(cfg.GroqModel),
		), nil
	case config.ProviderGemini:
		return NewGeminiClient(cfg.GeminiAPIKey,
			GeminiWithModel(cfg.GeminiModel),
		), nil
	default:
		return nil, &ConfigurationError{
			Setting: "LLM_PROVIDER",
			Message: fmt.Sprintf("unknown provider %q", cfg.LLMProvider),
		}
	}
}
