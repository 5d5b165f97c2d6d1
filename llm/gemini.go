package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClient answers prompts with a Gemini model through the generative-ai-go SDK.
// The SDK client is created on first use.
type GeminiClient struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

// GeminiOption is a functional option for GeminiClient
type GeminiOption func(*GeminiClient)

// GeminiWithModel overrides the model identifier
func GeminiWithModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

// NewGeminiClient creates a new Gemini completion client
func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		apiKey: apiKey,
		model:  DefaultGeminiModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier used for generation
func (c *GeminiClient) Model() string {
	return c.model
}

// ensureClient builds the SDK client shared by all requests
func (c *GeminiClient) ensureClient() (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, &ConfigurationError{Setting: "GEMINI_API_KEY", Message: fmt.Sprintf("failed to create Gemini client: %v", err)}
	}
	c.client = client
	return client, nil
}

// Complete generates a single response for prompt
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &ConfigurationError{Setting: "GEMINI_API_KEY", Message: "API key not set"}
	}

	client, err := c.ensureClient()
	if err != nil {
		return "", err
	}

	model := client.GenerativeModel(c.model)
	model.SetTemperature(Temperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ServiceError{Provider: "gemini", Message: "generate content failed", Err: err}
	}

	return candidateText(resp)
}

// Close releases the underlying SDK client, if one was created
func (c *GeminiClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// candidateText concatenates the text parts of the first candidate
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		msg := "API returned no candidates"
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			msg = fmt.Sprintf("API blocked prompt: %s", resp.PromptFeedback.BlockReason)
		}
		return "", &ServiceError{Provider: "gemini", Message: msg}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ServiceError{
			Provider: "gemini",
			Message:  fmt.Sprintf("API candidate has no parts (finish reason: %s)", candidate.FinishReason),
		}
	}

	var responseText strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	result := responseText.String()
	if strings.TrimSpace(result) == "" {
		return "", &ServiceError{Provider: "gemini", Message: "API returned empty content", Err: errors.New("no text parts")}
	}

	return result, nil
}
