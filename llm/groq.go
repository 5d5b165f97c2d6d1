package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "mixtral-8x7b-32768"
)

// GroqClient calls an OpenAI-compatible chat-completion endpoint (Groq by default)
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
}

// GroqOption is a functional option for GroqClient
type GroqOption func(*GroqClient)

// GroqWithBaseURL overrides the API base URL
func GroqWithBaseURL(baseURL string) GroqOption {
	return func(c *GroqClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// GroqWithModel overrides the model identifier
func GroqWithModel(model string) GroqOption {
	return func(c *GroqClient) {
		if model != "" {
			c.model = model
		}
	}
}

// GroqWithHTTPClient sets the HTTP client used for requests
func GroqWithHTTPClient(httpc *http.Client) GroqOption {
	return func(c *GroqClient) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// NewGroqClient creates a new Groq chat-completion client
func NewGroqClient(apiKey string, opts ...GroqOption) *GroqClient {
	c := &GroqClient{
		apiKey:  apiKey,
		baseURL: DefaultGroqBaseURL,
		model:   DefaultGroqModel,
		httpc:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier sent with each request
func (c *GroqClient) Model() string {
	return c.model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason,omitempty"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type,omitempty"`
	} `json:"error,omitempty"`
}

// Complete sends prompt as the user message and returns the first choice's content
func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &ConfigurationError{Setting: "GROQ_API_KEY", Message: "API key not set"}
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: Temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ServiceError{Provider: "groq", Message: "failed to marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", &ServiceError{Provider: "groq", Message: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", &ServiceError{Provider: "groq", Message: "failed to send request", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ServiceError{Provider: "groq", StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	var apiResp chatResponse
	decodeErr := json.Unmarshal(bodyBytes, &apiResp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(bodyBytes))
		if decodeErr == nil && apiResp.Error != nil && apiResp.Error.Message != "" {
			msg = apiResp.Error.Message
		}
		return "", &ServiceError{Provider: "groq", StatusCode: resp.StatusCode, Message: fmt.Sprintf("API error: %s", msg)}
	}

	if decodeErr != nil {
		return "", &ServiceError{Provider: "groq", StatusCode: resp.StatusCode, Message: "failed to decode response", Err: decodeErr}
	}

	if len(apiResp.Choices) == 0 {
		return "", &ServiceError{Provider: "groq", StatusCode: resp.StatusCode, Message: "API returned no choices"}
	}

	content := apiResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &ServiceError{
			Provider:   "groq",
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API returned empty content (finish reason: %s)", apiResp.Choices[0].FinishReason),
		}
	}

	return content, nil
}
