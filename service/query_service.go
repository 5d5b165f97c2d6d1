package service

import (
	"context"
	"time"

	"legal-advisor-backend/llm"
	"legal-advisor-backend/models"

	"go.uber.org/zap"
)

// QueryService turns a legal question into an analysed answer
type QueryService struct {
	completer llm.Completer
	logger    *zap.Logger
}

// QueryServiceOption is a functional option for QueryService
type QueryServiceOption func(*QueryService)

// WithCompleter sets the completion client
func WithCompleter(completer llm.Completer) QueryServiceOption {
	return func(s *QueryService) {
		s.completer = completer
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) QueryServiceOption {
	return func(s *QueryService) {
		s.logger = logger
	}
}

// NewQueryService creates a new query service
func NewQueryService(opts ...QueryServiceOption) *QueryService {
	s := &QueryService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessQueryRequest represents a request to answer a legal question.
// Inputs are not validated here; see ValidateQuery.
type ProcessQueryRequest struct {
	Query        string
	Category     models.Category
	Jurisdiction models.Jurisdiction
}

// ProcessQueryResult represents the analysed answer
type ProcessQueryResult struct {
	models.AnalysisResponse
}

// ProcessQuery builds the prompt, requests one completion and extracts references
// from the completion text. Completion errors are returned unchanged; there is no
// partial result, retry or fallback answer.
func (s *QueryService) ProcessQuery(ctx context.Context, req ProcessQueryRequest) (*ProcessQueryResult, error) {
	if s.completer == nil {
		return nil, &llm.ConfigurationError{Message: "completion client not set"}
	}

	prompt := RenderPrompt(req.Query, string(req.Category), string(req.Jurisdiction))

	start := time.Now()
	answer, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("completion failed",
			zap.String("category", string(req.Category)),
			zap.String("jurisdiction", string(req.Jurisdiction)),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	references := ExtractReferences(answer)

	s.logger.Info("query processed",
		zap.String("category", string(req.Category)),
		zap.String("jurisdiction", string(req.Jurisdiction)),
		zap.Int("prompt_length", len(prompt)),
		zap.Int("answer_length", len(answer)),
		zap.Int("references", len(references)),
		zap.Duration("latency", time.Since(start)),
	)

	return &ProcessQueryResult{
		AnalysisResponse: models.AnalysisResponse{
			Answer:     answer,
			References: references,
		},
	}, nil
}
