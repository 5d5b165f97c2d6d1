package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is
	ErrConfiguration = errors.New("configuration error")
	// ErrService matches every *ServiceError via errors.Is
	ErrService = errors.New("completion service error")
)

// ConfigurationError reports a missing or invalid setting, such as an absent API key
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Setting == "" {
		return "configuration error: " + e.Message
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Message)
}

// Is makes errors.Is(err, ErrConfiguration) true
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ServiceError reports a failed call to the remote completion service:
// transport failure, non-2xx status, malformed body or an empty completion.
type ServiceError struct {
	Provider   string
	StatusCode int // 0 when no HTTP response was received
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	msg := e.Provider + ": " + e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrService) true
func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}
