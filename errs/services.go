package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Third-Party API & LLM Specific Errors
var (
	ErrProviderCall       = errors.New("completion provider call failed")
	ErrEmptyCompletion    = errors.New("completion provider returned no content")
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// NewProviderError wraps any failure while contacting the external completion
// service. The raw error text rides along so the caller sees it verbatim.
func NewProviderError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrProviderCall,
		Details:    cause.Error(),
		Cause:      cause,
	}
}

func NewEmptyCompletionError(model string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEmptyCompletion,
		Details:    fmt.Sprintf("Model %s produced an empty response", model),
	}
}

func IsProviderError(err error) bool {
	return errors.Is(err, ErrProviderCall)
}

func IsEmptyCompletionError(err error) bool {
	return errors.Is(err, ErrEmptyCompletion)
}
