package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// Error tags for categorization
var (
	ErrTagValidation   = goerr.NewTag("validation")
	ErrTagTransport    = goerr.NewTag("transport")
	ErrTagUnauthorized = goerr.NewTag("unauthorized")
)

// Sentinel errors for request validation
var (
	ErrAPIKeyRequired   = goerr.New("API key is required", goerr.T(ErrTagValidation))
	ErrInvalidTimeframe = goerr.New("invalid timeframe", goerr.T(ErrTagValidation))
)

// TransportError is a non-success response of the Wirespeed API
type TransportError struct {
	Status  int
	Message string
	Path    string
}

// Error implements error
func (e *TransportError) Error() string {
	return fmt.Sprintf("Wirespeed API error: %s (%d)", e.Message, e.Status)
}

// Unauthorized returns true when the API rejected the credential
func (e *TransportError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsUnauthorized reports whether err carries a 401 from the Wirespeed API
func IsUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	if goerr.HasTag(err, ErrTagUnauthorized) {
		return true
	}
	var te *TransportError
	return errors.As(err, &te) && te.Unauthorized()
}

// IsValidation reports whether err is a request validation failure
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	return goerr.HasTag(err, ErrTagValidation) ||
		errors.Is(err, ErrAPIKeyRequired) ||
		errors.Is(err, ErrInvalidTimeframe)
}

// IsTimeframeError reports whether err was caused by an unusable report window
func IsTimeframeError(err error) bool {
	return errors.Is(err, ErrInvalidTimeframe)
}
