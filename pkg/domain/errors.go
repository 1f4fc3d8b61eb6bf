package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrGatewayFailure indicates the language model call did not return usable text.
	ErrGatewayFailure = errors.New("language model gateway failure")
	// ErrCritiqueFailure indicates the self-critique call failed; the candidate must
	// be treated as unsafe, never waved through.
	ErrCritiqueFailure = errors.New("self-critique failure")
	// ErrRegenerationExhausted indicates the regeneration cap was reached without
	// producing an acceptable candidate.
	ErrRegenerationExhausted = errors.New("regeneration attempts exhausted")
)

type gatewayError struct {
	Provider string
	Err      error
}

func (e *gatewayError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *gatewayError) Unwrap() error {
	return ErrGatewayFailure
}

func NewGatewayError(provider string, err error) error {
	return &gatewayError{
		Provider: provider,
		Err:      err,
	}
}

func IsGatewayError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrGatewayFailure)
}
