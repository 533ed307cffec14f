package service

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned before any model call when the user input is blank.
var ErrEmptyInput = errors.New("input cannot be empty")

// ConfigError means the backend cannot be used at all, e.g. a missing API key.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// APIError wraps a transport or remote failure, keeping the remote message.
type APIError struct {
	Provider string
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API call failed (%s): %s", e.Provider, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ParseError means the reply was not valid JSON or did not have the expected shape.
type ParseError struct {
	Message  string
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("model returned malformed JSON: %s", e.Message)
	if e.Fragment != "" {
		msg += fmt.Sprintf(". Response: %s", e.Fragment)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const maxFragment = 200

func fragment(text string) string {
	r := []rune(text)
	if len(r) <= maxFragment {
		return text
	}
	return string(r[:maxFragment]) + "..."
}
