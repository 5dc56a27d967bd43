// Package common provides shared constants, types, and utilities
// used across the JSON Formatter application.
package common

import "errors"

// Sentinel errors for application operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Formatting errors.
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrEmptyInput  = errors.New("empty input")

	// Desktop integration errors.
	ErrAutostartUnsupported = errors.New("autostart is not supported on this platform")
	ErrHotkeyUnavailable    = errors.New("global hotkey unavailable")
	ErrInvalidHotkey        = errors.New("invalid hotkey chord")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// Shutdown errors.
	ErrTeardownStep = errors.New("teardown step failed")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
