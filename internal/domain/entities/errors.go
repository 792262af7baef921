package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError marks a numeric input outside its allowed range. It names
// the offending field so the conversation can ask the user to re-enter
// exactly that value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConfigurationError marks malformed or missing rate/keyword tables. It is
// fatal at startup and never surfaced mid-conversation.
type ConfigurationError struct {
	Table  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: table %s: %s", e.Table, e.Reason)
}

func NewConfigurationError(table, reason string) *ConfigurationError {
	return &ConfigurationError{Table: table, Reason: reason}
}

// MissingFieldsError is the routine "not enough data yet" outcome of quote
// computation. Fields are ordered, human-readable and already localized to
// the session language.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing fields: " + strings.Join(e.Fields, ", ")
}

// IsMissingFields reports whether err is a MissingFieldsError and returns it.
func IsMissingFields(err error) (*MissingFieldsError, bool) {
	var mf *MissingFieldsError
	if errors.As(err, &mf) {
		return mf, true
	}
	return nil, false
}
