package errs

import (
	"encoding/json"
	"fmt"
)

// ValidationError is a structured validation failure: a machine-readable
// field path plus a closed-set Reason, with a human-readable Message
// derived from (not canonical to) the two.
type ValidationError struct {
	FieldPath string `json:"fieldPath,omitempty"`
	Reason    Reason `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
	SysError  error  `json:"-"`
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(fieldPath string, reason Reason, format string, a ...interface{}) *ValidationError {
	return &ValidationError{
		FieldPath: fieldPath,
		Reason:    reason,
		Message:   fmt.Sprintf(format, a...),
	}
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	if ve == nil {
		return ""
	}
	if ve.FieldPath == "" {
		return ve.Message
	}
	return fmt.Sprintf("%s: %s", ve.FieldPath, ve.Message)
}

// GetSysError returns the underlying system error, falling back to a
// plain error built from Message if none was attached.
func (ve *ValidationError) GetSysError() error {
	if ve.SysError != nil {
		return ve.SysError
	}
	return fmt.Errorf(ve.Message)
}

// MarshalJSON excludes SysError, which is never meant for a client.
func (ve *ValidationError) MarshalJSON() ([]byte, error) {
	type alias ValidationError
	return json.Marshal(&struct{ *alias }{alias: (*alias)(ve)})
}

// ParseError is the crontab-specific counterpart of ValidationError: it
// names the offending crontab field and its 0-based position among the
// five fields rather than a dotted field path.
type ParseError struct {
	Field    string `json:"field,omitempty"`
	Position int    `json:"position"`
	Reason   string `json:"reason,omitempty"`
	Message  string `json:"message,omitempty"`
}

// NewParseError builds a ParseError with a formatted message.
func NewParseError(field string, position int, reason, format string, a ...interface{}) *ParseError {
	return &ParseError{
		Field:    field,
		Position: position,
		Reason:   reason,
		Message:  fmt.Sprintf(format, a...),
	}
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	if pe == nil {
		return ""
	}
	if pe.Field == "" {
		return pe.Message
	}
	return fmt.Sprintf("%s[%d]: %s", pe.Field, pe.Position, pe.Message)
}
