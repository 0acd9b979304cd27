package parseline

import (
	"errors"
	"fmt"
)

// Error types for classifying client errors. Validation-class errors are
// always raised before any request is issued.

// ValidationError indicates bad or missing input detected before any
// network call.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// MissingInputError indicates a required binary attachment was absent from
// the input item.
type MissingInputError struct {
	Property string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("no binary data found under property %q", e.Property)
}

// ConfigurationError indicates the supplied credential cannot be used as
// configured, e.g. a token that is not scoped to an organization.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// UnsupportedOperationError indicates an operation name outside the
// declared set for a resource.
type UnsupportedOperationError struct {
	Resource  string
	Operation string
	Hint      string
}

func (e *UnsupportedOperationError) Error() string {
	msg := fmt.Sprintf("operation %q is not supported for resource %q", e.Operation, e.Resource)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// TransportError indicates a network or HTTP failure from the remote.
// StatusCode is zero when the request never reached the remote; Body holds
// the raw response body when one was received.
type TransportError struct {
	StatusCode int
	Body       []byte
	err        error
}

func (e *TransportError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("request failed: %v", e.err)
	}
	return fmt.Sprintf("parseline API error (%d): %s", e.StatusCode, remoteErrorMessage(e.Body))
}

func (e *TransportError) Unwrap() error {
	return e.err
}

// IsValidation returns true for validation-class input errors.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsMissingInput returns true when a required binary attachment was absent.
func IsMissingInput(err error) bool {
	var m *MissingInputError
	return errors.As(err, &m)
}

// IsConfiguration returns true for credential configuration errors.
func IsConfiguration(err error) bool {
	var c *ConfigurationError
	return errors.As(err, &c)
}

// IsUnsupportedOperation returns true for unknown operation names.
func IsUnsupportedOperation(err error) bool {
	var u *UnsupportedOperationError
	return errors.As(err, &u)
}

// IsTransport returns true for network and HTTP remote failures.
func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}
