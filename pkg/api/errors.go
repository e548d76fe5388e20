package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of a service error.
type ErrorType string

const (
	ErrorTypeMalformedPayload     ErrorType = "malformed_payload"
	ErrorTypeMissingHeader        ErrorType = "missing_header"
	ErrorTypeMissingField         ErrorType = "missing_field"
	ErrorTypeAuthenticationFailed ErrorType = "authentication_failed"
	ErrorTypeStoreUnavailable     ErrorType = "store_unavailable"
	ErrorTypeServerError          ErrorType = "server_error"
)

// AuthenticationFailedMessage is the fixed, deliberately uninformative
// message returned for any credential mismatch. It never reveals which of
// publisher, key, or organization failed to resolve.
const AuthenticationFailedMessage = "Authentication failed, vendor does not have access to the organization " +
	"or does not exist. If this should not be the case, please contact us at " +
	"digitaalABB@vlaanderen.be for login credentials."

// Error is a structured service error carrying the category, the message
// shown to clients, and an HTTP status hint for the transport layer.
type Error struct {
	Type    ErrorType
	Message string
	Status  int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// StatusOrDefault returns the HTTP status hint, falling back to 400 when
// the error carries none.
func (e *Error) StatusOrDefault() int {
	if e.Status == 0 {
		return http.StatusBadRequest
	}
	return e.Status
}

// NewMalformedPayloadError creates an Error for request bodies that cannot
// be expanded into a graph or carry an unsupported content type.
func NewMalformedPayloadError(message string) *Error {
	return &Error{
		Type:    ErrorTypeMalformedPayload,
		Message: message,
	}
}

// NewMissingHeaderError creates an Error for an absent required header.
func NewMissingHeaderError(header string) *Error {
	return &Error{
		Type: ErrorTypeMissingHeader,
		Message: fmt.Sprintf("The required %q header could not be found. "+
			"This is usually attached to the request by the mu-identifier.", header),
	}
}

// NewMissingFieldError creates an Error for a login payload that lacks one
// of the required fields.
func NewMissingFieldError(message string) *Error {
	return &Error{
		Type:    ErrorTypeMissingField,
		Message: message,
	}
}

// NewAuthenticationFailedError creates the Error returned for any
// unauthorized (publisher, key, organization) combination.
func NewAuthenticationFailedError() *Error {
	return &Error{
		Type:    ErrorTypeAuthenticationFailed,
		Message: AuthenticationFailedMessage,
	}
}

// NewStoreUnavailableError creates an Error for a failed store interaction.
func NewStoreUnavailableError(message string) *Error {
	return &Error{
		Type:    ErrorTypeStoreUnavailable,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}

// NewServerError creates an Error for unexpected internal failures, such
// as a recovered panic.
func NewServerError(message string) *Error {
	return &Error{
		Type:    ErrorTypeServerError,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}

// AsError unwraps err into a service *Error when possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
