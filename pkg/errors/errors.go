// Package errors provides structured error types for sekaimcp.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the query layer, CLI and MCP tools
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a coarse naming convention:
//   - INVALID_*: Input validation failures at the tool boundary
//   - NOT_FOUND: A requested identity does not exist in its collection
//   - DATA_FETCH_FAILED: A snapshot collection could not be fetched or decoded
//   - NETWORK_ERROR: Transport failures talking to upstream services
//   - INTERNAL_ERROR: Unexpected internal errors
//
// # Usage
//
//	err := errors.NotFound("card", 42)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle missing entity
//	}
//
//	// Wrap a failed collection download
//	err := errors.FetchFailed("cards.json", origErr)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeDataFetch    Code = "DATA_FETCH_FAILED"
	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// coder is implemented by typed errors that carry their own code.
type coder interface {
	Code() Code
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// DataFetchError reports that a snapshot collection could not be fetched or
// decoded. Resource is the upstream file name, e.g. "cards.json".
type DataFetchError struct {
	Resource string
	Err      error
}

// FetchFailed wraps err as a DataFetchError for resource.
func FetchFailed(resource string, err error) *DataFetchError {
	return &DataFetchError{Resource: resource, Err: err}
}

// Error implements the error interface.
func (e *DataFetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to fetch %s", e.Resource)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

// Unwrap returns the transport or decode error.
func (e *DataFetchError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *DataFetchError) Code() Code { return ErrCodeDataFetch }

// NotFoundError reports that an identity is absent from its collection.
type NotFoundError struct {
	Kind string // entity kind, e.g. "card"
	ID   any    // requested identity
}

// NotFound creates a NotFoundError for the given entity kind and id.
func NotFound(kind string, id any) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("no %s available", e.Kind)
	}
	return fmt.Sprintf("%s %v not found", e.Kind, e.ID)
}

// Code returns the error code for this error type.
func (e *NotFoundError) Code() Code { return ErrCodeNotFound }

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a typed error
// with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no coded error is found in the chain.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDataFetch reports whether err is or wraps a DataFetchError.
func IsDataFetch(err error) bool {
	var df *DataFetchError
	return errors.As(err, &df)
}

// UserMessage returns the error as printed by the CLI. When the first coded
// error in the chain is an *Error, the code prefix is dropped and the cause
// kept; typed errors such as DataFetchError and plain errors are returned
// as-is.
func UserMessage(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch v := e.(type) {
		case *Error:
			if v.Cause != nil {
				return v.Message + ": " + v.Cause.Error()
			}
			return v.Message
		case coder:
			return err.Error()
		}
	}
	return err.Error()
}
