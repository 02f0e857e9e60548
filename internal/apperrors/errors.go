package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"syscall"
)

const (
	NetworkErrorMessage = "Can't load data.\nCheck your network connection."
	GenericErrorMessage = "Something went wrong. Please try again."
)

// ErrNetwork represents a connectivity failure while talking to the catalog API.
type ErrNetwork struct {
	Err error
}

// Error implements the error interface.
func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *ErrNetwork) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrNetwork) Is(target error) bool {
	_, ok := target.(*ErrNetwork)
	return ok
}

// ErrBadStatus is returned when the API answers with an unexpected HTTP status.
type ErrBadStatus struct {
	StatusCode int
}

func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("bad status: %d", e.StatusCode)
}

func (e *ErrBadStatus) Is(target error) bool {
	_, ok := target.(*ErrBadStatus)
	return ok
}

// Temporary reports whether retrying the request may succeed.
func (e *ErrBadStatus) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// ErrInvalidPage is returned for page numbers below 1.
type ErrInvalidPage struct {
	Page int
}

func (e *ErrInvalidPage) Error() string {
	return fmt.Sprintf("invalid page number %d: pages start at 1", e.Page)
}

func (e *ErrInvalidPage) Is(target error) bool {
	_, ok := target.(*ErrInvalidPage)
	return ok
}

// Classify wraps transport level failures into *ErrNetwork and returns
// every other error unchanged.
func Classify(err error) error {
	if err == nil || IsNetwork(err) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	// *url.Error satisfies net.Error itself, so only its cause is inspected.
	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		cause = urlErr.Err
	}

	var netErr net.Error
	var dnsErr *net.DNSError
	var opErr *net.OpError
	switch {
	case errors.As(cause, &dnsErr),
		errors.As(cause, &opErr),
		errors.As(cause, &netErr),
		errors.Is(cause, context.DeadlineExceeded),
		errors.Is(cause, syscall.ECONNREFUSED),
		errors.Is(cause, syscall.ECONNRESET),
		urlErr != nil && (errors.Is(cause, io.EOF) || errors.Is(cause, io.ErrUnexpectedEOF)):
		return &ErrNetwork{Err: err}
	}
	return err
}

func IsNetwork(err error) bool {
	return errors.Is(err, &ErrNetwork{})
}

// UserMessage returns the text shown to the user when a fetch fails.
func UserMessage(err error) string {
	if IsNetwork(err) {
		return NetworkErrorMessage
	}
	return GenericErrorMessage
}
