package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrNotFound(t *testing.T) {
	err := NewNotFoundError("person", 287)

	assert.Equal(t, "person with ID 287 not found", err.Error())
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), &ErrNotFound{}))
	assert.Equal(t, "show not found", NewNotFoundError("show", nil).Error())
}

func TestErrBadStatus_Temporary(t *testing.T) {
	assert.True(t, (&ErrBadStatus{StatusCode: 503}).Temporary())
	assert.True(t, (&ErrBadStatus{StatusCode: 429}).Temporary())
	assert.False(t, (&ErrBadStatus{StatusCode: 401}).Temporary())
}

func TestClassify(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "api.themoviedb.org", IsNotFound: true}

	classified := Classify(dnsErr)
	assert.True(t, IsNetwork(classified))
	assert.True(t, errors.Is(classified, dnsErr))

	assert.True(t, IsNetwork(Classify(context.DeadlineExceeded)))
	assert.False(t, IsNetwork(Classify(context.Canceled)))
	assert.False(t, IsNetwork(Classify(&ErrBadStatus{StatusCode: 500})))
	assert.Nil(t, Classify(nil))

	again := Classify(classified)
	assert.Same(t, classified, again)
}

func TestClassify_URLError(t *testing.T) {
	refused := &url.Error{Op: "Get", URL: "https://api.themoviedb.org/3/tv/popular", Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}}
	assert.True(t, IsNetwork(Classify(refused)))

	eof := &url.Error{Op: "Get", URL: "https://api.themoviedb.org/3/tv/popular", Err: io.EOF}
	assert.True(t, IsNetwork(Classify(eof)))

	badScheme := &url.Error{Op: "Get", URL: "htps://api.themoviedb.org/3/tv/popular", Err: errors.New(`unsupported protocol scheme "htps"`)}
	classified := Classify(badScheme)
	assert.False(t, IsNetwork(classified))
	assert.Same(t, badScheme, classified)
	assert.Equal(t, GenericErrorMessage, UserMessage(classified))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, NetworkErrorMessage, UserMessage(&ErrNetwork{Err: errors.New("dial tcp: refused")}))
	assert.Equal(t, GenericErrorMessage, UserMessage(&ErrBadStatus{StatusCode: 500}))
	assert.Equal(t, GenericErrorMessage, UserMessage(&ErrInvalidPage{Page: 0}))
}
