package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for a 404 from the booking API.
	ErrNotFound = errors.New("resource not found")
	// ErrCancelled is returned when the caller's context was cancelled before a response arrived.
	ErrCancelled = errors.New("request cancelled")
)

// RequestFailedError is a non-2xx response (other than 404) or an unusable body.
type RequestFailedError struct {
	Status  int
	Message string
	Body    []byte
	Err     error
}

func (e *RequestFailedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.Err != nil {
		return fmt.Sprintf("booking api %d: %s: %v", e.Status, msg, e.Err)
	}
	return fmt.Sprintf("booking api %d: %s", e.Status, msg)
}

func (e *RequestFailedError) Unwrap() error { return e.Err }

// NetworkError is a transport failure: no response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("booking api %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }

func IsRequestFailed(err error) bool {
	var rf *RequestFailedError
	return errors.As(err, &rf)
}

func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
