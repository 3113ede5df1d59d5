package omni

import (
	"fmt"
	"time"
)

// ErrorKind classifies why a chat-completion call failed
type ErrorKind int

const (
	ErrorKindUnexpected ErrorKind = iota
	ErrorKindTimeout
	ErrorKindConnection
	ErrorKindHTTPStatus
	ErrorKindUnexpectedFormat
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTimeout:
		return "timeout"
	case ErrorKindConnection:
		return "connection"
	case ErrorKindHTTPStatus:
		return "http_status"
	case ErrorKindUnexpectedFormat:
		return "unexpected_format"
	default:
		return "unexpected"
	}
}

// RequestError is returned by Client.Complete. Its Error text is the
// message shown to the user.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	// Body is the raw response body, set for HTTP status and format errors
	Body       string
	msg        string
	Err        error
}

func (e *RequestError) Error() string {
	return e.msg
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func timeoutError(timeout time.Duration, err error) *RequestError {
	return &RequestError{
		Kind: ErrorKindTimeout,
		msg:  fmt.Sprintf("Request timed out after %s", humanDuration(timeout)),
		Err:  err,
	}
}

func connectionError(baseURL string, err error) *RequestError {
	return &RequestError{
		Kind: ErrorKindConnection,
		msg:  fmt.Sprintf("Failed to connect to %s. Is the service running?", baseURL),
		Err:  err,
	}
}

func httpStatusError(statusCode int, body string) *RequestError {
	return &RequestError{
		Kind:       ErrorKindHTTPStatus,
		StatusCode: statusCode,
		Body:       body,
		msg:        fmt.Sprintf("HTTP error: %d - %s", statusCode, body),
	}
}

func unexpectedFormatError(body string) *RequestError {
	return &RequestError{
		Kind: ErrorKindUnexpectedFormat,
		Body: body,
		msg:  "Unexpected response format",
	}
}

func unexpectedError(err error) *RequestError {
	return &RequestError{
		Kind: ErrorKindUnexpected,
		msg:  fmt.Sprintf("Unexpected error: %v", err),
		Err:  err,
	}
}

// humanDuration renders whole minutes the way people say them ("5 minutes")
// and falls back to Go's duration format otherwise.
func humanDuration(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		minutes := int(d / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return d.String()
}
