package bungie

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxErrorBody caps how much of a response body a DeserializationError keeps.
const maxErrorBody = 512

// TransportError is returned when a request never produced a response body,
// either because the network call failed or because the per-call deadline
// expired. Timeout is set for the latter.
type TransportError struct {
	Method  string
	URL     string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s %s: timed out: %s", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches context.DeadlineExceeded for every timeout, including those
// raised by an http.Client Timeout rather than the request context.
func (e *TransportError) Is(target error) bool {
	return e.Timeout && target == context.DeadlineExceeded
}

// DeserializationError is returned when a response arrived but its body was
// not valid JSON or did not fit the requested type.
type DeserializationError struct {
	URL  string
	Body string
	Err  error
}

func newDeserializationError(url string, body string, err error) *DeserializationError {
	if len(body) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}
	return &DeserializationError{URL: url, Body: body, Err: err}
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decoding response from %s: %s", e.URL, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// BungieError is the error half of the platform's response envelope. The
// client itself never produces one; endpoint helpers do when ErrorCode is not
// Success.
type BungieError struct {
	ErrorCode       int    `json:"ErrorCode"`
	Message         string `json:"Message"`
	ErrorStatus     string `json:"ErrorStatus"`
	ThrottleSeconds int    `json:"ThrottleSeconds"`
}

func (e *BungieError) Error() string {
	return fmt.Sprintf("error response: %s (%d)", e.Message, e.ErrorCode)
}

// Platform error codes the helpers in this module care about.
const (
	ErrorCodeSuccess                = 1
	ErrorCodeSystemDisabled         = 5
	ErrorCodeInsufficientPrivileges = 12
	ErrorCodeClanNotFound           = 622
	ErrorCodePGCRNotFound           = 1653
	ErrorCodePrivacyRestriction     = 1665
	ErrorCodeBabelTimeout           = 1672
)

// IsTransport reports whether err came from the network layer.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsTimeout reports whether err is a TransportError caused by a deadline.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Timeout
}

// IsDeserialization reports whether err is a DeserializationError.
func IsDeserialization(err error) bool {
	var de *DeserializationError
	return errors.As(err, &de)
}

// ErrorCode extracts the platform ErrorCode from err, or 0 if err is not a
// BungieError.
func ErrorCode(err error) int {
	var be *BungieError
	if errors.As(err, &be) {
		return be.ErrorCode
	}
	return 0
}

func isDeadline(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
