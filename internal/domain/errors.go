package domain

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindConfiguration        Kind = "ConfigurationError"
	KindValidation           Kind = "ValidationError"
	KindUnsupportedMediaType Kind = "UnsupportedMediaType"
	KindPayloadTooLarge      Kind = "PayloadTooLarge"
	KindUpstream             Kind = "UpstreamError"
	KindUpstreamProtocol     Kind = "UpstreamProtocolError"
	KindTranscription        Kind = "TranscriptionError"
	KindNetwork              Kind = "NetworkError"
	KindIO                   Kind = "IOError"
	KindInternal             Kind = "InternalError"
)

// Error is what the voice service returns for every failure. Msg is safe to
// show to the caller; Err keeps the cause for logs.
type Error struct {
	Kind   Kind
	Status int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, status int, msg string, cause error) *Error {
	return &Error{Kind: kind, Status: status, Msg: msg, Err: cause}
}

// StatusOf maps any error to an HTTP status; non-domain errors are 500.
func StatusOf(err error) int {
	var de *Error
	if errors.As(err, &de) && de.Status != 0 {
		return de.Status
	}
	return http.StatusInternalServerError
}

// KindOf returns the domain kind of err, or KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
