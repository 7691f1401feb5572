package services

import "errors"

// Error kinds. Services wrap every failure they classify so that
// controllers can map with errors.Is without parsing messages.
var (
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream failure")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func notFound(msg string) error     { return &kindError{kind: ErrNotFound, msg: msg} }
func badRequest(msg string) error   { return &kindError{kind: ErrBadRequest, msg: msg} }
func unauthorized(msg string) error { return &kindError{kind: ErrUnauthorized, msg: msg} }

func upstream(err error) error {
	return &kindError{kind: ErrUpstream, msg: err.Error()}
}
