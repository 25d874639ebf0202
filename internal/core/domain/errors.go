package domain

import "errors"

// Access errors
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Input errors
var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidInput = errors.New("invalid input")
)

// State errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrReferentialConflict = errors.New("referential conflict")
	ErrDuplicateEntry      = errors.New("duplicate entry")
	ErrAlreadyReported     = errors.New("work order already has a report")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// Entity specific not-found errors, all wrapping ErrNotFound
var (
	ErrWorkerNotFound      = notFound("worker not found")
	ErrClientNotFound      = notFound("client not found")
	ErrAssetNotFound       = notFound("asset not found")
	ErrWorkOrderNotFound   = notFound("work order not found")
	ErrWorkRequestNotFound = notFound("work request not found")
	ErrReportNotFound      = notFound("report not found")
)

type entityNotFound struct{ msg string }

func (e *entityNotFound) Error() string { return e.msg }

func (e *entityNotFound) Unwrap() error { return ErrNotFound }

func notFound(msg string) error { return &entityNotFound{msg: msg} }
