// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures.
type ErrorKind int

const (
	// KindValidation marks bad input. Storage and network were not touched.
	KindValidation ErrorKind = iota + 1
	// KindLocal marks a failure of the local store. Never retried.
	KindLocal
	// KindRemoteUnavailable marks an operation that needs the network while
	// the connectivity oracle reports offline.
	KindRemoteUnavailable
	// KindRemote marks a remote call that failed or was rejected.
	KindRemote
	// KindAggregate marks a sync pass in which some steps failed.
	KindAggregate
	// KindCanceled marks an operation abandoned because its context ended.
	// Nothing was written locally.
	KindCanceled
)

// Sentinels matching each [ErrorKind], usable with [errors.Is].
var (
	ErrValidation            = errors.New("invalid input")
	ErrLocalStorage          = errors.New("local storage failure")
	ErrRemoteUnavailable     = errors.New("remote service unavailable")
	ErrRemoteOperationFailed = errors.New("remote operation failed")
	ErrPartialSync           = errors.New("some items could not be synchronized")
	ErrCanceled              = errors.New("operation canceled")
)

// Validation causes.
var (
	ErrBlankFields  = errors.New("name and description must not be blank")
	ErrItemNotFound = errors.New("item not found")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindLocal:
		return ErrLocalStorage
	case KindRemoteUnavailable:
		return ErrRemoteUnavailable
	case KindRemote:
		return ErrRemoteOperationFailed
	case KindAggregate:
		return ErrPartialSync
	case KindCanceled:
		return ErrCanceled
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the error type returned by the sync engine. Callers match on Kind
// or use errors.Is with the kind sentinels and the underlying cause.
type Error struct {
	Kind ErrorKind
	// Op is the engine operation that failed ("add", "delete", "sync", ...).
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func validationError(op string, err error) error {
	return &Error{Kind: KindValidation, Op: op, Err: err}
}

func localError(op string, err error) error {
	return &Error{Kind: KindLocal, Op: op, Err: err}
}

// canceledError keeps the context error in the chain, so errors.Is matches
// context.Canceled or context.DeadlineExceeded.
func canceledError(ctx context.Context, op string) error {
	return &Error{Kind: KindCanceled, Op: op, Err: ctx.Err()}
}

// outcome is how a best-effort path treats the result of a remote call.
type outcome int

const (
	// outcomeOK: the remote call succeeded.
	outcomeOK outcome = iota
	// outcomeFallback: the call failed; continue with the local-only result.
	outcomeFallback
	// outcomeFatal: the caller gave up; stop without touching storage.
	outcomeFatal
)

func classifyRemote(ctx context.Context, err error) outcome {
	switch {
	case err == nil:
		return outcomeOK
	case ctx.Err() != nil:
		return outcomeFatal
	default:
		return outcomeFallback
	}
}
