// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

// Package throw provides a compact error kit for contract-violation reporting.
// Errors carry a stack captured at creation and are compatible with errors.Is / errors.As.
package throw

import (
	"errors"
	"fmt"
)

// IllegalState returns an error to indicate that an object is in an
// inappropriate state for the invoked operation.
func IllegalState() error {
	return newFault("illegal state", nil, nil, 1)
}

// IllegalValue returns an error to indicate that a provided argument
// has an inappropriate value.
func IllegalValue() error {
	return newFault("illegal value", nil, nil, 1)
}

// Impossible marks an unreachable-by-design code path.
func Impossible() error {
	return newFault("impossible", nil, nil, 1)
}

// E creates an error with the given message and optional details.
func E(msg string, details ...interface{}) error {
	return newFault(msg, nil, details, 1)
}

// W wraps the given error with a message and optional details.
// Returns nil if (err) is nil.
func W(err error, msg string, details ...interface{}) error {
	if err == nil {
		return nil
	}
	return newFault(msg, err, details, 1)
}

// WithStack attaches a captured stack to (err) when it doesn't carry one yet.
// Returns nil if (err) is nil.
func WithStack(err error) error {
	switch {
	case err == nil:
		return nil
	case !StackOf(err).IsEmpty():
		return err
	}
	return fault{err: err, stack: CaptureStack(1)}
}

// R converts a recovered panic value into an error and combines it with a
// prior error. A nil (recovered) returns (prevErr) unchanged. Intended use:
//
//	defer func() {
//		err = throw.R(recover(), err)
//	}()
func R(recovered interface{}, prevErr error) error {
	switch {
	case recovered == nil:
		return prevErr
	case prevErr == nil:
		return toError(recovered, 1)
	}
	return newFault("panic after error", prevErr, []interface{}{recovered}, 1)
}

func toError(recovered interface{}, skipFrames int) error {
	switch v := recovered.(type) {
	case error:
		return WithStack(v)
	case string:
		return newFault(v, nil, nil, skipFrames+1)
	}
	return newFault("recovered panic", nil, []interface{}{recovered}, skipFrames+1)
}

func newFault(msg string, err error, details []interface{}, skipFrames int) error {
	f := fault{msg: msg, err: err, stack: CaptureStack(skipFrames + 1)}
	if len(details) > 0 {
		f.details = details
	}
	return f
}

type fault struct {
	msg     string
	details []interface{}
	err     error
	stack   StackTrace
}

func (v fault) Error() string {
	s := v.msg
	if len(v.details) > 0 {
		s += " " + fmt.Sprint(v.details...)
	}
	if v.err != nil {
		if s == "" {
			return v.err.Error()
		}
		s += ": " + v.err.Error()
	}
	return s
}

func (v fault) Unwrap() error {
	return v.err
}

func (v fault) StackTrace() StackTrace {
	return v.stack
}

func errUnwrap(err error) error {
	return errors.Unwrap(err)
}
