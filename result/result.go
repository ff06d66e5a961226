// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

import (
	"errors"
	"fmt"
	"reflect"
)

// DefaultMessage is the message stored by failure constructors when no
// explicit message is provided.
const DefaultMessage = "No message has been provided"

var (
	// ErrInvalidConstruction is reported by New when the input matches
	// neither the success nor the failure shape.
	ErrInvalidConstruction = errors.New("invalid construction")

	// ErrInvalidAccess is reported by accessors invoked against the wrong
	// variant, or against missing underlying data. Callers are expected to
	// check IsOK before accessing variant data, or to use Match instead.
	ErrInvalidAccess = errors.New("invalid access")
)

// Result encapsulates the outcome of an operation that can either succeed
// with a payload of type T or fail with an error value of type E and a
// human-readable message. The variant is fixed at construction time and
// instances are immutable thereafter, so a single Result may be read by any
// number of goroutines without synchronization. The zero value is a success
// holding T's zero value.
type Result[T any, E any] struct {
	payload T
	err     E
	message string
	failed  bool
}

// Ok creates a Result representing a successful outcome with the given
// payload.
func Ok[T any, E any](payload T) Result[T, E] {
	return Result[T, E]{payload: payload}
}

// Err creates a Result representing a failed outcome with the given error
// value and the default message.
func Err[T any, E any](err E) Result[T, E] {
	return ErrWithMessage[T](err, DefaultMessage)
}

// ErrWithMessage creates a Result representing a failed outcome with the
// given error value and message. An empty message falls back to the default.
func ErrWithMessage[T any, E any](err E, message string) Result[T, E] {
	if message == "" {
		message = DefaultMessage
	}
	return Result[T, E]{err: err, message: message, failed: true}
}

// Input is the discriminated input accepted by New. The Payload and Error
// shapes are mutually exclusive; Message is only meaningful together with
// Error and may be left empty to get the default message.
type Input[T any, E any] struct {
	Payload *T
	Error   *E
	Message string
}

// New constructs a Result from a discriminated input. It is intended for
// boundaries where the outcome shape is only known at runtime; code that
// knows the shape statically should use Ok, Err, or ErrWithMessage instead.
// An input with Payload set produces a success, an input with Error set
// produces a failure, and an input with neither is a programming error
// reported as ErrInvalidConstruction.
func New[T any, E any](in Input[T, E]) (Result[T, E], error) {
	if in.Payload != nil {
		return Ok[T, E](*in.Payload), nil
	}
	if in.Error != nil {
		return ErrWithMessage[T](*in.Error, in.Message), nil
	}
	return Result[T, E]{}, fmt.Errorf("%w: to create a failed Result provide an error", ErrInvalidConstruction)
}

// IsOK returns true for the success variant and false for the failure
// variant. It is pure and always safe to call.
func (r Result[T, E]) IsOK() bool {
	return !r.failed
}

// Payload returns the success payload. It reports ErrInvalidAccess when the
// Result is the failure variant, or when the stored payload is itself absent
// (nil or a typed nil). Zero scalars and empty non-nil containers are valid
// payloads.
func (r Result[T, E]) Payload() (T, error) {
	var zero T
	if r.failed {
		return zero, fmt.Errorf("%w: payload requested from a failed Result", ErrInvalidAccess)
	}
	if isAbsent(r.payload) {
		return zero, fmt.Errorf("%w: no payload provided or null", ErrInvalidAccess)
	}
	return r.payload, nil
}

// Error returns the stored error value. It reports ErrInvalidAccess when the
// Result is the success variant, or when no error value is present.
func (r Result[T, E]) Error() (E, error) {
	var zero E
	if !r.failed {
		return zero, fmt.Errorf("%w: error requested from a successful Result", ErrInvalidAccess)
	}
	if isAbsent(r.err) {
		return zero, fmt.Errorf("%w: no error value present", ErrInvalidAccess)
	}
	return r.err, nil
}

// Message returns the stored failure message. It reports ErrInvalidAccess
// when the Result is the success variant.
func (r Result[T, E]) Message() (string, error) {
	if !r.failed {
		return "", fmt.Errorf("%w: message requested from a successful Result", ErrInvalidAccess)
	}
	return r.message, nil
}

// isAbsent reports whether the given value is an absent sentinel, which is a
// nil interface or a typed nil pointer, map, slice, channel, function, or
// interface.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
