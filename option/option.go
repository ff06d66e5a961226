// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package option provides a generic presence type as a way of representing
// a value that may or may not be there, replacing the ambient notion of
// "no value" with an explicit, checkable state.
package option

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidAccess is reported by Payload when invoked on a None. Callers are
// expected to check IsSome first, to use Match, or to fall back to Unwrap.
var ErrInvalidAccess = errors.New("invalid access")

// Option encapsulates a value of type T that may be absent. The variant is
// fixed at construction time and instances are immutable thereafter, so a
// single Option may be read by any number of goroutines without
// synchronization. The zero value is None.
type Option[T any] struct {
	payload T
	some    bool
}

// Of constructs an Option from a value that may be an absent sentinel (nil
// or a typed nil), producing Some for present values and None otherwise.
// The presence check is applied exactly once here; zero scalars and empty
// non-nil containers count as present. A None built this way retains the
// original sentinel so Unwrap can hand it back.
func Of[T any](value T) Option[T] {
	return Option[T]{payload: value, some: !isAbsent(value)}
}

// Some creates an Option holding the given value. The value is trusted to be
// present; callers handing over possibly-nil values should use Of instead.
func Some[T any](value T) Option[T] {
	return Option[T]{payload: value, some: true}
}

// None creates an empty Option holding T's zero value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option holds a value. It is pure and always
// safe to call.
func (o Option[T]) IsSome() bool {
	return o.some
}

// Payload returns the contained value. It reports ErrInvalidAccess when the
// Option is None.
func (o Option[T]) Payload() (T, error) {
	if !o.some {
		var zero T
		return zero, fmt.Errorf("%w: no payload provided or null", ErrInvalidAccess)
	}
	return o.payload, nil
}

// Unwrap returns the contained value if the Option is Some, or the retained
// absent sentinel if it is None. It never fails, at the cost of re-admitting
// the sentinel into the caller's hands.
func (o Option[T]) Unwrap() T {
	return o.payload
}

// Match dispatches to exactly one of the given callbacks depending on the
// Option's variant. A nil callback for the active variant skips the dispatch.
func (o Option[T]) Match(onSome func(payload T), onNone func()) {
	if o.some {
		if onSome != nil {
			onSome(o.payload)
		}
		return
	}
	if onNone != nil {
		onNone()
	}
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
