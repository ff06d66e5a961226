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

//go:generate mockgen -source visitor.go -destination visitor_mocks.go -package result

// Visitor receives exactly one callback describing the variant of a Result
// passed to Accept.
type Visitor[T any, E any] interface {
	// Success is invoked with the payload of a successful Result.
	Success(payload T)
	// Failure is invoked with the error value and message of a failed Result.
	Failure(err E, message string)
}

// Accept dispatches to the visitor method matching the Result's variant.
// Unlike the direct accessors, visiting has no failure path: the active
// variant's data is handed to the matching method directly.
func (r Result[T, E]) Accept(v Visitor[T, E]) {
	if r.failed {
		v.Failure(r.err, r.message)
		return
	}
	v.Success(r.payload)
}

// Match dispatches to exactly one of the given callbacks depending on the
// Result's variant. A nil callback for the active variant skips the dispatch.
func (r Result[T, E]) Match(onSuccess func(payload T), onFailure func(err E, message string)) {
	if r.failed {
		if onFailure != nil {
			onFailure(r.err, r.message)
		}
		return
	}
	if onSuccess != nil {
		onSuccess(r.payload)
	}
}
