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
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResult_Accept_SuccessIsDispatchedToVisitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	visitor := NewMockVisitor[int, error](ctrl)
	visitor.EXPECT().Success(42)

	Ok[int, error](42).Accept(visitor)
}

func TestResult_Accept_FailureIsDispatchedToVisitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	issue := errors.New("network unreachable")
	visitor := NewMockVisitor[int, error](ctrl)
	visitor.EXPECT().Failure(issue, "timeout")

	ErrWithMessage[int](issue, "timeout").Accept(visitor)
}

func TestResult_Match_SuccessCallsOnlySuccessCallback(t *testing.T) {
	var got int
	Ok[int, error](42).Match(
		func(payload int) { got = payload },
		func(err error, message string) { t.Fatal("failure callback must not run") },
	)
	require.Equal(t, 42, got)
}

func TestResult_Match_FailureCallsOnlyFailureCallback(t *testing.T) {
	issue := errors.New("network unreachable")
	var gotErr error
	var gotMessage string
	ErrWithMessage[int](issue, "timeout").Match(
		func(payload int) { t.Fatal("success callback must not run") },
		func(err error, message string) { gotErr, gotMessage = err, message },
	)
	require.ErrorIs(t, gotErr, issue)
	require.Equal(t, "timeout", gotMessage)
}

func TestResult_Match_NilCallbacksAreTolerated(t *testing.T) {
	Ok[int, error](42).Match(nil, nil)
	Err[int, error](errors.New("bad")).Match(nil, nil)
}
