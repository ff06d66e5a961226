// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package result is a generated GoMock package.
package result

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockVisitor is a mock of Visitor interface.
type MockVisitor[T any, E any] struct {
	ctrl     *gomock.Controller
	recorder *MockVisitorMockRecorder[T, E]
	isgomock struct{}
}

// MockVisitorMockRecorder is the mock recorder for MockVisitor.
type MockVisitorMockRecorder[T any, E any] struct {
	mock *MockVisitor[T, E]
}

// NewMockVisitor creates a new mock instance.
func NewMockVisitor[T any, E any](ctrl *gomock.Controller) *MockVisitor[T, E] {
	mock := &MockVisitor[T, E]{ctrl: ctrl}
	mock.recorder = &MockVisitorMockRecorder[T, E]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVisitor[T, E]) EXPECT() *MockVisitorMockRecorder[T, E] {
	return m.recorder
}

// Failure mocks base method.
func (m *MockVisitor[T, E]) Failure(err E, message string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Failure", err, message)
}

// Failure indicates an expected call of Failure.
func (mr *MockVisitorMockRecorder[T, E]) Failure(err, message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Failure", reflect.TypeOf((*MockVisitor[T, E])(nil).Failure), err, message)
}

// Success mocks base method.
func (m *MockVisitor[T, E]) Success(payload T) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Success", payload)
}

// Success indicates an expected call of Success.
func (mr *MockVisitorMockRecorder[T, E]) Success(payload any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Success", reflect.TypeOf((*MockVisitor[T, E])(nil).Success), payload)
}
