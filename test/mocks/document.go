package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Interface is a testify mock of document.Interface.
type Interface struct {
	mock.Mock
}

// FetchLinearObjects provides a mock function with given fields: ctx.
func (_m *Interface) FetchLinearObjects(ctx context.Context) ([]map[string]any, error) {
	ret := _m.Called(ctx)

	var r0 []map[string]any
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]map[string]any)
	}

	return r0, ret.Error(1)
}

// StoreLinearObjects provides a mock function with given fields: ctx, objects.
func (_m *Interface) StoreLinearObjects(ctx context.Context, objects []map[string]any) error {
	ret := _m.Called(ctx, objects)

	return ret.Error(0)
}

// NewInterface creates a new instance of Interface. It also registers a cleanup function
// to assert the mock's expectations.
func NewInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *Interface {
	m := &Interface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
