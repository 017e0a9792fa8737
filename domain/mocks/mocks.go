// Package mocks holds testify mocks of the domain contracts.
package mocks

import "github.com/stretchr/testify/mock"

// ret returns the i-th configured value, the zero value when it is nil.
func ret[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}
	return zero
}
