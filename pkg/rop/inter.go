package rop

import "github.com/ib-77/unwrap/pkg/unwrap"

// Settled is a result that finished as a success, a failure or a cancellation.
type Settled[T any] interface {
	// Result is the success value, zero otherwise
	Result() T
	// Err is set for failures and cancellations
	Err() error
	IsSuccess() bool
	IsCancel() bool
}

// Unwrappable is a settled result that also offers the unwrap operations;
// cancellations go down the failure side.
type Unwrappable[T any] interface {
	Settled[T]
	unwrap.OutcomeUnwrapper[T, error]
}

var _ Unwrappable[int] = Result[int]{}
