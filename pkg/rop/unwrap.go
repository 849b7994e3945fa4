package rop

import "github.com/ib-77/unwrap/pkg/unwrap"

// Outcome views r as an unwrap.Outcome; a cancellation is a failure.
func (r Result[T]) Outcome() unwrap.Outcome[T, error] {
	if r.isSuccess {
		return unwrap.Ok[T, error](r.result)
	}
	return unwrap.Err[T](r.err)
}

func (r Result[T]) OrPanic() T {
	return r.Outcome().OrPanic()
}

func (r Result[T]) PanicOr(def T) T {
	return r.Outcome().PanicOr(def)
}

func (r Result[T]) PanicOrElse(f func(err error) T) T {
	return r.Outcome().PanicOrElse(f)
}

func (r Result[T]) PanicOrDefault() T {
	return r.Outcome().PanicOrDefault()
}

func (r Result[T]) PanicWith(msg string) T {
	return r.Outcome().PanicWith(msg)
}

func (r Result[T]) OrPanicErr() error {
	return r.Outcome().OrPanicErr()
}

func (r Result[T]) PanicErrWith(msg string) error {
	return r.Outcome().PanicErrWith(msg)
}
