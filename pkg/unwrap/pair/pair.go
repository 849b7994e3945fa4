package pair

import "github.com/ib-77/unwrap/pkg/unwrap"

func OrPanic[T any](v T, err error) T {
	return unwrap.FromPair(v, err).OrPanic()
}

func PanicOr[T any](v T, err error, def T) T {
	return unwrap.FromPair(v, err).PanicOr(def)
}

// PanicOrElse calls f with err when err is not nil.
func PanicOrElse[T any](v T, err error, f func(error) T) T {
	return unwrap.FromPair(v, err).PanicOrElse(f)
}

func PanicOrDefault[T any](v T, err error) T {
	return unwrap.FromPair(v, err).PanicOrDefault()
}

func PanicWith[T any](v T, err error, msg string) T {
	return unwrap.FromPair(v, err).PanicWith(msg)
}

// OrPanicErr returns err and panics if it is nil.
func OrPanicErr[T any](v T, err error) error {
	return unwrap.FromPair(v, err).OrPanicErr()
}

func PanicErrWith[T any](v T, err error, msg string) error {
	return unwrap.FromPair(v, err).PanicErrWith(msg)
}

// comma-ok

func OrPanicOK[T any](v T, ok bool) T {
	return unwrap.FromOK(v, ok).OrPanic()
}

func PanicOrOK[T any](v T, ok bool, def T) T {
	return unwrap.FromOK(v, ok).PanicOr(def)
}

// PanicOrElseOK calls f only when ok is false.
func PanicOrElseOK[T any](v T, ok bool, f func() T) T {
	return unwrap.FromOK(v, ok).PanicOrElse(f)
}

func PanicOrDefaultOK[T any](v T, ok bool) T {
	return unwrap.FromOK(v, ok).PanicOrDefault()
}

func PanicWithOK[T any](v T, ok bool, msg string) T {
	return unwrap.FromOK(v, ok).PanicWith(msg)
}
