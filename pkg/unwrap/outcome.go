package unwrap

// Outcome holds either a success value of type T or a failure of type E.
// The zero Outcome is an Err holding the zero E, and Err(nil) is still an Err.
type Outcome[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{value: v, ok: true}
}

func Err[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{err: e}
}

// FromPair converts a (value, error) return into an Outcome. A nil error is Ok.
func FromPair[T any](v T, err error) Outcome[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func (o Outcome[T, E]) IsOk() bool {
	return o.ok
}

func (o Outcome[T, E]) IsErr() bool {
	return !o.ok
}

func (o Outcome[T, E]) Value() (T, bool) {
	return o.value, o.ok
}

func (o Outcome[T, E]) Failure() (E, bool) {
	return o.err, !o.ok
}

// OrPanic returns the success value, or panics with the failure in the message.
func (o Outcome[T, E]) OrPanic() T {
	if !o.ok {
		fail(msgOrPanicErr + debug(o.err))
	}
	return o.value
}

func (o Outcome[T, E]) PanicOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// PanicOrElse hands the failure to f and returns what f produces.
func (o Outcome[T, E]) PanicOrElse(f func(E) T) T {
	if !o.ok {
		return f(o.err)
	}
	return o.value
}

func (o Outcome[T, E]) PanicOrDefault() T {
	var zero T
	return o.PanicOr(zero)
}

// PanicWith panics with "msg: <failure>" on Err.
func (o Outcome[T, E]) PanicWith(msg string) T {
	if !o.ok {
		fail(msg + ": " + debug(o.err))
	}
	return o.value
}

// OrPanicErr is the inverse of OrPanic: it returns the failure and panics on Ok.
func (o Outcome[T, E]) OrPanicErr() E {
	if o.ok {
		fail(msgOrPanicErrOk + debug(o.value))
	}
	return o.err
}

func (o Outcome[T, E]) PanicErrWith(msg string) E {
	if o.ok {
		fail(msg)
	}
	return o.err
}
