package unwrap

type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer, otherwise Some of the pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOK wraps the comma-ok idiom: map lookups, type assertions, channel receives.
func FromOK[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrPanic returns the contained value.
// It panics with "called OrPanic() on a None value" if the option is empty.
func (o Option[T]) OrPanic() T {
	if !o.present {
		fail(msgOrPanicNone)
	}
	return o.value
}

// PanicOr returns the contained value or def. It never panics.
func (o Option[T]) PanicOr(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// PanicOrElse returns the contained value, or the result of f when the
// option is empty. f is not called for Some.
func (o Option[T]) PanicOrElse(f func() T) T {
	if !o.present {
		return f()
	}
	return o.value
}

// PanicOrDefault returns the contained value or the zero value of T.
func (o Option[T]) PanicOrDefault() T {
	var zero T
	return o.PanicOr(zero)
}

// PanicWith returns the contained value.
// It panics with msg, unchanged, if the option is empty.
func (o Option[T]) PanicWith(msg string) T {
	if !o.present {
		fail(msg)
	}
	return o.value
}
