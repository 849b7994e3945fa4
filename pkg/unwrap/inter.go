package unwrap

// Unwrapper is the part of the surface shared by Option and Outcome.
type Unwrapper[T any] interface {
	// OrPanic returns the value or panics
	OrPanic() T
	// PanicOr returns the value or def
	PanicOr(def T) T
	// PanicOrDefault returns the value or the zero T
	PanicOrDefault() T
	// PanicWith returns the value or panics with msg
	PanicWith(msg string) T
}

// OptionUnwrapper is the full surface of an option; PanicOrElse takes no argument.
type OptionUnwrapper[T any] interface {
	Unwrapper[T]
	PanicOrElse(f func() T) T
}

// ErrUnwrapper extracts the failure side
type ErrUnwrapper[E any] interface {
	OrPanicErr() E
	PanicErrWith(msg string) E
}

// OutcomeUnwrapper is the full surface of an outcome; PanicOrElse receives the failure.
type OutcomeUnwrapper[T, E any] interface {
	Unwrapper[T]
	ErrUnwrapper[E]
	PanicOrElse(f func(E) T) T
}

var (
	_ OptionUnwrapper[int]         = Option[int]{}
	_ OutcomeUnwrapper[int, error] = Outcome[int, error]{}
)
