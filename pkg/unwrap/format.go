package unwrap

import "fmt"

const (
	msgOrPanicNone  = "called OrPanic() on a None value"
	msgOrPanicErr   = "called OrPanic() on an Err value: "
	msgOrPanicErrOk = "called OrPanicErr() on an Ok value: "
)

// debug renders v the way a panic diagnostic shows it: errors with %+v so
// wrapped causes survive, anything else in Go syntax.
func debug(v any) string {
	if err, ok := v.(error); ok {
		return fmt.Sprintf("%+v", err)
	}
	return fmt.Sprintf("%#v", v)
}

func fail(msg string) {
	panic(msg)
}
