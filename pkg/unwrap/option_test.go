package unwrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_Some(t *testing.T) {
	t.Parallel()

	o := Some(42)

	assert.True(t, o.IsSome())
	assert.False(t, o.IsNone())
	assert.Equal(t, 42, o.OrPanic())
	assert.Equal(t, 42, o.PanicOr(100))
	assert.Equal(t, 42, o.PanicOrDefault())
	assert.Equal(t, 42, o.PanicWith("should not panic"))

	called := 0
	assert.Equal(t, 42, o.PanicOrElse(func() int {
		called++
		return 200
	}))
	assert.Zero(t, called, "fallback must not run for Some")
}

func TestOption_SomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Some("hello").OrPanic())
	assert.Equal(t, "hello", Some("hello").PanicOrDefault())
}

func TestOption_OrPanicOnNone(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "called OrPanic() on a None value", func() {
		_ = None[uint32]().OrPanic()
	})
}

func TestOption_PanicOrOnNone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, None[int]().PanicOr(100))
}

func TestOption_PanicOrElseOnNone(t *testing.T) {
	t.Parallel()

	called := 0
	got := None[int]().PanicOrElse(func() int {
		called++
		return 2 * 21
	})

	assert.Equal(t, 42, got)
	assert.Equal(t, 1, called)
}

func TestOption_PanicOrDefaultOnNone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", None[string]().PanicOrDefault())
	assert.Equal(t, 0, None[int]().PanicOrDefault())
	assert.Nil(t, None[[]byte]().PanicOrDefault())
}

func TestOption_PanicWithOnNone(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "Custom error message", func() {
		_ = None[int]().PanicWith("Custom error message")
	})
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	v := 7
	o := FromPtr(&v)
	require.True(t, o.IsSome())
	assert.Equal(t, 7, o.OrPanic())

	// the option holds a copy
	v = 8
	assert.Equal(t, 7, o.OrPanic())

	assert.True(t, FromPtr[int](nil).IsNone())
}

func TestFromOK(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, 1, FromOK(v, ok).OrPanic())

	v, ok = m["b"]
	o := FromOK(v, ok)
	assert.True(t, o.IsNone())
	assert.Equal(t, -1, o.PanicOr(-1))

	got, present := o.Get()
	assert.False(t, present)
	assert.Zero(t, got)
}
