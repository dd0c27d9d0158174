package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(in string) (*Reader, *bytes.Buffer) {
	color.NoColor = true
	out := new(bytes.Buffer)
	return NewReader(strings.NewReader(in), out), out
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "", Indent(0))
	assert.Equal(t, "", Indent(-3))
	assert.Equal(t, "\t\t", Indent(2))
}

func TestReadValidated(t *testing.T) {
	t.Run("First valid value", func(t *testing.T) {
		r, out := newTestReader("42\n")
		v, err := ReadValidated[int](r, "Age: ")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, "Age: ", out.String())
	})

	t.Run("Format errors", func(t *testing.T) {
		r, out := newTestReader("abc\n\n4x\n7 \n  7\n")
		v, err := ReadValidated[int](r, "N: ", WithIndent[int](1))
		require.NoError(t, err)
		assert.Equal(t, 7, v)
		want := "\tN: " + strings.Repeat("\t\t"+formatErrorMessage, 4)
		assert.Equal(t, want, out.String())
	})

	t.Run("Validator", func(t *testing.T) {
		positive := func(v float64) bool { return v > 0 }
		r, out := newTestReader("-1\n0\n2.5\r\n")
		v, err := ReadValidated[float64](r, "Price: ",
			WithValidator(positive),
			WithErrorMessage[float64]("Must be positive.\n"))
		require.NoError(t, err)
		assert.Equal(t, 2.5, v)
		assert.Equal(t, "Price: \tMust be positive.\n\tMust be positive.\n", out.String())
	})

	t.Run("Default error message", func(t *testing.T) {
		r, out := newTestReader("no\nyes\n")
		v, err := ReadValidated[string](r, "", WithValidator(func(s string) bool { return s == "yes" }))
		require.NoError(t, err)
		assert.Equal(t, "yes", v)
		assert.Equal(t, "\t"+DefaultErrorMessage, out.String())
	})

	t.Run("Single token strings", func(t *testing.T) {
		r, out := newTestReader("two words\nword")
		v, err := ReadValidated[string](r, "> ")
		require.NoError(t, err)
		assert.Equal(t, "word", v)
		assert.Equal(t, "> \t"+formatErrorMessage, out.String())
	})

	t.Run("Named types", func(t *testing.T) {
		type level uint8
		r, _ := newTestReader("3\n")
		v, err := ReadValidated[level](r, "")
		require.NoError(t, err)
		assert.Equal(t, level(3), v)
	})

	t.Run("Input ends", func(t *testing.T) {
		r, _ := newTestReader("bad\n")
		_, err := ReadValidated[bool](r, "ok? ")
		require.Error(t, err)
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})
}

func TestReadLine(t *testing.T) {
	r, out := newTestReader("first\r\n\nlast")
	for _, want := range []string{"first", "", "last"} {
		got, err := r.ReadLine("? ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadLine("? ")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "? ? ? ? ", out.String())
}
