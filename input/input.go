// Package input reads typed, validated values from a line-oriented console.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	// DefaultErrorMessage is written when a validator rejects a value.
	DefaultErrorMessage = "Invalid value. Please try again.\n"

	formatErrorMessage = "Invalid format. Please try again.\n"
)

var errColor = color.New(color.FgRed)

// Scannable is the set of types ReadValidated can parse from a single token.
type Scannable interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Reader prompts on out and reads answers line by line from in.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader returns a Reader over in and out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Indent returns tabs tab characters.
func Indent(tabs int) string {
	if tabs <= 0 {
		return ""
	}
	return strings.Repeat("\t", tabs)
}

// ReadLine writes prompt and returns the next line without its terminator.
// A final line without a newline is returned as is; io.EOF is returned only
// when nothing was left to read.
func (r *Reader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	return r.line()
}

func (r *Reader) line() (string, error) {
	s, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (r *Reader) complain(msg string) {
	errColor.Fprint(r.out, msg)
}

type config[T Scannable] struct {
	indent       int
	validator    func(T) bool
	errorMessage string
}

// Option configures ReadValidated.
type Option[T Scannable] func(*config[T])

// WithIndent indents the prompt by n tabs and error messages by n+1.
func WithIndent[T Scannable](n int) Option[T] {
	return func(c *config[T]) { c.indent = n }
}

// WithValidator rejects values for which fn returns false.
func WithValidator[T Scannable](fn func(T) bool) Option[T] {
	return func(c *config[T]) { c.validator = fn }
}

// WithErrorMessage replaces DefaultErrorMessage.
func WithErrorMessage[T Scannable](msg string) Option[T] {
	return func(c *config[T]) { c.errorMessage = msg }
}

// ReadValidated writes prompt once and then reads lines until one holds
// exactly one value of type T that passes the validator. Lines that do not
// parse, or carry anything after the value, are answered with a format
// error; rejected values with the configured error message. It fails only
// when the input ends first.
func ReadValidated[T Scannable](r *Reader, prompt string, opts ...Option[T]) (T, error) {
	cfg := config[T]{errorMessage: DefaultErrorMessage}
	for _, opt := range opts {
		opt(&cfg)
	}

	indent := Indent(cfg.indent)
	fmt.Fprint(r.out, indent+prompt)
	indent += "\t"

	for {
		line, err := r.line()
		if err != nil {
			var zero T
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return zero, fmt.Errorf("reading input: %w", err)
		}

		value, ok := parse[T](line)
		switch {
		case !ok:
			r.complain(indent + formatErrorMessage)
		case cfg.validator != nil && !cfg.validator(value):
			r.complain(indent + cfg.errorMessage)
		default:
			return value, nil
		}
	}
}

// parse scans one value from line and reports whether it consumed the whole
// line. Leading blanks are skipped, trailing ones are not.
func parse[T Scannable](line string) (T, bool) {
	var value T
	rd := strings.NewReader(line)
	if _, err := fmt.Fscan(rd, &value); err != nil {
		return value, false
	}
	return value, rd.Len() == 0
}
