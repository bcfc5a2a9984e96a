// Package cfmt is the user-facing surface: fmt-alike operations whose format
// string is a colour template. Each operation runs the template through the
// transform once (results are cached per distinct template) and hands the
// rewritten string, with the value arguments untouched, to the matching fmt
// primitive.
//
// Malformed templates are programmer errors, templates are nearly always
// literals. Operations that already return an error (Printf, Printfln,
// Fprintf, Fprintfln) surface the transform error that way; the rest
// (Sprintf, Formatf, Panicf) panic with the diagnostic. Compile is the
// non-panicking path for templates built at runtime
package cfmt

import (
	"fmt"
	"io"
	"os"
	"sync"

	"awesome-dragon.science/go/colourfmt/pkg/transformer"
)

// compiled caches transform results keyed by template. Successes only, so a
// bad template reports its error on every use rather than just the first
var compiled sync.Map

// Compile transforms a template, memoising the result. Safe for concurrent
// use; the transform is pure, so a racing double compute is harmless
func Compile(template string) (string, error) {
	if cached, ok := compiled.Load(template); ok {
		return cached.(string), nil
	}

	out, err := transformer.Transform(template)
	if err != nil {
		return "", fmt.Errorf("template %q: %w", template, err)
	}

	compiled.Store(template, out)

	return out, nil
}

// MustCompile is Compile but panics on a malformed template. Intended for
// package-level variables, where it surfaces the diagnostic at program start
func MustCompile(template string) string {
	out, err := Compile(template)
	if err != nil {
		panic(err)
	}

	return out
}

// Printf transforms the template and prints to stdout
func Printf(format string, args ...interface{}) (int, error) {
	return Fprintf(os.Stdout, format, args...)
}

// Printfln transforms the template and prints to stdout with a trailing
// newline
func Printfln(format string, args ...interface{}) (int, error) {
	return Fprintfln(os.Stdout, format, args...)
}

// Fprintf transforms the template and writes to w
func Fprintf(w io.Writer, format string, args ...interface{}) (int, error) {
	out, err := Compile(format)
	if err != nil {
		return 0, err
	}

	return fmt.Fprintf(w, out, args...)
}

// Fprintfln transforms the template and writes to w with a trailing newline
func Fprintfln(w io.Writer, format string, args ...interface{}) (int, error) {
	out, err := Compile(format)
	if err != nil {
		return 0, err
	}

	return fmt.Fprintf(w, out+"\n", args...)
}

// Sprintf transforms the template and returns the formatted string. Panics on
// a malformed template
func Sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(MustCompile(format), args...)
}

// Panicf transforms the template, formats, and panics with the result
func Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(MustCompile(format), args...))
}

// Formatted is a lazily formatted colour message. Formatting happens when it
// is printed or its String method is called, not when it is built
type Formatted struct {
	format string
	args   []interface{}
}

// Formatf transforms the template and captures the arguments for later
// formatting. Panics on a malformed template. Handy for APIs that accept a
// fmt.Stringer to defer work until (and unless) the value is rendered
func Formatf(format string, args ...interface{}) Formatted {
	return Formatted{format: MustCompile(format), args: args}
}

// String renders the captured message
func (f Formatted) String() string {
	return fmt.Sprintf(f.format, f.args...)
}

// Format implements fmt.Formatter so a Formatted prints identically under %s
// and %v
func (f Formatted) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = io.WriteString(s, f.String())
	default:
		fmt.Fprintf(s, "%%!%c(cfmt.Formatted=%s)", verb, f.String())
	}
}
