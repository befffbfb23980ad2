package output

import (
	"fmt"
	"io"
)

// ansiString marks escape sequences we emit ourselves; Printer passes them
// through untouched.
type ansiString string

// Printer writes to w, sanitizing every string-like argument (string,
// []byte, error, fmt.Stringer) since process names come from the OS.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) Printer {
	return Printer{w: w}
}

func (p Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, sanitizeArgs(args)...)
}

func (p Printer) Println(args ...any) {
	fmt.Fprintln(p.w, sanitizeArgs(args)...)
}

func sanitizeArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = sanitizeArg(a)
	}
	return out
}

func sanitizeArg(a any) any {
	switch v := a.(type) {
	case ansiString:
		return string(v)
	case string:
		return SanitizeTerminal(v)
	case []byte:
		return SanitizeTerminal(string(v))
	case error:
		return SanitizeTerminal(v.Error())
	case fmt.Stringer:
		return SanitizeTerminal(v.String())
	}
	return a
}
