package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is a diagnostic about a wrapper declaration, a directive or an
// import of a wrapgen file. It points to the offending range of the source
// code so that the CLI prints it as "file.go:line:col: message" and the
// analyzer reports it at the range.
type CodeError struct {
	msg      string
	pos, end token.Pos
	fset     *token.FileSet
}

// Message returns the diagnostic without its position.
func (e *CodeError) Message() string { return e.msg }

// Pos returns the start of the offending range. It is invalid for a
// diagnostic about the whole package.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the offending range. It is invalid if the diagnostic
// points to a single position.
func (e *CodeError) End() token.Pos { return e.end }

// Position resolves the start of the offending range.
func (e *CodeError) Position() (token.Position, bool) {
	if !e.pos.IsValid() || e.fset == nil {
		return token.Position{}, false
	}
	return e.fset.Position(e.pos), true
}

// Error returns the message prefixed with its position relative to the working
// directory, if any.
func (e *CodeError) Error() string {
	pos, ok := e.Position()
	if !ok {
		return e.msg
	}
	return FormatPosition(pos) + ": " + e.msg
}

// Errorf formats a diagnostic at the range of poser. poser may be nil. The
// message supports the verbs of [Formatter.Sprintf].
//
// Errors cannot be arguments. A diagnostic is a message for users, so quote
// the cause with err.Error() instead.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: diagnostic cannot wrap an error")
		}
	}

	e := &CodeError{
		msg:  fmt.Sprintf(format, f.wrapPrintfArgs(args)...),
		fset: f.Fset,
	}
	if poser != nil {
		e.pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			e.end = ender.End()
		}
	}
	return e
}
