package zone

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenize marks input that could not be split into tokens.
	ErrTokenize = errors.New("zone: invalid input encoding")

	// ErrSyntax marks a row that matched none of the row shapes.
	ErrSyntax = errors.New("zone: syntax error")

	// ErrIncomplete marks a row that ended in the middle of a field.
	ErrIncomplete = errors.New("zone: incomplete row")

	// ErrResidual marks a row that parsed but left tokens unconsumed.
	ErrResidual = errors.New("zone: unexpected trailing input")
)

// TokenizeError reports the first byte that is not valid UTF-8.
type TokenizeError struct {
	Offset int
	Pos    Position
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%v at line %d, column %d (byte %d)", ErrTokenize, e.Pos.Line, e.Pos.Column, e.Offset)
}

func (e *TokenizeError) Unwrap() error { return ErrTokenize }

// TraceEntry is one step of a failure trace: either a literal that was
// expected at a position, or a grammar context the failure passed through.
type TraceEntry struct {
	index int

	Pos   Position
	Found string // text of the offending token; empty when AtEnd
	AtEnd bool

	Expected string // literal keyword or token class, e.g. "SOA" or "whitespace"
	Context  string // grammar context, e.g. "TTL" or "Resource Data"
	Err      error  // underlying conversion error, if any
}

// FailureTrace lists the entries of a failed parse, innermost first.
type FailureTrace []TraceEntry

// furthest is the token index of the innermost failure.
func (t FailureTrace) furthest() int {
	if len(t) == 0 {
		return -1
	}
	return t[0].index
}

// ParseError is returned by ParseRow for every grammar failure. Err is one
// of ErrSyntax, ErrIncomplete or ErrResidual.
type ParseError struct {
	Err   error
	Input string
	Trace FailureTrace
}

func (e *ParseError) Error() string {
	if len(e.Trace) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v:\n%s", e.Err, e.Diagnostic())
}

func (e *ParseError) Unwrap() error { return e.Err }

// Diagnostic renders the trace against the input.
func (e *ParseError) Diagnostic() string {
	return FormatTrace(e.Input, e.Trace)
}
