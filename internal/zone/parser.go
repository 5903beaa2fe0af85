package zone

import (
	"context"
	"errors"
	"log/slog"
)

// Parser parses rows and reports what it did to a logger. The zero value
// is not usable; use NewParser. A Parser holds no per-row state and may be
// shared between goroutines.
type Parser struct {
	logger *slog.Logger
}

// NewParser returns a Parser that logs to logger. A nil logger discards.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{logger: logger}
}

var defaultParser = NewParser(nil)

// ParseRow parses one resource-record line with a parser that logs nothing.
func ParseRow(line string) (Row, error) {
	return defaultParser.ParseRow(line)
}

// ParseRow parses one resource-record line.
//
// On failure the error is a *TokenizeError or a *ParseError; use errors.Is
// with ErrTokenize, ErrSyntax, ErrIncomplete or ErrResidual to tell them apart.
func (p *Parser) ParseRow(line string) (Row, error) {
	seq, err := Tokenize(line)
	if err != nil {
		p.logger.Debug("row rejected", "reason", "tokenize", "err", err)
		return Row{}, err
	}

	if p.logger.Enabled(context.Background(), slog.LevelDebug) {
		p.logger.Debug("tokenized row", "tokens", seq.Len(), "dump", seq.Dump())
	}

	row, idx, err := parseRow(&seq)
	if err != nil {
		attrs := []any{"err_kind", KindOf(err)}
		var pe *ParseError
		if errors.As(err, &pe) && len(pe.Trace) > 0 {
			attrs = append(attrs, "line", pe.Trace[0].Pos.Line, "column", pe.Trace[0].Pos.Column)
		}
		if idx >= 0 {
			attrs = append(attrs, "shape", idx+1)
		}
		p.logger.Debug("row rejected", attrs...)
		return Row{}, err
	}

	p.logger.Debug("row parsed", "shape", idx+1, "type", row.Resource.Type().String())
	return row, nil
}

// KindOf names the error class of a ParseRow error: "tokenize", "syntax",
// "incomplete", "residual", or "" for anything else.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrTokenize):
		return "tokenize"
	case errors.Is(err, ErrIncomplete):
		return "incomplete"
	case errors.Is(err, ErrResidual):
		return "residual"
	case errors.Is(err, ErrSyntax):
		return "syntax"
	default:
		return ""
	}
}
