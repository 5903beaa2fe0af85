package zone

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind uint8

const (
	KindWord       Kind = iota // maximal run of non-blank, non-delimiter characters
	KindWhitespace             // run of spaces and tabs
	KindNewline                // "\n" or "\r\n"
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "Word"
	case KindWhitespace:
		return "Whitespace"
	case KindNewline:
		return "Newline"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Position locates a token in the source. Column is a 1-based rune column
// and LineText is the whole line the token sits on, without its terminator.
type Position struct {
	Line     int
	Column   int
	LineText string
}

// Token is a classified slice of the input. Text shares memory with the input.
type Token struct {
	Kind   Kind
	Text   string
	Offset int // byte offset into the input
	Pos    Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Pos.Line, t.Pos.Column)
}

// Sequence is the tokenized input. End is the position just past the last
// token and is used to report failures at end of input.
type Sequence struct {
	Tokens []Token
	End    Position
}

// Len returns the number of tokens.
func (s Sequence) Len() int { return len(s.Tokens) }

// At returns the i-th token.
func (s Sequence) At(i int) Token { return s.Tokens[i] }

// Slice returns the tokens in [i, j). End is kept so failures in the slice
// still point at the end of the original input.
func (s Sequence) Slice(i, j int) Sequence {
	return Sequence{Tokens: s.Tokens[i:j], End: s.End}
}

// String concatenates the token texts. For a sequence returned by Tokenize
// this reproduces the input exactly.
func (s Sequence) String() string {
	var b strings.Builder
	for _, t := range s.Tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Dump renders one token per line, for debug logging.
func (s Sequence) Dump() string {
	var b strings.Builder
	for i, t := range s.Tokens {
		fmt.Fprintf(&b, "%3d %s\n", i, t)
	}
	return b.String()
}

// Tokenize splits input into words, whitespace runs and newlines. It never
// drops characters; the only failure is input that is not valid UTF-8.
func Tokenize(input string) (Sequence, error) {
	var (
		toks []Token
		line = 1
		col  = 1
	)

	lineText := func(start int) string {
		end := strings.IndexByte(input[start:], '\n')
		if end < 0 {
			return input[start:]
		}
		return strings.TrimSuffix(input[start:start+end], "\r")
	}
	current := lineText(0)

	i := 0
	for i < len(input) {
		start := i
		pos := Position{Line: line, Column: col, LineText: current}

		switch c := input[i]; {
		case c == ' ' || c == '\t':
			for i < len(input) && (input[i] == ' ' || input[i] == '\t') {
				i++
			}
			toks = append(toks, Token{Kind: KindWhitespace, Text: input[start:i], Offset: start, Pos: pos})
			col += i - start

		case c == '\n' || (c == '\r' && i+1 < len(input) && input[i+1] == '\n'):
			if c == '\r' {
				i++
			}
			i++
			toks = append(toks, Token{Kind: KindNewline, Text: input[start:i], Offset: start, Pos: pos})
			line++
			col = 1
			current = lineText(i)

		default:
			for i < len(input) && !isDelimiter(input, i) {
				r, size := utf8.DecodeRuneInString(input[i:])
				if r == utf8.RuneError && size <= 1 {
					return Sequence{}, &TokenizeError{
						Offset: i,
						Pos:    Position{Line: line, Column: col + utf8.RuneCountInString(input[start:i]), LineText: current},
					}
				}
				i += size
			}
			toks = append(toks, Token{Kind: KindWord, Text: input[start:i], Offset: start, Pos: pos})
			col += utf8.RuneCountInString(input[start:i])
		}
	}

	return Sequence{
		Tokens: toks,
		End:    Position{Line: line, Column: col, LineText: current},
	}, nil
}

func isDelimiter(input string, i int) bool {
	switch input[i] {
	case ' ', '\t', '\n':
		return true
	case '\r':
		return i+1 < len(input) && input[i+1] == '\n'
	}
	return false
}
