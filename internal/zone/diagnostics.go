package zone

import (
	"fmt"
	"strings"
)

// FormatTrace renders a failure trace as numbered blocks, one per entry:
//
//	0: at line 1:
//	foo 300 IN BOGUS 1.2.3.4
//	           ^
//	expected 'A, AAAA, NS, CNAME, PTR, MX, SOA', found "BOGUS"
//	no resource type recognized
//
// Context entries name the grammar rule instead of a literal. FormatTrace
// does not panic on entries without a position.
func FormatTrace(input string, trace FailureTrace) string {
	var b strings.Builder

	for i, e := range trace {
		switch {
		case input == "":
			if e.Expected != "" {
				fmt.Fprintf(&b, "%d: expected '%s', got empty input\n", i, e.Expected)
			} else {
				fmt.Fprintf(&b, "%d: in %s, got empty input\n", i, e.Context)
			}

		case e.Pos.Line <= 0:
			fmt.Fprintf(&b, "%d: at unknown position, %s\n", i, describe(e))

		case e.Expected != "":
			fmt.Fprintf(&b, "%d: at line %d:\n%s\n%s^\n", i, e.Pos.Line, e.Pos.LineText, caretPad(e.Pos))
			if e.AtEnd {
				fmt.Fprintf(&b, "expected '%s', got end of input\n", e.Expected)
			} else {
				fmt.Fprintf(&b, "expected '%s', found %q\n", e.Expected, e.Found)
			}

		default:
			fmt.Fprintf(&b, "%d: at line %d, in %s:\n%s\n%s^\n", i, e.Pos.Line, e.Context, e.Pos.LineText, caretPad(e.Pos))
		}

		if e.Err != nil {
			fmt.Fprintf(&b, "%v\n", e.Err)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func describe(e TraceEntry) string {
	if e.Expected != "" {
		return fmt.Sprintf("expected '%s'", e.Expected)
	}
	if e.Context != "" {
		return "in " + e.Context
	}
	return "unknown failure"
}

// caretPad returns the prefix that puts a caret under pos.Column. Tabs in
// the line are copied so the caret lines up however tabs are rendered.
func caretPad(pos Position) string {
	n := pos.Column - 1
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range pos.LineText {
		if n == 0 {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		n--
	}
	b.WriteString(strings.Repeat(" ", n))
	return b.String()
}
