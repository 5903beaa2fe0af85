package zone

import (
	"errors"
	"net/netip"
	"strconv"
	"time"

	"github.com/jroosing/hydrazone/internal/dns"
)

// cursor is an immutable position in a token sequence. Parsers return a new
// cursor on success and leave the caller's cursor untouched on failure, so
// backtracking is just reusing an old value.
type cursor struct {
	seq *Sequence
	i   int
}

func (c cursor) done() bool { return c.i >= len(c.seq.Tokens) }

func (c cursor) peek() (Token, bool) {
	if c.done() {
		return Token{}, false
	}
	return c.seq.Tokens[c.i], true
}

func (c cursor) next() cursor { return cursor{seq: c.seq, i: c.i + 1} }

// entry builds a trace entry located at c.
func (c cursor) entry() TraceEntry {
	if t, ok := c.peek(); ok {
		return TraceEntry{index: c.i, Pos: t.Pos, Found: t.Text}
	}
	return TraceEntry{index: c.i, Pos: c.seq.End, AtEnd: true}
}

// failure is a parse failure. A committed failure is not retried by the row
// grammar's remaining shapes. typed is set once a type keyword matched.
type failure struct {
	trace     FailureTrace
	typed     bool
	committed bool
}

// expect fails at c because the literal or token class want was not found.
func (c cursor) expect(want string) *failure {
	e := c.entry()
	e.Expected = want
	return &failure{trace: FailureTrace{e}}
}

// reject fails at c inside context ctx because converting the token failed.
func (c cursor) reject(ctx string, err error) *failure {
	e := c.entry()
	e.Context = ctx
	e.Err = err
	return &failure{trace: FailureTrace{e}}
}

// because attaches the conversion error behind the innermost entry.
func (f *failure) because(err error) *failure {
	f.trace[0].Err = err
	return f
}

// within records that the failure happened inside ctx, which began at c.
func (f *failure) within(c cursor, ctx string) *failure {
	e := c.entry()
	e.Context = ctx
	f.trace = append(f.trace, e)
	return f
}

type parser[T any] func(c cursor) (T, cursor, *failure)

// spaced runs p and then requires exactly one whitespace token.
func spaced[T any](p parser[T]) parser[T] {
	return func(c cursor) (T, cursor, *failure) {
		v, next, f := p(c)
		if f != nil {
			return v, c, f
		}
		_, after, f := space(next)
		if f != nil {
			var zero T
			return zero, c, f
		}
		return v, after, nil
	}
}

// within wraps p so its failures carry ctx.
func within[T any](ctx string, p parser[T]) parser[T] {
	return func(c cursor) (T, cursor, *failure) {
		v, next, f := p(c)
		if f != nil {
			return v, c, f.within(c, ctx)
		}
		return v, next, nil
	}
}

func space(c cursor) (struct{}, cursor, *failure) {
	if t, ok := c.peek(); ok && t.Kind == KindWhitespace {
		return struct{}{}, c.next(), nil
	}
	return struct{}{}, c, c.expect("whitespace")
}

// skipBlank consumes any run of whitespace and newline tokens.
func skipBlank(c cursor) cursor {
	for {
		t, ok := c.peek()
		if !ok || t.Kind == KindWord {
			return c
		}
		c = c.next()
	}
}

func word(c cursor) (string, cursor, *failure) {
	if t, ok := c.peek(); ok && t.Kind == KindWord {
		return t.Text, c.next(), nil
	}
	return "", c, c.expect("word")
}

func keyword(kw string) parser[string] {
	return func(c cursor) (string, cursor, *failure) {
		if t, ok := c.peek(); ok && t.Kind == KindWord && t.Text == kw {
			return t.Text, c.next(), nil
		}
		return "", c, c.expect(kw)
	}
}

// isDomain reports whether s may be a domain name.
// TODO: enforce label lengths and the LDH rule once escapes are decoded.
func isDomain(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return s != ""
}

var domainField = within[string]("Domain name", func(c cursor) (string, cursor, *failure) {
	s, next, f := word(c)
	if f != nil {
		return "", c, f
	}
	if !isDomain(s) {
		return "", c, c.expect("printable ASCII")
	}
	return s, next, nil
})

var classField = within[dns.RecordClass]("Class", spaced[dns.RecordClass](func(c cursor) (dns.RecordClass, cursor, *failure) {
	if t, ok := c.peek(); ok && t.Kind == KindWord {
		if cl, ok := dns.ParseClass(t.Text); ok {
			return cl, c.next(), nil
		}
	}
	return 0, c, c.expect("IN, CS, CH or HS")
}))

// unsigned parses a base-10 unsigned integer of the given bit width.
func unsigned[T uint16 | uint32](bits int) parser[T] {
	return within[T]("number", func(c cursor) (T, cursor, *failure) {
		s, next, f := word(c)
		if f != nil {
			return 0, c, f
		}
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return 0, c, c.expect("decimal integer").because(errors.Unwrap(err))
		}
		return T(n), next, nil
	})
}

var (
	uint16Field = unsigned[uint16](16)
	uint32Field = unsigned[uint32](32)
)

// duration reads whole seconds. Symbolic units such as "1d" are not accepted.
var duration = within[time.Duration]("Duration", func(c cursor) (time.Duration, cursor, *failure) {
	n, next, f := uint32Field(c)
	if f != nil {
		return 0, c, f
	}
	return time.Duration(n) * time.Second, next, nil
})

var ttlField = within[time.Duration]("TTL", spaced[time.Duration](duration))

var (
	errNotIPv4 = errors.New("not an IPv4 address")
	errNotIPv6 = errors.New("not an IPv6 address")
	errZoned   = errors.New("scoped address zones are not allowed")
)

func ipv4(c cursor) (netip.Addr, cursor, *failure) {
	s, next, f := word(c)
	if f != nil {
		return netip.Addr{}, c, f.within(c, "IPv4 address")
	}
	addr, err := netip.ParseAddr(s)
	if err == nil && !addr.Is4() {
		err = errNotIPv4
	}
	if err != nil {
		return netip.Addr{}, c, c.reject("IPv4 address", err)
	}
	return addr, next, nil
}

// https://datatracker.ietf.org/doc/html/rfc3596#section-2.4
func ipv6(c cursor) (netip.Addr, cursor, *failure) {
	s, next, f := word(c)
	if f != nil {
		return netip.Addr{}, c, f.within(c, "IPv6 address")
	}
	addr, err := netip.ParseAddr(s)
	switch {
	case err != nil:
	case addr.Is4():
		err = errNotIPv6
	case addr.Zone() != "":
		err = errZoned
	}
	if err != nil {
		return netip.Addr{}, c, c.reject("IPv6 address", err)
	}
	return addr, next, nil
}
