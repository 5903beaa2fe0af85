package zone

import (
	"time"

	"github.com/jroosing/hydrazone/internal/dns"
)

// fields says which of TTL and class a shape expects after the owner name.
type fields uint8

const (
	noFields fields = iota
	ttlOnly
	classOnly
	ttlAndClass // either order
)

// shape is one way of reading the leading fields of a row.
//
// commit is set where the prefix can only have come from this shape, so an
// RDATA failure after a matched type keyword is reported as is instead of
// letting a later shape produce a misleading error further left. A word that
// is not a type keyword still falls through: in "MX 20 VAXA" shape 2 reads
// "MX" as the owner and 20 as the TTL before shape 8 gets its turn.
type shape struct {
	name   bool
	fields fields
	commit bool
}

// shapes in priority order. The table is what resolves the ambiguity: for
//
//	<blank>   A   1.2.3.4
//
// shape 4 takes "A" as the owner name, fails on "1.2.3.4" as a type, and
// shape 8 then reads "A" as the type.
var shapes = [...]shape{
	{name: true, fields: ttlAndClass, commit: true},
	{name: true, fields: ttlOnly, commit: true},
	{name: true, fields: classOnly},
	{name: true, fields: noFields},
	{name: false, fields: ttlAndClass},
	{name: false, fields: ttlOnly, commit: true},
	{name: false, fields: classOnly},
	{name: false, fields: noFields},
}

func (s shape) parse(c cursor) (Row, cursor, *failure) {
	var (
		row   Row
		start = c
	)

	if s.name {
		name, next, f := spaced[string](domainField)(c)
		if f != nil {
			return Row{}, start, f
		}
		row.Name = &name
		c = next
	}

	switch s.fields {
	case ttlOnly:
		ttl, next, f := ttlField(c)
		if f != nil {
			return Row{}, start, f
		}
		row.TTL = &ttl
		c = next
	case classOnly:
		class, next, f := classField(c)
		if f != nil {
			return Row{}, start, f
		}
		row.Class = &class
		c = next
	case ttlAndClass:
		ttl, class, next, f := ttlClassPermutation(c)
		if f != nil {
			return Row{}, start, f
		}
		row.TTL, row.Class = &ttl, &class
		c = next
	}

	res, next, f := rdata(c)
	if f != nil {
		f.committed = s.commit && f.typed
		return Row{}, start, f
	}
	row.Resource = res
	return row, next, nil
}

// ttlClassPermutation reads a TTL and a class in either order. Both are required.
func ttlClassPermutation(c cursor) (time.Duration, dns.RecordClass, cursor, *failure) {
	ttl, next, ttlErr := ttlField(c)
	if ttlErr == nil {
		class, after, f := classField(next)
		if f != nil {
			return 0, 0, c, f
		}
		return ttl, class, after, nil
	}

	class, next, classErr := classField(c)
	if classErr == nil {
		ttl, after, f := ttlField(next)
		if f != nil {
			return 0, 0, c, f
		}
		return ttl, class, after, nil
	}

	return 0, 0, c, classErr
}

// parseRow runs the shapes over seq. It returns the row and the index of
// the shape that produced it, or the failure to report.
func parseRow(seq *Sequence) (Row, int, error) {
	c := skipBlank(cursor{seq: seq})

	var best *failure
	for i, s := range shapes {
		row, next, f := s.parse(c)
		if f == nil {
			if rest := skipBlank(next); !rest.done() {
				residual := rest.expect("end of row")
				return Row{}, i, newParseError(ErrResidual, seq, residual.trace)
			}
			return row, i, nil
		}
		if f.committed {
			return Row{}, i, classify(seq, f)
		}
		if best == nil || f.trace.furthest() >= best.trace.furthest() {
			best = f
		}
	}
	return Row{}, -1, classify(seq, best)
}

// classify tells a row that ran out of tokens apart from one that had the
// wrong token.
func classify(seq *Sequence, f *failure) error {
	if len(f.trace) > 0 && f.trace[0].AtEnd {
		return newParseError(ErrIncomplete, seq, f.trace)
	}
	return newParseError(ErrSyntax, seq, f.trace)
}

func newParseError(kind error, seq *Sequence, trace FailureTrace) *ParseError {
	return &ParseError{Err: kind, Input: seq.String(), Trace: trace}
}
