package zone

import (
	"errors"
	"strings"
	"time"

	"github.com/jroosing/hydrazone/internal/dns"
)

var errNoResourceType = errors.New("no resource type recognized")

// rdataGrammar parses the body that follows a type keyword and its whitespace.
type rdataGrammar func(c cursor) (Resource, cursor, *failure)

var rdataGrammars = map[dns.RecordType]rdataGrammar{
	dns.TypeA: func(c cursor) (Resource, cursor, *failure) {
		addr, next, f := ipv4(c)
		if f != nil {
			return nil, c, f
		}
		return A{Addr: addr}, next, nil
	},
	dns.TypeAAAA: func(c cursor) (Resource, cursor, *failure) {
		addr, next, f := ipv6(c)
		if f != nil {
			return nil, c, f
		}
		return AAAA{Addr: addr}, next, nil
	},
	dns.TypeNS: func(c cursor) (Resource, cursor, *failure) {
		host, next, f := domainField(c)
		if f != nil {
			return nil, c, f
		}
		return NS{Host: host}, next, nil
	},
	dns.TypeCNAME: func(c cursor) (Resource, cursor, *failure) {
		target, next, f := domainField(c)
		if f != nil {
			return nil, c, f
		}
		return CNAME{Target: target}, next, nil
	},
	dns.TypePTR: func(c cursor) (Resource, cursor, *failure) {
		target, next, f := domainField(c)
		if f != nil {
			return nil, c, f
		}
		return PTR{Target: target}, next, nil
	},
	dns.TypeMX:  mxData,
	dns.TypeSOA: soaData,
}

var typeKeywords = func() string {
	names := make([]string, len(dns.RecordTypes))
	for i, t := range dns.RecordTypes {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}()

// rdata matches the type keyword and parses that type's fields. Once a
// keyword matched no other type is tried; the failure comes from the body.
func rdata(c cursor) (Resource, cursor, *failure) {
	for _, typ := range dns.RecordTypes {
		_, next, f := keyword(typ.String())(c)
		if f != nil {
			continue
		}
		res, after, f := rdataBody(typ, next)
		if f != nil {
			f.typed = true
			return nil, c, f.within(c, "Resource Data")
		}
		return res, after, nil
	}
	return nil, c, c.expect(typeKeywords).because(errNoResourceType).within(c, "Resource Data")
}

func rdataBody(typ dns.RecordType, c cursor) (Resource, cursor, *failure) {
	_, next, f := space(c)
	if f != nil {
		return nil, c, f
	}
	return rdataGrammars[typ](next)
}

func mxData(c cursor) (Resource, cursor, *failure) {
	pref, next, f := spaced[uint16](uint16Field)(c)
	if f != nil {
		return nil, c, f
	}
	exchange, next, f := domainField(next)
	if f != nil {
		return nil, c, f
	}
	return MX{Preference: pref, Exchange: exchange}, next, nil
}

// soaData reads MNAME RNAME SERIAL REFRESH RETRY EXPIRE MINIMUM. RNAME is
// taken as plain text since it is a mailbox with escaped dots.
func soaData(c cursor) (Resource, cursor, *failure) {
	var (
		soa  SOA
		next = c
		f    *failure
	)
	if soa.MName, next, f = spaced[string](domainField)(next); f != nil {
		return nil, c, f
	}
	if soa.RName, next, f = spaced[string](within[string]("Mailbox", word))(next); f != nil {
		return nil, c, f
	}
	if soa.Serial, next, f = spaced[uint32](within[uint32]("Serial", uint32Field))(next); f != nil {
		return nil, c, f
	}
	timers := []struct {
		ctx string
		dst *time.Duration
	}{
		{"Refresh", &soa.Refresh},
		{"Retry", &soa.Retry},
		{"Expire", &soa.Expire},
		{"Minimum", &soa.Minimum},
	}
	for i, t := range timers {
		p := within[time.Duration](t.ctx, duration)
		if i < len(timers)-1 {
			p = spaced[time.Duration](p)
		}
		if *t.dst, next, f = p(next); f != nil {
			return nil, c, f
		}
	}
	return soa, next, nil
}
