package zone

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"time"

	miekg "github.com/miekg/dns"

	"github.com/jroosing/hydrazone/internal/dns"
	"github.com/jroosing/hydrazone/internal/helpers"
	"github.com/jroosing/hydrazone/internal/pool"
)

var (
	// ErrNoOwner is returned by ToRR when neither the row nor the fallback names an owner.
	ErrNoOwner = errors.New("zone: row has no owner name")

	// ErrBadName is returned by ToRR when a name is not a valid presentation-format domain name.
	ErrBadName = errors.New("zone: invalid domain name")
)

// Fallback holds the values a zone file would supply for fields a row
// leaves out: the $ORIGIN, the previous owner, $TTL and the class.
type Fallback struct {
	Origin string
	Name   string
	TTL    time.Duration
	Class  dns.RecordClass // zero means IN
}

// ToRR builds the miekg/dns record for r. Relative names, including "@",
// are qualified against fb.Origin.
func (r Row) ToRR(fb Fallback) (miekg.RR, error) {
	if r.Resource == nil {
		return nil, fmt.Errorf("zone: row has no resource data")
	}

	owner := fb.Name
	if r.Name != nil {
		owner = *r.Name
	}
	if owner == "" {
		return nil, ErrNoOwner
	}
	name, err := qualify(owner, fb.Origin)
	if err != nil {
		return nil, err
	}

	ttl := fb.TTL
	if r.TTL != nil {
		ttl = *r.TTL
	}
	class := fb.Class
	if r.Class != nil {
		class = *r.Class
	}
	if class == 0 {
		class = dns.ClassIN
	}

	hdr := miekg.RR_Header{
		Name:   name,
		Rrtype: uint16(r.Resource.Type()),
		Class:  uint16(class),
		Ttl:    helpers.DurationSeconds(ttl),
	}

	switch res := r.Resource.(type) {
	case A:
		return &miekg.A{Hdr: hdr, A: net.IP(res.Addr.AsSlice())}, nil
	case AAAA:
		return &miekg.AAAA{Hdr: hdr, AAAA: net.IP(res.Addr.AsSlice())}, nil
	case NS:
		host, err := qualify(res.Host, fb.Origin)
		if err != nil {
			return nil, err
		}
		return &miekg.NS{Hdr: hdr, Ns: host}, nil
	case CNAME:
		target, err := qualify(res.Target, fb.Origin)
		if err != nil {
			return nil, err
		}
		return &miekg.CNAME{Hdr: hdr, Target: target}, nil
	case PTR:
		target, err := qualify(res.Target, fb.Origin)
		if err != nil {
			return nil, err
		}
		return &miekg.PTR{Hdr: hdr, Ptr: target}, nil
	case MX:
		exchange, err := qualify(res.Exchange, fb.Origin)
		if err != nil {
			return nil, err
		}
		return &miekg.MX{Hdr: hdr, Preference: res.Preference, Mx: exchange}, nil
	case SOA:
		mname, err := qualify(res.MName, fb.Origin)
		if err != nil {
			return nil, err
		}
		rname, err := qualify(res.RName, fb.Origin)
		if err != nil {
			return nil, err
		}
		return &miekg.SOA{
			Hdr:     hdr,
			Ns:      mname,
			Mbox:    rname,
			Serial:  res.Serial,
			Refresh: helpers.DurationSeconds(res.Refresh),
			Retry:   helpers.DurationSeconds(res.Retry),
			Expire:  helpers.DurationSeconds(res.Expire),
			Minttl:  helpers.DurationSeconds(res.Minimum),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", dns.ErrUnknownType, res)
	}
}

// PackRR returns the uncompressed wire form of rr.
func PackRR(rr miekg.RR) ([]byte, error) {
	buf := packBuffers.Get()
	defer packBuffers.Put(buf)

	off, err := miekg.PackRR(rr, *buf, 0, nil, false)
	if err != nil {
		return nil, fmt.Errorf("pack %s record: %w", miekg.TypeToString[rr.Header().Rrtype], err)
	}
	return bytes.Clone((*buf)[:off]), nil
}

var packBuffers = pool.NewBuffers(miekg.MaxMsgSize)

// qualify turns a master-file name into an absolute one.
func qualify(name, origin string) (string, error) {
	switch {
	case name == "@":
		if origin == "" {
			return "", fmt.Errorf("%w: %q needs an origin", ErrBadName, name)
		}
		name = miekg.Fqdn(origin)
	case miekg.IsFqdn(name):
	case origin == "" || origin == ".":
		name = miekg.Fqdn(name)
	default:
		name = name + "." + miekg.Fqdn(origin)
	}
	if _, ok := miekg.IsDomainName(name); !ok {
		return "", fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return name, nil
}
