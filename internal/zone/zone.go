// Package zone parses single resource-record lines of an RFC 1035 master
// file into rows.
//
// A row has the form
//
//	[<domain-name>] [<TTL>] [<class>] <type> <RDATA>
//	[<domain-name>] [<class>] [<TTL>] <type> <RDATA>
//
// where every leading field is optional. A bare word may be the owner name
// or the type keyword, so the row grammar tries a fixed list of shapes in
// priority order and backtracks between them (see row.go).
//
// Directives ($ORIGIN, $TTL, $INCLUDE), parenthesised continuations and
// inheriting name/TTL/class from a previous row are left to the caller;
// that is why every Row field except Resource is optional.
//
// See https://datatracker.ietf.org/doc/html/rfc1035#section-5
package zone

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jroosing/hydrazone/internal/dns"
	"github.com/jroosing/hydrazone/internal/helpers"
)

// Row is one parsed resource-record line. Name, TTL and Class are nil when
// the line omitted them.
type Row struct {
	Name     *string
	TTL      *time.Duration
	Class    *dns.RecordClass
	Resource Resource
}

// String renders the row in master-file syntax, skipping absent fields.
func (r Row) String() string {
	parts := make([]string, 0, 5)
	if r.Name != nil {
		parts = append(parts, *r.Name)
	}
	if r.TTL != nil {
		parts = append(parts, fmt.Sprintf("%d", int64(r.TTL.Seconds())))
	}
	if r.Class != nil {
		parts = append(parts, r.Class.String())
	}
	if r.Resource != nil {
		parts = append(parts, r.Resource.Type().String(), r.Resource.String())
	}
	return strings.Join(parts, " ")
}

// Resource is the typed RDATA of a row. The set of implementations is closed.
type Resource interface {
	Type() dns.RecordType
	// String renders the RDATA in master-file syntax.
	String() string
	resource()
}

// A is an IPv4 host address.
type A struct {
	Addr netip.Addr
}

// AAAA is an IPv6 host address.
type AAAA struct {
	Addr netip.Addr
}

// NS names an authoritative name server.
type NS struct {
	Host string
}

// CNAME names the canonical name of an alias.
type CNAME struct {
	Target string
}

// PTR points at another domain name.
type PTR struct {
	Target string
}

// MX names a mail exchange and its preference.
type MX struct {
	Preference uint16
	Exchange   string
}

// SOA marks the start of a zone of authority.
// RName is kept verbatim (it may contain escaped dots such as Action\.domains).
type SOA struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh time.Duration
	Retry   time.Duration
	Expire  time.Duration
	Minimum time.Duration
}

func (A) Type() dns.RecordType     { return dns.TypeA }
func (AAAA) Type() dns.RecordType  { return dns.TypeAAAA }
func (NS) Type() dns.RecordType    { return dns.TypeNS }
func (CNAME) Type() dns.RecordType { return dns.TypeCNAME }
func (PTR) Type() dns.RecordType   { return dns.TypePTR }
func (MX) Type() dns.RecordType    { return dns.TypeMX }
func (SOA) Type() dns.RecordType   { return dns.TypeSOA }

func (r A) String() string     { return r.Addr.String() }
func (r AAAA) String() string  { return r.Addr.String() }
func (r NS) String() string    { return r.Host }
func (r CNAME) String() string { return r.Target }
func (r PTR) String() string   { return r.Target }
func (r MX) String() string    { return fmt.Sprintf("%d %s", r.Preference, r.Exchange) }

func (r SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d", r.MName, r.RName, r.Serial,
		helpers.DurationSeconds(r.Refresh), helpers.DurationSeconds(r.Retry),
		helpers.DurationSeconds(r.Expire), helpers.DurationSeconds(r.Minimum))
}

func (A) resource()     {}
func (AAAA) resource()  {}
func (NS) resource()    {}
func (CNAME) resource() {}
func (PTR) resource()   {}
func (MX) resource()    {}
func (SOA) resource()   {}

// DiscoverZoneFiles returns the sorted regular files in dir.
func DiscoverZoneFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
