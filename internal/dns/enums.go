// Package dns holds the DNS vocabulary shared by the zone parser and its
// callers: resource record types and classes (RFC 1035, RFC 3596) and their
// master-file keywords.
package dns

import "strconv"

// RecordType represents DNS resource record types (RFC 1035, RFC 3596).
type RecordType uint16

const (
	TypeA     RecordType = 1  // IPv4 address
	TypeNS    RecordType = 2  // Authoritative name server
	TypeCNAME RecordType = 5  // Canonical name (alias)
	TypeSOA   RecordType = 6  // Start of Authority
	TypePTR   RecordType = 12 // Domain name pointer (reverse DNS)
	TypeMX    RecordType = 15 // Mail exchange
	TypeAAAA  RecordType = 28 // IPv6 address (RFC 3596)
)

// RecordTypes lists the supported types in the order the resource data
// grammar tries their keywords.
var RecordTypes = []RecordType{TypeA, TypeAAAA, TypeNS, TypeCNAME, TypePTR, TypeMX, TypeSOA}

var typeNames = map[RecordType]string{
	TypeA:     "A",
	TypeNS:    "NS",
	TypeCNAME: "CNAME",
	TypeSOA:   "SOA",
	TypePTR:   "PTR",
	TypeMX:    "MX",
	TypeAAAA:  "AAAA",
}

var typeByName = map[string]RecordType{
	"A":     TypeA,
	"NS":    TypeNS,
	"CNAME": TypeCNAME,
	"SOA":   TypeSOA,
	"PTR":   TypePTR,
	"MX":    TypeMX,
	"AAAA":  TypeAAAA,
}

// String returns the master-file keyword, or TYPEnnn for unknown codes.
func (t RecordType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "TYPE" + strconv.Itoa(int(t))
}

// ParseRecordType maps a master-file keyword to its type.
// Matching is exact: "aaaa" is not a keyword.
func ParseRecordType(s string) (RecordType, bool) {
	t, ok := typeByName[s]
	return t, ok
}

// RecordClass represents DNS resource record classes (RFC 1035 Section 3.2.4).
type RecordClass uint16

const (
	ClassIN RecordClass = 1 // Internet
	ClassCS RecordClass = 2 // CSNET (obsolete)
	ClassCH RecordClass = 3 // CHAOS
	ClassHS RecordClass = 4 // Hesiod
)

var classNames = map[RecordClass]string{
	ClassIN: "IN",
	ClassCS: "CS",
	ClassCH: "CH",
	ClassHS: "HS",
}

var classByName = map[string]RecordClass{
	"IN": ClassIN,
	"CS": ClassCS,
	"CH": ClassCH,
	"HS": ClassHS,
}

// String returns the master-file keyword, or CLASSnnn for unknown codes.
func (c RecordClass) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "CLASS" + strconv.Itoa(int(c))
}

// ParseClass maps a master-file class keyword to its class. Exact match only.
func ParseClass(s string) (RecordClass, bool) {
	c, ok := classByName[s]
	return c, ok
}
