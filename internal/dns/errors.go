// Package dns holds the DNS vocabulary shared by the zone parser and its callers.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (types, classes, master files)
//   - RFC 3596: DNS Extensions to Support IPv6 (AAAA records)
//
// Error Handling:
//
// All errors are wrapped with context using fmt.Errorf("...: %w", err).
// This preserves error chains while adding operational context.
package dns

import "errors"

var (
	// ErrUnknownType is returned when a type code has no master-file keyword.
	ErrUnknownType = errors.New("unknown record type")

	// ErrUnknownClass is returned when a class keyword or code is not supported.
	ErrUnknownClass = errors.New("unknown record class")
)
