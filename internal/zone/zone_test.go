package zone_test

import (
	"net/netip"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jroosing/hydrazone/internal/dns"
	"github.com/jroosing/hydrazone/internal/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func row(name *string, ttl *time.Duration, class *dns.RecordClass, res zone.Resource) zone.Row {
	return zone.Row{Name: name, TTL: ttl, Class: class, Resource: res}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		input string
		want  zone.Row
	}{
		{
			"A       A       26.3.0.103",
			row(ptr("A"), nil, nil, zone.A{Addr: netip.MustParseAddr("26.3.0.103")}),
		},
		{
			"VENERA  A       10.1.0.52",
			row(ptr("VENERA"), nil, nil, zone.A{Addr: netip.MustParseAddr("10.1.0.52")}),
		},
		{
			"        A       128.9.0.32",
			row(nil, nil, nil, zone.A{Addr: netip.MustParseAddr("128.9.0.32")}),
		},
		{
			"        NS      VAXA",
			row(nil, nil, nil, zone.NS{Host: "VAXA"}),
		},
		{
			"        MX      20      VAXA",
			row(nil, nil, nil, zone.MX{Preference: 20, Exchange: "VAXA"}),
		},
		{
			"        AAAA    2400:cb00:2049:1::a29f:1804",
			row(nil, nil, nil, zone.AAAA{Addr: netip.MustParseAddr("2400:cb00:2049:1::a29f:1804")}),
		},
		{
			"www     IN      CNAME   example.com.",
			row(ptr("www"), nil, ptr(dns.ClassIN), zone.CNAME{Target: "example.com."}),
		},
		{
			"1.2.0.192.in-addr.arpa. 300 PTR host.example.com.",
			row(ptr("1.2.0.192.in-addr.arpa."), ptr(300*time.Second), nil, zone.PTR{Target: "host.example.com."}),
		},
		{
			"example.com.  3600 CH  NS    ns.example.com.",
			row(ptr("example.com."), ptr(time.Hour), ptr(dns.ClassCH), zone.NS{Host: "ns.example.com."}),
		},
		{
			"@   IN  SOA     VENERA      Action\\.domains 20 7200 600 3600000 60",
			row(ptr("@"), nil, ptr(dns.ClassIN), zone.SOA{
				MName:   "VENERA",
				RName:   "Action\\.domains",
				Serial:  20,
				Refresh: 7200 * time.Second,
				Retry:   600 * time.Second,
				Expire:  3600000 * time.Second,
				Minimum: 60 * time.Second,
			}),
		},
		{
			"mail 60 HS MX 10 mail.example.com.",
			row(ptr("mail"), ptr(time.Minute), ptr(dns.ClassHS), zone.MX{Preference: 10, Exchange: "mail.example.com."}),
		},
		{
			// "A" is the NS target here, not a type keyword.
			"        NS      A",
			row(nil, nil, nil, zone.NS{Host: "A"}),
		},
		{
			"host A 192.0.2.1   \n",
			row(ptr("host"), nil, nil, zone.A{Addr: netip.MustParseAddr("192.0.2.1")}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := zone.ParseRow(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRowIdempotent(t *testing.T) {
	const line = "example.com. 300 IN MX 10 mail.example.com."
	first, err := zone.ParseRow(line)
	require.NoError(t, err)
	second, err := zone.ParseRow(line)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseRowTTLClassOrder(t *testing.T) {
	pairs := [][2]string{
		{"foo 300 IN A 192.0.2.1", "foo IN 300 A 192.0.2.1"},
		{"ns 86400 CS NS ns1.example.", "ns CS 86400 NS ns1.example."},
		{"@ 0 IN SOA a b 1 2 3 4 5", "@ IN 0 SOA a b 1 2 3 4 5"},
	}

	for _, p := range pairs {
		t.Run(p[0], func(t *testing.T) {
			a, err := zone.ParseRow(p[0])
			require.NoError(t, err)
			b, err := zone.ParseRow(p[1])
			require.NoError(t, err)
			assert.Equal(t, a, b)
			require.NotNil(t, a.TTL)
			require.NotNil(t, a.Class)
		})
	}
}

func TestParseRowResidualInput(t *testing.T) {
	lines := []string{
		"foo 300 IN A 192.0.2.1",
		"        NS      VAXA",
		"        MX      20      VAXA",
		"@ IN SOA a b 1 2 3 4 5",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := zone.ParseRow(line)
			require.NoError(t, err)

			_, err = zone.ParseRow(line + " junk")
			require.Error(t, err)
			assert.ErrorIs(t, err, zone.ErrResidual)

			var pe *zone.ParseError
			require.ErrorAs(t, err, &pe)
			require.NotEmpty(t, pe.Trace)
			assert.Equal(t, "junk", pe.Trace[0].Found)
		})
	}
}

func TestParseRowUnknownType(t *testing.T) {
	tests := []struct {
		input  string
		column int
	}{
		{"foo BOGUS 192.0.2.1", 5},
		{"foo 300 IN BOGUS 192.0.2.1", 12},
		{"foo a 192.0.2.1", 5}, // keywords are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := zone.ParseRow(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, zone.ErrSyntax)

			var pe *zone.ParseError
			require.ErrorAs(t, err, &pe)
			require.Len(t, pe.Trace, 2)

			outer := pe.Trace[1]
			assert.Equal(t, "Resource Data", outer.Context)
			assert.Equal(t, tt.column, outer.Pos.Column)
			assert.Equal(t, tt.column, pe.Trace[0].Pos.Column)
			assert.Contains(t, pe.Diagnostic(), "no resource type recognized")
		})
	}
}

func TestParseRowCommittedShapes(t *testing.T) {
	t.Run("name ttl class", func(t *testing.T) {
		_, err := zone.ParseRow("foo 300 IN A 999.1.1.1")
		require.Error(t, err)
		assert.ErrorIs(t, err, zone.ErrSyntax)

		var pe *zone.ParseError
		require.ErrorAs(t, err, &pe)
		require.Len(t, pe.Trace, 2)
		assert.Equal(t, "IPv4 address", pe.Trace[0].Context)
		assert.Equal(t, "999.1.1.1", pe.Trace[0].Found)
		assert.Error(t, pe.Trace[0].Err)
		assert.Equal(t, "Resource Data", pe.Trace[1].Context)
		assert.Equal(t, "A", pe.Trace[1].Found)
	})

	t.Run("name ttl", func(t *testing.T) {
		_, err := zone.ParseRow("foo 300 AAAA 192.0.2.1")
		require.Error(t, err)

		var pe *zone.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "IPv6 address", pe.Trace[0].Context)
		assert.Equal(t, 14, pe.Trace[0].Pos.Column)
	})
}

func TestParseRowIncomplete(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"foo",
		"foo A",
		"foo 300 IN MX 10",
		"@ IN SOA a b 1 2 3 4",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := zone.ParseRow(line)
			require.Error(t, err)
			assert.ErrorIs(t, err, zone.ErrIncomplete)
			assert.Equal(t, "incomplete", zone.KindOf(err))

			var pe *zone.ParseError
			require.ErrorAs(t, err, &pe)
			require.NotEmpty(t, pe.Trace)
			assert.True(t, pe.Trace[0].AtEnd)
		})
	}
}

func TestParseRowEmptyInputDiagnostic(t *testing.T) {
	_, err := zone.ParseRow("")
	require.Error(t, err)

	var pe *zone.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Diagnostic(), "got empty input")
	assert.NotContains(t, pe.Diagnostic(), "at line")
}

func TestParseRowFieldErrors(t *testing.T) {
	t.Run("preference out of range", func(t *testing.T) {
		_, err := zone.ParseRow("foo MX 70000 mail")
		require.Error(t, err)

		var pe *zone.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "decimal integer", pe.Trace[0].Expected)
		assert.ErrorIs(t, pe.Trace[0].Err, strconv.ErrRange)
	})

	t.Run("symbolic ttl", func(t *testing.T) {
		_, err := zone.ParseRow("foo 1d IN A 192.0.2.1")
		require.Error(t, err)
	})

	t.Run("ipv6 in A", func(t *testing.T) {
		_, err := zone.ParseRow("foo A 2001:db8::1")
		require.Error(t, err)
	})

	t.Run("zoned ipv6", func(t *testing.T) {
		_, err := zone.ParseRow("foo AAAA fe80::1%eth0")
		require.Error(t, err)
	})

	t.Run("non-ascii target", func(t *testing.T) {
		_, err := zone.ParseRow("foo CNAME bücher.example.")
		require.Error(t, err)
	})

	t.Run("invalid encoding", func(t *testing.T) {
		_, err := zone.ParseRow("foo A \xff")
		assert.ErrorIs(t, err, zone.ErrTokenize)
		assert.Equal(t, "tokenize", zone.KindOf(err))
	})
}

func TestRowString(t *testing.T) {
	a, err := zone.ParseRow("foo IN 300 MX 10 mail")
	require.NoError(t, err)
	assert.Equal(t, "foo 300 IN MX 10 mail", a.String())

	b, err := zone.ParseRow("        NS      VAXA")
	require.NoError(t, err)
	assert.Equal(t, "NS VAXA", b.String())
}

func TestDiscoverZoneFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.zone"), []byte("test"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.zone"), []byte("test"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := zone.DiscoverZoneFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.zone"), filepath.Join(dir, "b.zone")}, files)
}

func TestDiscoverZoneFilesNonexistentDir(t *testing.T) {
	files, err := zone.DiscoverZoneFiles("/nonexistent/directory")
	assert.Error(t, err)
	assert.Empty(t, files)
}
