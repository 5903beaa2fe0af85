// Command zonecheck parses master-file resource-record lines and reports
// every line that does not parse.
//
// Usage:
//
//	zonecheck [flags] [file-or-dir ...]
//
// With no arguments lines are read from stdin. Blank lines, ';' comments
// and '$' directives are not parsed, but $ORIGIN and $TTL update the
// values used by -rr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jroosing/hydrazone/internal/database"
	"github.com/jroosing/hydrazone/internal/logging"
	"github.com/jroosing/hydrazone/internal/zone"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type checker struct {
	parser *zone.Parser
	db     *database.DB
	out    io.Writer
	showRR bool
	quiet  bool

	fb     zone.Fallback
	failed int
	total  int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zonecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		showRR = fs.Bool("rr", false, "Also print each row as a fully qualified record")
		origin = fs.String("origin", "", "Origin for relative names when printing records")
		dbPath = fs.String("db", "", "Record every check in this SQLite journal")
		quiet  = fs.Bool("q", false, "Only print failures")
		debug  = fs.Bool("debug", false, "Enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := "WARN"
	if *debug {
		level = "DEBUG"
	}
	logger := logging.Configure(logging.Config{Level: level, Output: stderr})

	c := &checker{
		parser: zone.NewParser(logger),
		out:    stdout,
		showRR: *showRR,
		quiet:  *quiet,
		fb:     zone.Fallback{Origin: *origin, TTL: time.Hour},
	}

	if *dbPath != "" {
		db, err := database.Open(*dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "failed to open journal: %v\n", err)
			return 1
		}
		defer db.Close()
		c.db = db
	}

	if fs.NArg() == 0 {
		if err := c.check("-", stdin); err != nil {
			fmt.Fprintf(stderr, "read stdin: %v\n", err)
			return 1
		}
	}
	for _, arg := range fs.Args() {
		files, err := inputFiles(arg)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		for _, path := range files {
			if err := c.checkFile(path); err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return 1
			}
		}
	}

	if !c.quiet {
		fmt.Fprintf(stdout, "%d rows, %d failed\n", c.total, c.failed)
	}
	if c.failed > 0 {
		return 1
	}
	return 0
}

// inputFiles expands a directory argument into its files.
func inputFiles(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	return zone.DiscoverZoneFiles(arg)
}

func (c *checker) checkFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Each file starts a new owner chain.
	c.fb.Name = ""
	if err := c.check(path, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func (c *checker) check(name string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, ";"):
			continue
		case strings.HasPrefix(trimmed, "$"):
			c.directive(trimmed)
			continue
		}

		c.total++
		row, err := c.parser.ParseRow(line)
		c.journal(line, row, err)
		if err != nil {
			c.failed++
			fmt.Fprintf(c.out, "%s:%d: %s\n", name, lineNo, describe(err))
			continue
		}
		if row.Name != nil {
			c.fb.Name = *row.Name
		}
		if c.quiet {
			continue
		}

		fmt.Fprintf(c.out, "%s:%d: %s\n", name, lineNo, row)
		if c.showRR {
			rr, err := row.ToRR(c.fb)
			if err != nil {
				fmt.Fprintf(c.out, "\t! %v\n", err)
			} else {
				fmt.Fprintf(c.out, "\t%s\n", rr)
			}
		}
	}
	return sc.Err()
}

// directive applies $ORIGIN and $TTL. Other directives are ignored.
func (c *checker) directive(line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	switch strings.ToUpper(fields[0]) {
	case "$ORIGIN":
		c.fb.Origin = fields[1]
	case "$TTL":
		if n, err := strconv.ParseUint(fields[1], 10, 32); err == nil {
			c.fb.TTL = time.Duration(n) * time.Second
		}
	}
}

func (c *checker) journal(line string, row zone.Row, err error) {
	if c.db == nil {
		return
	}
	if _, jerr := c.db.RecordCheck(database.NewCheck(line, "cli", row, err)); jerr != nil {
		fmt.Fprintf(c.out, "journal: %v\n", jerr)
	}
}

func describe(err error) string {
	var pe *zone.ParseError
	if errors.As(err, &pe) {
		return fmt.Sprintf("%s error\n%s", zone.KindOf(err), pe.Diagnostic())
	}
	return err.Error()
}
