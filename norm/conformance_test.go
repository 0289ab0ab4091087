package norm_test

import (
	"bufio"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	oraclenorm "golang.org/x/text/unicode/norm"

	"github.com/gpawru/decompose/norm"
)

func relTestdata(file string) string {
	_, filename, _, _ := runtime.Caller(0)
	return path.Join(path.Dir(filename), "testdata", file)
}

// parseCodepoints turns a space-separated list of hex code points (as used
// by NormalizationTest.txt) into a string.
func parseCodepoints(t *testing.T, field string) string {
	field = strings.TrimSpace(field)
	var b strings.Builder
	for _, tok := range strings.Fields(field) {
		v, err := strconv.ParseUint(tok, 16, 32)
		if err != nil {
			t.Fatalf("bad code point %q: %v", tok, err)
		}
		b.WriteRune(rune(v))
	}
	return b.String()
}

// TestConformanceFixture checks this module's NFD/NFKD against a curated
// fixture shaped like Unicode's own NormalizationTest.txt, and cross-checks
// the same inputs against golang.org/x/text/unicode/norm as an independent
// oracle, for every code point the fixture restricts itself to.
func TestConformanceFixture(t *testing.T) {
	path := relTestdata("NormalizationTest.txt")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		t.Skip("missing conformance fixture")
	}
	assert.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	checked := 0

	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '@' {
			continue
		}
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		fields := strings.Split(line, ";")
		if len(fields) < 5 {
			t.Fatalf("line %d: expected 5 fields, got %d", lineno, len(fields))
		}

		c1 := parseCodepoints(t, fields[0])
		c3 := parseCodepoints(t, fields[2])
		c5 := parseCodepoints(t, fields[4])

		assert.Equal(t, c3, norm.NFD.String(c1), "line %d: NFD(c1) == c3", lineno)
		assert.Equal(t, c3, norm.NFD.String(c3), "line %d: NFD(c3) == c3 (idempotent)", lineno)
		assert.Equal(t, c5, norm.NFKD.String(c1), "line %d: NFKD(c1) == c5", lineno)
		assert.Equal(t, c5, norm.NFKD.String(c5), "line %d: NFKD(c5) == c5 (idempotent)", lineno)

		assert.Equal(t, oraclenorm.NFD.String(c1), norm.NFD.String(c1), "line %d: agrees with golang.org/x/text/unicode/norm NFD", lineno)
		assert.Equal(t, oraclenorm.NFKD.String(c1), norm.NFKD.String(c1), "line %d: agrees with golang.org/x/text/unicode/norm NFKD", lineno)

		checked++
	}
	assert.NoError(t, scanner.Err())
	assert.Greater(t, checked, 0, "fixture should contain at least one case")
}
