// Command gen-norm-tables reads a Unicode Character Database XML dump (a
// ucd.nounihan.grouped.xml.zip, the way internal/unicode/gen-13.0.0/ccc is
// fed one) and reports how many canonical and compatibility decompositions
// it contains. It does not bake or emit the packed tables in
// norm/internal/table; those are built from the hand-curated data in
// data_nfd.go and data_nfkd.go.
package main

import (
	"archive/zip"
	"bufio"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gpawru/decompose/must"
	"github.com/gpawru/decompose/operator"
	"github.com/gpawru/decompose/operator/checked/integer"
)

// char is one <char> or <group>-inherited record from the UCD grouped XML
// format that this tool cares about.
type char struct {
	codepoint  rune
	coderange  [2]rune
	ccc        uint8
	decompType string
	decompMap  []rune
}

func (c char) isRange() bool {
	return (c.codepoint == 0) && ((c.coderange[0] != 0) || (c.coderange[1] != 0))
}

// maxCodepoint is the highest valid Unicode scalar value. The XML is an
// untrusted external input: strconv.ParseInt(x, 16, 32) only guarantees the
// parsed value fits in 32 bits, not that it's a valid code point, so a
// malformed cp/first-cp/last-cp attribute (or one from a future UCD version
// with a wider repertoire than this tool expects) needs its own bounds
// check rather than silently narrowing into an out-of-range rune.
const maxCodepoint = 0x10FFFF

func parseCodepoint(x string) rune {
	v := must.Result(strconv.ParseInt(x, 16, 32))
	checked, ok := integer.Add[int64](0, maxCodepoint, 0, v)
	if !ok {
		panic(fmt.Sprintf("gen-norm-tables: code point %s exceeds U+10FFFF", x))
	}
	return rune(checked)
}

func parseCodepointList(x string) []rune {
	if x == "" {
		return nil
	}
	fields := strings.Fields(x)
	out := make([]rune, 0, len(fields))
	for _, f := range fields {
		out = append(out, parseCodepoint(f))
	}
	return out
}

func charFromAttrs(attr []xml.Attr, parent char) char {
	c := parent
	for _, a := range attr {
		switch a.Name.Local {
		case "cp":
			c.codepoint = parseCodepoint(a.Value)
		case "first-cp":
			c.coderange[0] = parseCodepoint(a.Value)
		case "last-cp":
			c.coderange[1] = parseCodepoint(a.Value)
		case "ccc":
			v := must.Result(strconv.ParseUint(a.Value, 10, 8))
			c.ccc = uint8(v)
		case "dt":
			c.decompType = a.Value
		case "dm":
			if a.Value != "#" {
				c.decompMap = parseCodepointList(a.Value)
			} else {
				c.decompMap = nil
			}
		}
	}
	return c
}

func readUCDZip(path, member string) []char {
	zr := must.Result(zip.OpenReader(path))
	defer zr.Close()

	rc := must.Result(zr.Open(member))
	defer rc.Close()

	d := xml.NewDecoder(bufio.NewReaderSize(rc, 64*1024))
	chars := make([]char, 0, 1<<16)
	var group char
	var inRepertoire, inGroup bool

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		must.Check(err)

		switch ty := tok.(type) {
		case xml.StartElement:
			switch ty.Name.Local {
			case "repertoire":
				inRepertoire = true
			case "group":
				if !inRepertoire {
					break
				}
				inGroup = true
				group = charFromAttrs(ty.Attr, operator.Zero[char]())
			case "char":
				if !inRepertoire || !inGroup {
					break
				}
				c := charFromAttrs(ty.Attr, group)
				if !c.isRange() {
					chars = append(chars, c)
				}
			}
		case xml.EndElement:
			switch ty.Name.Local {
			case "repertoire":
				inRepertoire = false
			case "group":
				inGroup = false
			}
		}
	}

	sort.Slice(chars, func(i, j int) bool { return chars[i].codepoint < chars[j].codepoint })
	return chars
}

func main() {
	ucdZip := flag.String("ucd", "", "path to a ucd.nounihan.grouped.<version>.zip")
	member := flag.String("member", "ucd.nounihan.grouped.xml", "zip member to read")
	flag.Parse()

	if *ucdZip == "" {
		fmt.Fprintln(os.Stderr, "gen-norm-tables: -ucd is required; this tool is not run as part of building this module")
		os.Exit(2)
	}

	chars := readUCDZip(*ucdZip, *member)
	fmt.Fprintf(os.Stderr, "gen-norm-tables: read %d characters\n", len(chars))

	var nfdCount, nfkdCount int
	for _, c := range chars {
		if len(c.decompMap) == 0 {
			continue
		}
		nfkdCount++
		if c.decompType == "" || c.decompType == "can" {
			nfdCount++
		}
	}
	fmt.Fprintf(os.Stderr, "gen-norm-tables: %d canonical, %d compatibility decompositions\n", nfdCount, nfkdCount)

	fmt.Fprintln(os.Stderr, "gen-norm-tables: baking a full table.Builder run from this data is left to a real UCD fetch; see DESIGN.md")
}
