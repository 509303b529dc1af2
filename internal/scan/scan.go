// Package scan holds every pattern the extraction pipeline matches against
// the document text. The input is a flat, already-decompressed text dump, so
// all structure is recovered by pattern scanning rather than by building an
// object graph; keeping the grammar in one place means a change to the dump
// format does not ripple across the resolver and interpreter.
package scan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Character classes for the runs of text allowed between an object header and
// the marker being resolved. Content and cmap objects additionally admit
// escapes, parentheses and quotes.
const (
	pageChars      = `[a-zA-Z0-9\n\s:,.<>_/\[\]]`
	toUnicodeChars = `[a-zA-Z0-9\n\s:,.<_/\[\]+-]`
	contentChars   = `[a-zA-Z0-9\n\s:,.<>_+-/\[\]\\()]`
)

var (
	pageObject = regexp.MustCompile(`obj\s[0-9]+\s0\n\sType:\s/Page` + pageChars + `+Contents` + pageChars + `+Font` + pageChars + `+`)
	fontEntry  = regexp.MustCompile(`/([A-Z][1-9]_[0-9])\s([0-9]+)|/([A-Z]+[1-9])\s([0-9]+)`)
	fontSelect = regexp.MustCompile(`(C2_[0-9]+)\s`)
	hexTag     = regexp.MustCompile(`<([0-9a-fA-F]+)>`)
	cmapPair   = regexp.MustCompile(`<([a-fA-F0-9]+)> <([a-fA-F0-9]+)>`)
	numberRun  = regexp.MustCompile(`[0-9+.]+`)
)

// PageObjects returns every page object span in the document, in document
// order. A span starts at the object header and runs as far as the allowed
// character class reaches, so it may extend past the page declaration itself.
func PageObjects(doc string) []string {
	return pageObject.FindAllString(doc, -1)
}

// FontTable extracts the page's font resource table: resource name to
// referenced object number. The table is the text following the last /Font
// marker up to the closing >>. Entries match either the C2_3 or the TT1
// naming form; a later duplicate name wins.
func FontTable(page string) map[string]string {
	i := strings.LastIndex(page, "/Font\n")
	if i < 0 {
		return nil
	}
	section := page[i+len("/Font\n"):]
	if j := strings.Index(section, ">>"); j >= 0 {
		section = section[:j]
	}

	table := make(map[string]string)
	for _, m := range fontEntry.FindAllStringSubmatch(section, -1) {
		name, num := m[1], m[2]
		if name == "" {
			name, num = m[3], m[4]
		}
		table[name] = num
	}
	return table
}

// ContentRef returns the object number referenced by the page's Contents
// entry: the first space-delimited token after the marker.
func ContentRef(page string) (string, bool) {
	_, after, found := strings.Cut(page, "Contents ")
	if !found {
		return "", false
	}
	if i := strings.IndexByte(after, ' '); i >= 0 {
		after = after[:i]
	}
	return after, after != ""
}

// ToUnicodeRef returns the object number of the ToUnicode entry in the
// declaration of the given font object.
func ToUnicodeRef(fontObj, doc string) (string, bool) {
	re := regexp.MustCompile(`obj\s` + regexp.QuoteMeta(fontObj) + `\s0\n` + toUnicodeChars + `+/ToUnicode\s([0-9]+)`)
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CMapBlock returns the begincmap...endcmap block of the given object.
func CMapBlock(objNum, doc string) (string, bool) {
	re := regexp.MustCompile(`obj\s` + regexp.QuoteMeta(objNum) + `\s0\n`)
	loc := re.FindStringIndex(doc)
	if loc == nil {
		return "", false
	}

	rest := doc[loc[1]:]
	i := strings.Index(rest, "begincmap")
	if i < 0 {
		return "", false
	}
	j := strings.Index(rest[i:], "endcmap")
	if j < 0 {
		return "", false
	}
	return rest[i : i+j+len("endcmap")], true
}

// CMapPairs returns every <hex> <hex> pair in a cmap block as (code,
// replacement) hex strings, angle brackets stripped.
func CMapPairs(block string) [][2]string {
	var pairs [][2]string
	for _, m := range cmapPair.FindAllStringSubmatch(block, -1) {
		pairs = append(pairs, [2]string{m[1], m[2]})
	}
	return pairs
}

// ContentLiteral returns the quoted content stream immediately following the
// given object's declaration, trying the single-quoted form first and falling
// back to the double-quoted form.
func ContentLiteral(objNum, doc string) (string, bool) {
	prefix := `obj\s` + regexp.QuoteMeta(objNum) + `\s0\n` + contentChars + `+`
	for _, quoted := range []string{`'(.*?)'`, `"(.*?)"`} {
		if m := regexp.MustCompile(prefix + quoted).FindStringSubmatch(doc); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// CropBox returns the visible-region (width, height): the last two of the
// first four numeric tokens after the page's /CropBox marker.
func CropBox(page string) (w, h float64, ok bool) {
	_, after, found := strings.Cut(page, "/CropBox")
	if !found {
		return 0, 0, false
	}

	nums := numberRun.FindAllString(after, 4)
	if len(nums) < 2 {
		return 0, 0, false
	}

	w, errW := strconv.ParseFloat(nums[len(nums)-2], 64)
	h, errH := strconv.ParseFloat(nums[len(nums)-1], 64)
	if errW != nil || errH != nil {
		return 0, 0, false
	}
	return w, h, true
}

// Operands returns the last n numeric tokens on the line preceding an
// operator keyword. The dump encodes stream newlines as the literal two-byte
// escape \n, so the line starts after the last such escape.
func Operands(s string, n int) ([]float64, error) {
	line := s
	if i := strings.LastIndex(line, `\n`); i >= 0 {
		line = line[i+2:]
	}

	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, fmt.Errorf("need %d numeric operands, line %q has %d tokens", n, line, len(fields))
	}

	out := make([]float64, n)
	for i, f := range fields[len(fields)-n:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// HexTags returns the hex digits of every <...> show tag in s, in order.
func HexTags(s string) []string {
	var tags []string
	for _, m := range hexTag.FindAllStringSubmatch(s, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

// FontSelector returns the first font resource name of the C2_<digits> form
// in s, if any.
func FontSelector(s string) (string, bool) {
	m := fontSelect.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}
