// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"encoding/hex"

	"golang.org/x/text/encoding/unicode"
)

// A CharacterMap maps a glyph code, as a 4-hex-digit string taken verbatim
// from a cmap, to its Unicode replacement text. Lookups are exact string
// matches: codes are never case-folded or re-encoded.
type CharacterMap map[string]string

// Lookup returns the replacement for code. An absent code reports ok false
// and never fails; unmapped codes are the caller's lossy-decode case.
func (m CharacterMap) Lookup(code string) (string, bool) {
	s, ok := m[code]
	return s, ok
}

// UTF16Decode interprets a hex string as big-endian UTF-16 bytes and returns
// the decoded text. Surrogate pairs are combined; malformed code units are
// substituted rather than failing.
func UTF16Decode(hexStr string) (string, error) {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", err
	}

	out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
