package pdftext

import (
	"log/slog"

	"github.com/njupg/pdftext/internal/encoding"
	"github.com/njupg/pdftext/internal/scan"
)

// resolveCMap builds the character map for the given font object: follow its
// ToUnicode reference, locate that object's begincmap block and collect every
// <code> <replacement> pair. Replacement bytes are UTF-16BE.
//
// Maps are built per page, never cached: output must be identical to the
// uncached resolution order.
func resolveCMap(fontObj, doc string) (encoding.CharacterMap, error) {
	ref, ok := scan.ToUnicodeRef(fontObj, doc)
	if !ok {
		return nil, &SyntaxError{Marker: "/ToUnicode", Object: fontObj}
	}

	block, ok := scan.CMapBlock(ref, doc)
	if !ok {
		return nil, &SyntaxError{Marker: "begincmap", Object: ref}
	}

	m := make(encoding.CharacterMap)
	for _, pair := range scan.CMapPairs(block) {
		repl, err := encoding.UTF16Decode(pair[1])
		if err != nil {
			slog.Debug("undecodable cmap replacement",
				slog.String("object", ref),
				slog.String("code", pair[0]),
				slog.String("replacement", pair[1]))
			continue
		}
		m[pair[0]] = repl
	}
	return m, nil
}
