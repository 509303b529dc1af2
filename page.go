package pdftext

import (
	"fmt"

	"github.com/njupg/pdftext/internal/encoding"
	"github.com/njupg/pdftext/internal/scan"
)

// A Page is one page object span discovered in the document text.
// Pages are transient: recomputed per parse run, never mutated.
type Page struct {
	Index int    // position in document order, 0-based
	Span  string // the matched page object text
}

// Resources holds everything one page's interpretation needs: the content
// stream span, the font resource bindings and the visible-region bounds.
// A Resources belongs to a single page's processing lifetime.
type Resources struct {
	Content string
	Fonts   map[string]encoding.CharacterMap

	// CropW and CropH are the visible-region width and height. Carried for
	// layout logic; nothing downstream consumes them yet.
	CropW, CropH float64

	// fontErr holds per-font resolution failures, surfaced only if the font
	// is actually selected by a show-text occurrence.
	fontErr map[string]error
}

// Resources resolves the page's shared resources against the document.
func (p Page) Resources(doc string) (*Resources, error) {
	r := &Resources{
		Fonts:   make(map[string]encoding.CharacterMap),
		fontErr: make(map[string]error),
	}

	for name, num := range scan.FontTable(p.Span) {
		cm, err := resolveCMap(num, doc)
		if err != nil {
			// Deferred: a font that is never used may be broken.
			r.fontErr[name] = fmt.Errorf("font %s: %w", name, err)
			continue
		}
		r.Fonts[name] = cm
	}

	ref, ok := scan.ContentRef(p.Span)
	if !ok {
		return nil, &SyntaxError{Marker: "Contents", Span: p.Span}
	}
	content, ok := scan.ContentLiteral(ref, doc)
	if !ok {
		return nil, &SyntaxError{Marker: "content literal", Object: ref, Span: p.Span}
	}
	r.Content = content

	w, h, ok := scan.CropBox(p.Span)
	if !ok {
		return nil, &SyntaxError{Marker: "/CropBox", Span: p.Span}
	}
	r.CropW, r.CropH = w, h

	return r, nil
}

// Text resolves the page's resources, interprets its content stream and
// assembles the decoded fragments into reading-order text.
func (p Page) Text(doc string) (string, error) {
	res, err := p.Resources(doc)
	if err != nil {
		return "", err
	}

	in := newInterpreter(res)
	if err := in.run(); err != nil {
		return "", err
	}
	return in.grid.Assemble(), nil
}
