package pdftext

import (
	"log/slog"
	"strings"

	"github.com/njupg/pdftext/internal/scan"
	"github.com/njupg/pdftext/internal/state"
	"github.com/njupg/pdftext/text"
)

// An interpreter walks one page's content stream, tracking the text matrix,
// decoding show-text tags through the active font's character map and
// recording the fragments by position.
type interpreter struct {
	res   *Resources
	state *state.Text
	grid  text.Grid
	font  string // active font resource name; empty until first selected
}

func newInterpreter(res *Resources) *interpreter {
	return &interpreter{
		res:   res,
		state: state.New(),
		grid:  text.New(),
	}
}

// run interprets the content stream. Segments are delimited solely by BT
// markers; only text after the first marker is interpreted.
func (in *interpreter) run() error {
	segments := strings.Split(in.res.Content, "BT")
	for _, seg := range segments[1:] {
		if err := in.segment(seg); err != nil {
			return err
		}
	}
	return nil
}

// segment processes one BT segment. Splitting on the show operators leaves
// each operator's operands, positioning run and show tags in the piece
// preceding it: pieces containing TJ are processed once per TJ occurrence,
// then the remainder of every piece is processed as a Tj occurrence.
func (in *interpreter) segment(seg string) error {
	for _, piece := range strings.Split(seg, "Tj") {
		if strings.Contains(piece, "TJ") {
			subs := strings.Split(piece, "TJ")
			for _, sub := range subs[:len(subs)-1] {
				if err := in.occurrence(sub); err != nil {
					return err
				}
			}
		}

		rest := piece
		if i := strings.LastIndex(piece, "TJ"); i >= 0 {
			rest = piece[i+len("TJ"):]
		}
		if err := in.occurrence(rest); err != nil {
			return err
		}
	}
	return nil
}

// occurrence handles one show-text occurrence: font selection, transform
// updates, then decoding and recording of every show tag.
func (in *interpreter) occurrence(s string) error {
	if name, ok := scan.FontSelector(s); ok {
		if err := in.res.fontErr[name]; err != nil {
			return err
		}
		in.font = name
	}

	if err := in.applyTm(s); err != nil {
		return err
	}
	if err := in.applyPositioning(s); err != nil {
		return err
	}

	for _, tag := range scan.HexTags(s) {
		in.record(in.decode(tag))
	}
	return nil
}

// applyTm replaces the text matrix from the six operands preceding the first
// Tm keyword, if one is present.
func (in *interpreter) applyTm(s string) error {
	prefix, _, found := strings.Cut(s, "Tm")
	if !found {
		return nil
	}

	ops, err := scan.Operands(prefix, 6)
	if err != nil {
		return &FormatError{Op: "Tm", Span: prefix, Err: err}
	}
	in.state.Tm(ops[0], ops[1], ops[2], ops[3], ops[4], ops[5])
	return nil
}

// applyPositioning composes the translation operators into the text matrix.
// Td occurrences shadow TD, which shadows T*; absence of all three leaves the
// transform unchanged.
func (in *interpreter) applyPositioning(s string) error {
	switch {
	case strings.Contains(s, "Td"):
		parts := strings.Split(s, " Td")
		for _, p := range parts[:len(parts)-1] {
			xy, err := scan.Operands(p, 2)
			if err != nil {
				return &FormatError{Op: "Td", Span: p, Err: err}
			}
			in.state.Td(xy[0], xy[1])
		}

	case strings.Contains(s, "TD"):
		parts := strings.Split(s, " TD")
		for _, p := range parts[:len(parts)-1] {
			xy, err := scan.Operands(p, 2)
			if err != nil {
				return &FormatError{Op: "TD", Span: p, Err: err}
			}
			in.state.TD(xy[0], xy[1])
		}

	case strings.Contains(s, "T*"):
		in.state.Tstar()
	}
	return nil
}

// decode maps a show tag's hex digits to text, 4 digits per glyph code.
// Codes with no mapping and tags shown with no active font yield nothing;
// decoded chunks accumulate by prepending, last decoded first.
func (in *interpreter) decode(tag string) string {
	cm, ok := in.res.Fonts[in.font]
	if !ok {
		slog.Debug("show tag without active font", slog.String("tag", tag))
		return ""
	}

	var out string
	for i := 0; i < len(tag); i += 4 {
		end := i + 4
		if end > len(tag) {
			end = len(tag)
		}
		chunk := tag[i:end]

		repl, ok := cm.Lookup(chunk)
		if !ok {
			slog.Debug("unmapped glyph code",
				slog.String("font", in.font),
				slog.String("code", chunk))
			continue
		}
		out = repl + out
	}
	return out
}

// record stores s at the transform's current translation, truncated to
// integers. Fragments with a non-positive coordinate are dropped: a filter
// against malformed or negative positions.
func (in *interpreter) record(s string) {
	x, y := in.state.Position()
	if x <= 0 || y <= 0 {
		return
	}
	in.grid.Upsert(int(x), int(y), s)
}
