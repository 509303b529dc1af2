package pdftext

import "fmt"

// A SyntaxError reports a structural marker that could not be located for an
// object that must carry one: a content literal, a used font's ToUnicode
// reference, a cmap block, or a crop box. It aborts the whole document.
type SyntaxError struct {
	Marker string // the marker that was expected, e.g. "/ToUnicode"
	Object string // object number being resolved, if known
	Font   string // font resource name, when the failure is font-scoped
	Span   string // the text span that was searched
}

func (e *SyntaxError) Error() string {
	msg := "cannot locate " + e.Marker
	if e.Object != "" {
		msg += " for object " + e.Object
	}
	if e.Font != "" {
		msg += " (font " + e.Font + ")"
	}
	if e.Span != "" {
		msg += " in " + clip(e.Span)
	}
	return msg
}

// A FormatError reports a positioning operator whose numeric operands could
// not be parsed. It aborts the whole document.
type FormatError struct {
	Op   string // the operator whose operands were malformed
	Span string // the text preceding the operator
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad %s operands in %s: %v", e.Op, clip(e.Span), e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// clip bounds a span for error messages; the full span stays on the struct.
func clip(s string) string {
	const max = 80
	if len(s) > max {
		return fmt.Sprintf("%q...", s[:max])
	}
	return fmt.Sprintf("%q", s)
}
