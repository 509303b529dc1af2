package state

import (
	"github.com/njupg/pdftext/internal/matrix"
)

// Text holds the text-positioning state of one content stream: the text
// matrix Tm and the line leading Tl. Initial values follow the page
// description defaults, identity and zero.
//
// Methods implement the text-positioning operators Tm, Td, TD and T*.
// State is page-local and mutated in strict document order.
type Text struct {
	tm *matrix.Matrix
	tl float64
}

func New() *Text {
	return &Text{tm: matrix.Identity()}
}

// Tm replaces the text matrix with the six operands of a Tm operator.
func (t *Text) Tm(a, b, c, d, e, f float64) {
	t.tm = matrix.New(a, b, c, d, e, f)
}

// Td translates the text matrix by (tx, ty), composed as delta x Tm.
func (t *Text) Td(tx, ty float64) {
	t.tm = matrix.Translation(tx, ty).Mul(t.tm)
}

// TD is Td plus setting the leading to ty.
func (t *Text) TD(tx, ty float64) {
	t.tl = ty
	t.Td(tx, ty)
}

// Tstar moves by (0, Tl).
func (t *Text) Tstar() {
	t.Td(0, t.tl)
}

// Leading returns the current line leading Tl.
func (t *Text) Leading() float64 { return t.tl }

// Position returns the translation components (Tx, Ty) of the text matrix.
func (t *Text) Position() (x, y float64) {
	return t.tm.Tx(), t.tm.Ty()
}
