package matrix

// A Matrix is a 3x3 homogeneous 2-D affine transform stored row-major,
// as used for the text matrix Tm: [[a,b,0],[c,d,0],[e,f,1]].
type Matrix [3][3]float64

func Identity() *Matrix {
	return &Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translation returns the matrix moving the origin by (tx, ty).
func Translation(tx, ty float64) *Matrix {
	return &Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{tx, ty, 1},
	}
}

// New builds the matrix for the six operands of a Tm operator.
func New(a, b, c, d, e, f float64) *Matrix {
	return &Matrix{
		{a, b, 0},
		{c, d, 0},
		{e, f, 1},
	}
}

// Mul returns m x n. Position tracking depends on the operand order:
// a positioning delta composes as delta.Mul(tm), never the reverse.
func (m *Matrix) Mul(n *Matrix) *Matrix {
	if m.sparse() && n.sparse() {
		return &Matrix{
			{m[0][0] * n[0][0], 0, 0},
			{0, m[1][1] * n[1][1], 0},
			{m[2][0]*n[0][0] + n[2][0], m[2][1]*n[1][1] + n[2][1], 1},
		}
	}

	var mn Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				mn[i][j] += m[i][k] * n[k][j]
			}
		}
	}

	return &mn
}

// Tx returns the horizontal translation component.
func (m *Matrix) Tx() float64 { return m[2][0] }

// Ty returns the vertical translation component.
func (m *Matrix) Ty() float64 { return m[2][1] }

func (m *Matrix) sparse() bool {
	return m[0][1] == 0 && m[0][2] == 0 &&
		m[1][0] == 0 && m[1][2] == 0 &&
		m[2][2] == 1
}
