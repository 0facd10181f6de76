package mathutil

import "fmt"

// Mat3 is a 3×3 matrix stored row-major: m[j] is row j.
type Mat3[F Float] [3]Vec3[F]

// NewMat3 is Mat3RowMajor.
func NewMat3[F Float](rows [][]F) Mat3[F] {
	return Mat3RowMajor(rows)
}

// Mat3RowMajor builds m with m[j][i] == rows[j][i].
func Mat3RowMajor[F Float](rows [][]F) Mat3[F] {
	var m Mat3[F]
	for j := range m {
		m[j] = NewVec3(rows[j])
	}
	return m
}

// Mat3ColMajor builds m with m[j][i] == cols[i][j].
func Mat3ColMajor[F Float](cols [][]F) Mat3[F] {
	var m Mat3[F]
	for j := range m {
		for i := range m[j] {
			m[j][i] = cols[i][j]
		}
	}
	return m
}

func Mat3Identity[F Float]() Mat3[F] {
	return Mat3[F]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func (m Mat3[F]) Row(j int) Vec3[F] {
	return m[j]
}

func (m Mat3[F]) Col(i int) Vec3[F] {
	return Vec3[F]{m[0][i], m[1][i], m[2][i]}
}

func (m Mat3[F]) ToRows() [][]F {
	return [][]F{m[0].ToVec(), m[1].ToVec(), m[2].ToVec()}
}

func (m Mat3[F]) PrecEq(e F, n Mat3[F]) bool {
	for j := range m {
		if !m[j].PrecEq(e, n[j]) {
			return false
		}
	}
	return true
}

// DotM returns b·m: the argument multiplies from the left, so column i of
// the result is m.Col(i).DotMV(b).
func (m Mat3[F]) DotM(b Mat3[F]) Mat3[F] {
	var cols [3][]F
	for i := range cols {
		cols[i] = m.Col(i).DotMV(b).ToVec()
	}
	return Mat3ColMajor(cols[:])
}

func (m Mat3[F]) Transpose() Mat3[F] {
	return Mat3ColMajor(m.ToRows())
}

func (m Mat3[F]) Scale(s F) Mat3[F] {
	return Mat3[F]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Det expands along row 0 down to 2×2 blocks.
func (m Mat3[F]) Det() F {
	return det(m.ToRows())
}

// Minor returns the 2×2 block left after deleting row i and column j.
func (m Mat3[F]) Minor(i, j int) [][]F {
	return minor(m.ToRows(), i, j)
}

// Cofactor is (-1)^(i+j) times the determinant of Minor(i, j).
func (m Mat3[F]) Cofactor(i, j int) F {
	return cofactor(m.ToRows(), i, j)
}

// Adjugate is the transposed cofactor matrix, so m·adj(m) == det(m)·I.
func (m Mat3[F]) Adjugate() Mat3[F] {
	return Mat3RowMajor(adjugate(m.ToRows()))
}

// Inv returns the inverse, or the zero matrix and false when |det| < e.
func (m Mat3[F]) Inv(e F) (Mat3[F], bool) {
	inv, ok := inverse(m.ToRows(), e)
	if !ok {
		return Mat3[F]{}, false
	}
	return Mat3RowMajor(inv), true
}

func (m Mat3[F]) String() string {
	return fmt.Sprintf("[%v %v %v]", m[0], m[1], m[2])
}
