package mathutil

import "fmt"

// Mat4 is a 4×4 matrix stored row-major: m[j] is row j.
type Mat4[F Float] [4]Vec4[F]

// NewMat4 is Mat4RowMajor.
func NewMat4[F Float](rows [][]F) Mat4[F] {
	return Mat4RowMajor(rows)
}

// Mat4RowMajor builds m with m[j][i] == rows[j][i].
func Mat4RowMajor[F Float](rows [][]F) Mat4[F] {
	var m Mat4[F]
	for j := range m {
		m[j] = NewVec4(rows[j])
	}
	return m
}

// Mat4ColMajor builds m with m[j][i] == cols[i][j].
func Mat4ColMajor[F Float](cols [][]F) Mat4[F] {
	var m Mat4[F]
	for j := range m {
		for i := range m[j] {
			m[j][i] = cols[i][j]
		}
	}
	return m
}

func Mat4Identity[F Float]() Mat4[F] {
	return Mat4[F]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4[F]) Row(j int) Vec4[F] {
	return m[j]
}

func (m Mat4[F]) Col(i int) Vec4[F] {
	return Vec4[F]{m[0][i], m[1][i], m[2][i], m[3][i]}
}

func (m Mat4[F]) ToRows() [][]F {
	return [][]F{m[0].ToVec(), m[1].ToVec(), m[2].ToVec(), m[3].ToVec()}
}

func (m Mat4[F]) PrecEq(e F, n Mat4[F]) bool {
	for j := range m {
		if !m[j].PrecEq(e, n[j]) {
			return false
		}
	}
	return true
}

// DotM returns b·m. See Mat3.DotM for the convention.
func (m Mat4[F]) DotM(b Mat4[F]) Mat4[F] {
	var cols [4][]F
	for i := range cols {
		cols[i] = m.Col(i).DotMV(b).ToVec()
	}
	return Mat4ColMajor(cols[:])
}

func (m Mat4[F]) Transpose() Mat4[F] {
	return Mat4ColMajor(m.ToRows())
}

func (m Mat4[F]) Scale(s F) Mat4[F] {
	return Mat4[F]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s), m[3].Scale(s)}
}

func (m Mat4[F]) Det() F {
	return det(m.ToRows())
}

func (m Mat4[F]) Minor(i, j int) Mat3[F] {
	return Mat3RowMajor(minor(m.ToRows(), i, j))
}

func (m Mat4[F]) Cofactor(i, j int) F {
	return cofactor(m.ToRows(), i, j)
}

func (m Mat4[F]) Adjugate() Mat4[F] {
	return Mat4RowMajor(adjugate(m.ToRows()))
}

// Inv returns adj(m)/det(m), or the zero matrix and false when |det| < e.
func (m Mat4[F]) Inv(e F) (Mat4[F], bool) {
	inv, ok := inverse(m.ToRows(), e)
	if !ok {
		return Mat4[F]{}, false
	}
	return Mat4RowMajor(inv), true
}

func (m Mat4[F]) String() string {
	return fmt.Sprintf("[%v %v %v %v]", m[0], m[1], m[2], m[3])
}
