package mathutil

// Determinant and inverse by cofactor expansion over row slices. The cost is
// O(n!), fine for 3×3 and 4×4 only. Expansion always runs along row 0 so
// results are reproducible bit for bit.

func det[F Float](m [][]F) F {
	if len(m) == 2 {
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}
	var d F
	for j := range m[0] {
		d += m[0][j] * cofactor(m, 0, j)
	}
	return d
}

// minor drops row i and column j.
func minor[F Float](m [][]F, i, j int) [][]F {
	out := make([][]F, 0, len(m)-1)
	for r := range m {
		if r == i {
			continue
		}
		row := make([]F, 0, len(m)-1)
		for c := range m[r] {
			if c == j {
				continue
			}
			row = append(row, m[r][c])
		}
		out = append(out, row)
	}
	return out
}

func cofactor[F Float](m [][]F, i, j int) F {
	c := det(minor(m, i, j))
	if (i+j)%2 == 1 {
		return -c
	}
	return c
}

// cofactors returns the table C[i][j]. The 2×2 table is written out, since
// a 1×1 minor has no determinant path here.
func cofactors[F Float](m [][]F) [][]F {
	if len(m) == 2 {
		return [][]F{
			{m[1][1], -m[1][0]},
			{-m[0][1], m[0][0]},
		}
	}
	c := make([][]F, len(m))
	for i := range c {
		c[i] = make([]F, len(m))
		for j := range c[i] {
			c[i][j] = cofactor(m, i, j)
		}
	}
	return c
}

// adjugate transposes the cofactor table.
func adjugate[F Float](m [][]F) [][]F {
	c := cofactors(m)
	adj := make([][]F, len(m))
	for j := range adj {
		adj[j] = make([]F, len(m))
		for i := range adj[j] {
			adj[j][i] = c[i][j]
		}
	}
	return adj
}

// inverse returns adj(m)/det(m), or false when |det(m)| < e.
func inverse[F Float](m [][]F, e F) ([][]F, bool) {
	d := det(m)
	if abs(d) < e {
		return nil, false
	}
	inv := adjugate(m)
	for j := range inv {
		for i := range inv[j] {
			inv[j][i] /= d
		}
	}
	return inv, true
}
