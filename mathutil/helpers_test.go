package mathutil

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// eps is the comparison tolerance used for a given precision.
func eps[F Float]() F {
	if F(1)+F(1e-9) == F(1) {
		return 1e-5
	}
	return 1e-6
}

func rows[F Float](r ...[]F) [][]F { return r }

func toDense[F Float](r [][]F) *mat.Dense {
	n := len(r)
	d := mat.NewDense(n, n, nil)
	for j := range r {
		for i := range r[j] {
			d.Set(j, i, float64(r[j][i]))
		}
	}
	return d
}

// randomMat4 returns a diagonally dominant, hence invertible, matrix.
func randomMat4[F Float](rng *rand.Rand) Mat4[F] {
	var m Mat4[F]
	for j := range m {
		for i := range m[j] {
			m[j][i] = F(rng.Float64()*2 - 1)
		}
		m[j][j] += 5
	}
	return m
}

func randomAxis[F Float](rng *rand.Rand) Vec3[F] {
	for {
		v := Vec3[F]{F(rng.NormFloat64()), F(rng.NormFloat64()), F(rng.NormFloat64())}
		if v.Len() > 0.1 {
			return v
		}
	}
}
