package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar type parameter of every primitive.
type Float interface {
	constraints.Float
}

// PrecEqF reports whether |a-b| < e. With e == 0 nothing compares equal.
func PrecEqF[F Float](a, b, e F) bool {
	return abs(a-b) < e
}

// PrecEqSeq applies PrecEqF pairwise. a and b must have the same length.
func PrecEqSeq[F Float](a, b []F, e F) bool {
	for i := range a {
		if !PrecEqF(a[i], b[i], e) {
			return false
		}
	}
	return true
}

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

func sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

func sin[F Float](x F) F { return F(math.Sin(float64(x))) }

func cos[F Float](x F) F { return F(math.Cos(float64(x))) }

// Deg2Rad converts degrees to radians.
func Deg2Rad[F Float](d F) F {
	return d * math.Pi / 180
}
