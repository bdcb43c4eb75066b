package orbitmap

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// Matrix33 is a 3x3 matrix stored row major.
type Matrix33 [3][3]float64

// Identity33 is the 3x3 identity matrix.
var Identity33 = Matrix33{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Mul returns m·n.
func (m Matrix33) Mul(n Matrix33) (o Matrix33) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return
}

// MulVec returns m·v.
func (m Matrix33) MulVec(v Vector) (o Vector) {
	for i := 0; i < 3; i++ {
		o[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return
}

// Transpose returns mᵀ, which is also the inverse of a rotation matrix.
func (m Matrix33) Transpose() (o Matrix33) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o[i][j] = m[j][i]
		}
	}
	return
}

// Dense returns a copy of this matrix as a mat64.Dense.
func (m Matrix33) Dense() *mat64.Dense {
	return mat64.NewDense(3, 3, []float64{m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2]})
}

// R1 rotation about the 1st axis.
// These are frame rotations: R1(x) rotates the axes by x, i.e. a vector by -x.
func R1(x float64) Matrix33 {
	s, c := math.Sincos(x)
	return Matrix33{{1, 0, 0}, {0, c, s}, {0, -s, c}}
}

// R3 rotation about the 3rd axis.
func R3(x float64) Matrix33 {
	s, c := math.Sincos(x)
	return Matrix33{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
}

// R3R1R3 performs a 3-1-3 Euler parameter rotation, i.e. R3(θ3)·R1(θ2)·R3(θ1).
// From Schaub and Junkins. With θ1=Ω, θ2=i and θ3=ω, this converts from
// the inertial frame to the perifocal frame.
func R3R1R3(θ1, θ2, θ3 float64) Matrix33 {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return Matrix33{{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2},
		{-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2},
		{sθ2 * sθ1, -sθ2 * cθ1, cθ2}}
}

// PQW2ECI returns the rotation from the perifocal frame to the inertial frame,
// R_z(Ω)·R_x(i)·R_z(ω) as a vector rotation. The order matters.
func PQW2ECI(i, ω, Ω float64) Matrix33 {
	return R3(-Ω).Mul(R1(-i)).Mul(R3(-ω))
}
