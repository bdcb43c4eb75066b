package orbitmap

import (
	"math"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestR1R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r3 := R3(x)
	if r1[0][0] != 1 || r3[2][2] != 1 {
		t.Fatal("expected R1[0][0] = R3[2][2] = 1")
	}
	if r1[0][1] != 0 || r1[0][2] != 0 || r1[1][0] != 0 || r1[2][0] != 0 {
		t.Fatal("misplaced zeros in R1")
	}
	if r3[2][0] != 0 || r3[2][1] != 0 || r3[0][2] != 0 || r3[1][2] != 0 {
		t.Fatal("misplaced zeros in R3")
	}
	if r1[1][1] != c || r1[2][2] != c || r1[1][2] != s || r1[2][1] != -s {
		t.Fatal("R1 sines and cosines misplaced")
	}
	if r3[0][0] != c || r3[1][1] != c || r3[0][1] != s || r3[1][0] != -s {
		t.Fatal("R3 sines and cosines misplaced")
	}
}

func TestRot313(t *testing.T) {
	θ1 := math.Pi / 17
	θ2 := math.Pi / 16
	θ3 := math.Pi / 15
	composed := R3(θ3).Mul(R1(θ2)).Mul(R3(θ1))
	if !mat64.EqualApprox(composed.Dense(), R3R1R3(θ1, θ2, θ3).Dense(), 1e-12) {
		t.Logf("\n%+v", mat64.Formatted(composed.Dense()))
		t.Logf("\n%+v", mat64.Formatted(R3R1R3(θ1, θ2, θ3).Dense()))
		t.Fatal("R3·R1·R3 differs from the closed form")
	}
	// The perifocal to inertial rotation is the inverse of the inertial to perifocal one.
	i, ω, Ω := Deg2rad(87.87), Deg2rad(53.38), Deg2rad(227.89)
	if !mat64.EqualApprox(PQW2ECI(i, ω, Ω).Dense(), R3R1R3(Ω, i, ω).Transpose().Dense(), 1e-12) {
		t.Fatal("PQW2ECI is not the transpose of the 3-1-3 rotation")
	}
}

func TestRotationOrthogonal(t *testing.T) {
	for _, angles := range [][3]float64{{0, 0, 0}, {10, 20, 30}, {87.87, 53.38, 227.89}, {180, 359, 1}, {-45, 400, 90}} {
		R := PQW2ECI(Deg2rad(angles[0]), Deg2rad(angles[1]), Deg2rad(angles[2]))
		var RtR mat64.Dense
		RtR.Mul(R.Dense().T(), R.Dense())
		if !mat64.EqualApprox(&RtR, Identity33.Dense(), 1e-12) {
			t.Fatalf("RᵗR != I for %v:\n%v", angles, mat64.Formatted(&RtR))
		}
		if det := mat64.Det(R.Dense()); math.Abs(det-1) > 1e-12 {
			t.Fatalf("det(R) = %f for %v", det, angles)
		}
	}
}

func TestRotationOrder(t *testing.T) {
	i, ω, Ω := Deg2rad(30), Deg2rad(40), Deg2rad(50)
	exp := R3(-Ω).Mul(R1(-i)).Mul(R3(-ω))
	reversed := R3(-ω).Mul(R1(-i)).Mul(R3(-Ω))
	R := PQW2ECI(i, ω, Ω)
	if R != exp {
		t.Fatal("PQW2ECI does not apply R_z(Ω)·R_x(i)·R_z(ω)")
	}
	if mat64.EqualApprox(R.Dense(), reversed.Dense(), 1e-6) {
		t.Fatal("reversing the rotation order should change the frame")
	}
}

func TestPQW2ECI(t *testing.T) {
	i := Deg2rad(87.87)
	ω := Deg2rad(53.38)
	Ω := Deg2rad(227.89)
	Rp := PQW2ECI(i, ω, Ω).MulVec(Vector{-466.7639, 11447.0219, 0})
	Re := Vector{6525.368103709379, 6861.531814548294, 6449.118636407358}
	if !vectorsEqual(Re, Rp) {
		t.Fatalf("R conversion failed: %v", Rp)
	}
}

func TestMatrix33(t *testing.T) {
	m := Matrix33{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	if m.Mul(Identity33) != m || Identity33.Mul(m) != m {
		t.Fatal("identity product changed the matrix")
	}
	if m.Transpose() != (Matrix33{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}) {
		t.Fatal("transpose failed")
	}
	if v := m.MulVec(Vector{1, 0, -1}); v != (Vector{-2, -2, -2}) {
		t.Fatalf("MulVec failed: %v", v)
	}
	var exp mat64.Dense
	exp.Mul(m.Dense(), m.Dense())
	if !mat64.Equal(&exp, m.Mul(m).Dense()) {
		t.Fatal("Mul differs from mat64")
	}
}
