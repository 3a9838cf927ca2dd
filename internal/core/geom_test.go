package core

import (
	"math"
	"testing"
)

const geomTolerance = 1e-9

func nearVec(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < geomTolerance && math.Abs(a.Y-b.Y) < geomTolerance
}

func nearMat(a, b Mat3) bool {
	for i := range 3 {
		for j := range 3 {
			if math.Abs(a[i][j]-b[i][j]) >= geomTolerance {
				return false
			}
		}
	}
	return true
}

func TestMat3Apply(t *testing.T) {
	tests := []struct {
		name     string
		m        Mat3
		p        Vec2
		expected Vec2
	}{
		{"identity", Identity(), V(3, -2), V(3, -2)},
		{"translate", Translate(5, 1), V(-2, 0), V(3, 1)},
		{"scale", Scale(2, -1), V(3, 4), V(6, -4)},
		{"rotate 90 x axis", Rotate(90), V(1, 0), V(0, -1)},
		{"rotate 90 y axis", Rotate(90), V(0, 1), V(1, 0)},
		{"rotate 180", Rotate(180), V(2, 1), V(-2, -1)},
		{"rotate 0", Rotate(0), V(2, 1), V(2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.m.Apply(tc.p)
			if !nearVec(result, tc.expected) {
				t.Errorf("Apply(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestMulIdentityIsNeutral(t *testing.T) {
	m := Mul(Rotate(90), Translate(4, 7))

	if !nearMat(Mul(Identity(), m), m) {
		t.Error("Identity · M should equal M")
	}
	if !nearMat(Mul(m, Identity()), m) {
		t.Error("M · Identity should equal M")
	}
}

func TestMulAppliesLeftOperandFirst(t *testing.T) {
	// Translate then rotate differs from rotate then translate.
	p := V(1, 0)

	tr := Mul(Translate(1, 0), Rotate(90)).Apply(p)
	if !nearVec(tr, V(0, -2)) {
		t.Errorf("translate·rotate = %v, expected (0, -2)", tr)
	}

	rt := Mul(Rotate(90), Translate(1, 0)).Apply(p)
	if !nearVec(rt, V(1, -1)) {
		t.Errorf("rotate·translate = %v, expected (1, -1)", rt)
	}
}

func TestMulAssociative(t *testing.T) {
	a := Translate(2, -3)
	b := Rotate(90)
	c := Scale(2, 3)

	left := Mul(Mul(a, b), c)
	right := Mul(a, Mul(b, c))
	if !nearMat(left, right) {
		t.Errorf("(AB)C = %v, A(BC) = %v", left, right)
	}
}

func TestRotateFourQuarterTurns(t *testing.T) {
	m := Identity()
	for range 4 {
		m = Mul(m, Rotate(90))
	}
	if !nearMat(m, Identity()) {
		t.Errorf("four quarter turns = %v, expected identity", m)
	}
}

func TestTranslation(t *testing.T) {
	m := Mul(Translate(5, 1), Translate(-1, 2))
	if got := m.Translation(); !nearVec(got, V(4, 3)) {
		t.Errorf("Translation() = %v, expected (4, 3)", got)
	}
}

func TestVec2Dist(t *testing.T) {
	if d := V(0, 0).Dist(V(3, 4)); math.Abs(d-5) > geomTolerance {
		t.Errorf("Dist = %f, expected 5", d)
	}
	if got := V(1, 2).Add(V(3, 4)); got != V(4, 6) {
		t.Errorf("Add = %v, expected (4, 6)", got)
	}
	if got := V(1, 2).Sub(V(3, 4)); got != V(-2, -2) {
		t.Errorf("Sub = %v, expected (-2, -2)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}
