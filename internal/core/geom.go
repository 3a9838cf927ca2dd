// Package core provides fundamental types and utilities for the blockfall platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point in board space. One unit equals one cell; y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Mat3 is a 3x3 homogeneous matrix in row-vector convention:
// a point maps as [x y 1] · M, so translation lives in row 2.
//
//	| m00 m01 0 |
//	| m10 m11 0 |
//	| tx  ty  1 |
//
// Composition reads left to right: Mul(A, B) applies A first, then B.
type Mat3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns the matrix product a · b.
func Mul(a, b Mat3) Mat3 {
	var r Mat3
	for i := range 3 {
		for j := range 3 {
			var sum float64
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Mat3 {
	m := Identity()
	m[2][0] = dx
	m[2][1] = dy
	return m
}

// Rotate returns a rotation by angleDeg degrees about the origin.
func Rotate(angleDeg float64) Mat3 {
	s, c := math.Sincos(angleDeg * math.Pi / 180)
	m := Identity()
	m[0][0] = c
	m[0][1] = -s
	m[1][0] = s
	m[1][1] = c
	return m
}

// Scale returns a non-uniform scale by (sx, sy).
func Scale(sx, sy float64) Mat3 {
	m := Identity()
	m[0][0] = sx
	m[1][1] = sy
	return m
}

// Apply maps p through m, treating p as homogeneous (x, y, 1).
func (m Mat3) Apply(p Vec2) Vec2 {
	return Vec2{
		X: p.X*m[0][0] + p.Y*m[1][0] + m[2][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + m[2][1],
	}
}

// Translation returns the image of the origin under m.
func (m Mat3) Translation() Vec2 {
	return Vec2{X: m[2][0], Y: m[2][1]}
}

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
