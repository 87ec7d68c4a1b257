package vmath

import (
	"math"
)

// GridTraverser implements a zero-allocation iterator for DDA grid traversal over square cells.
// Each Step crosses exactly one cell boundary, choosing the axis whose next boundary is nearer; ties go to X
type GridTraverser struct {
	tileX, tileY int
	stepX, stepY int

	// Distance along the ray to the next X/Y boundary, and per-cell increments
	nextX, nextY   float64
	deltaX, deltaY float64

	dist   float64
	normal IntVec2
}

// NewGridTraverser starts a traversal at start heading along fwd (unit length) over a grid
// whose cell (0,0) has its min corner at origin
func NewGridTraverser(start, fwd, origin Vec2, cellSize float64) GridTraverser {
	t := GridTraverser{
		tileX: FloorToInt((start[0] - origin[0]) / cellSize),
		tileY: FloorToInt((start[1] - origin[1]) / cellSize),
		stepX: 1,
		stepY: 1,
	}
	if fwd[0] < 0 {
		t.stepX = -1
	}
	if fwd[1] < 0 {
		t.stepY = -1
	}

	// Axis-parallel rays never cross boundaries of the other axis; avoids 0*Inf
	if fwd[0] == 0 {
		t.nextX = math.Inf(1)
		t.deltaX = math.Inf(1)
	} else {
		perX := 1 / math.Abs(fwd[0])
		firstX := float64(t.tileX+(t.stepX+1)/2)*cellSize + origin[0]
		t.nextX = math.Abs(firstX-start[0]) * perX
		t.deltaX = cellSize * perX
	}
	if fwd[1] == 0 {
		t.nextY = math.Inf(1)
		t.deltaY = math.Inf(1)
	} else {
		perY := 1 / math.Abs(fwd[1])
		firstY := float64(t.tileY+(t.stepY+1)/2)*cellSize + origin[1]
		t.nextY = math.Abs(firstY-start[1]) * perY
		t.deltaY = cellSize * perY
	}
	return t
}

// NextDist returns the distance at which the next Step will enter a new cell
func (t *GridTraverser) NextDist() float64 {
	if t.nextX <= t.nextY {
		return t.nextX
	}
	return t.nextY
}

// Step enters the next cell; Pos, Dist and Normal describe the entered cell afterwards
func (t *GridTraverser) Step() {
	if t.nextX <= t.nextY {
		t.tileX += t.stepX
		t.dist = t.nextX
		t.normal = IntVec2{-t.stepX, 0}
		t.nextX += t.deltaX
		return
	}
	t.tileY += t.stepY
	t.dist = t.nextY
	t.normal = IntVec2{0, -t.stepY}
	t.nextY += t.deltaY
}

// Pos returns the current tile coordinates
func (t *GridTraverser) Pos() (int, int) {
	return t.tileX, t.tileY
}

// Dist returns the ray distance at which the current tile was entered, 0 for the start tile
func (t *GridTraverser) Dist() float64 {
	return t.dist
}

// Normal returns the face normal of the boundary crossed to enter the current tile
func (t *GridTraverser) Normal() IntVec2 {
	return t.normal
}

// Traverse visits every tile touched by a ray of given length, in order, starting with the start tile
// The callback returns false to stop early
func Traverse(start, fwd, origin Vec2, cellSize, length float64, callback func(x, y int) bool) {
	t := NewGridTraverser(start, fwd, origin, cellSize)
	if !callback(t.Pos()) {
		return
	}
	for t.NextDist() <= length {
		t.Step()
		if !callback(t.Pos()) {
			return
		}
	}
}
