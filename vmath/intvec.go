package vmath

// IntVec2 addresses tiles and grid dimensions
type IntVec2 struct {
	X, Y int
}

// Add returns component-wise sum
func (v IntVec2) Add(o IntVec2) IntVec2 {
	return IntVec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns component-wise difference
func (v IntVec2) Sub(o IntVec2) IntVec2 {
	return IntVec2{v.X - o.X, v.Y - o.Y}
}

// ToVec2 converts to float vector
func (v IntVec2) ToVec2() Vec2 {
	return Vec2{float64(v.X), float64(v.Y)}
}

// Area returns X*Y
func (v IntVec2) Area() int {
	return v.X * v.Y
}

// TaxicabLength returns |X| + |Y|
func (v IntVec2) TaxicabLength() int {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}
