package vmath

// EasingFunc maps a normalized parameter in [0,1] to an eased value, f(0)=0 and f(1)=1
type EasingFunc func(t float64) float64

func SmoothStart2(t float64) float64 { return t * t }
func SmoothStart3(t float64) float64 { return t * t * t }
func SmoothStart4(t float64) float64 { return t * t * t * t }
func SmoothStart5(t float64) float64 { return t * t * t * t * t }
func SmoothStart6(t float64) float64 { return t * t * t * t * t * t }

func SmoothEnd2(t float64) float64 { return 1 - SmoothStart2(1-t) }
func SmoothEnd3(t float64) float64 { return 1 - SmoothStart3(1-t) }
func SmoothEnd4(t float64) float64 { return 1 - SmoothStart4(1-t) }
func SmoothEnd5(t float64) float64 { return 1 - SmoothStart5(1-t) }
func SmoothEnd6(t float64) float64 { return 1 - SmoothStart6(1-t) }

// SmoothStep3 is ease-in-out cubic, 3t^2 - 2t^3
func SmoothStep3(t float64) float64 {
	return t * t * (3 - 2*t)
}

// SmoothStep5 is ease-in-out quintic, 6t^5 - 15t^4 + 10t^3
func SmoothStep5(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Hesitate3 is the cubic Bezier through control values 0,1,0,1
func Hesitate3(t float64) float64 {
	return CubicBezier1D(0, 1, 0, 1, t)
}

// Hesitate5 is the quintic Bezier through control values 0,1,0,1,0,1
func Hesitate5(t float64) float64 {
	return QuinticBezier1D(0, 1, 0, 1, 0, 1, t)
}

// BounceEndBezier5 overshoots past 1 twice before settling
func BounceEndBezier5(t float64) float64 {
	return QuinticBezier1D(0, 0.5, 1.4, 0.7, 1.2, 1, t)
}

// CubicBezier1D evaluates a 1D cubic Bezier in Bernstein form
func CubicBezier1D(a, b, c, d, t float64) float64 {
	s := 1 - t
	return s*s*s*a + 3*s*s*t*b + 3*s*t*t*c + t*t*t*d
}

// QuinticBezier1D evaluates a 1D quintic Bezier in Bernstein form
func QuinticBezier1D(a, b, c, d, e, f, t float64) float64 {
	s := 1 - t
	s2, t2 := s*s, t*t
	return s2*s2*s*a +
		5*s2*s2*t*b +
		10*s2*s*t2*c +
		10*s2*t2*t*d +
		5*s*t2*t2*e +
		t2*t2*t*f
}

// NamedEasing pairs an easing function with its display name
type NamedEasing struct {
	Name string
	Func EasingFunc
}

// Easings is the ordered table cycled by the curves scene
var Easings = []NamedEasing{
	{"SmoothStart2 (EaseInQuadratic)", SmoothStart2},
	{"SmoothStart3 (EaseInCubic)", SmoothStart3},
	{"SmoothStart4 (EaseInQuartic)", SmoothStart4},
	{"SmoothStart5 (EaseInQuintic)", SmoothStart5},
	{"SmoothStart6 (EaseInSextic)", SmoothStart6},
	{"SmoothEnd2 (EaseOutQuadratic)", SmoothEnd2},
	{"SmoothEnd3 (EaseOutCubic)", SmoothEnd3},
	{"SmoothEnd4 (EaseOutQuartic)", SmoothEnd4},
	{"SmoothEnd5 (EaseOutQuintic)", SmoothEnd5},
	{"SmoothEnd6 (EaseOutSextic)", SmoothEnd6},
	{"SmoothStep3 (EaseInOutCubic)", SmoothStep3},
	{"SmoothStep5 (EaseInOutQuintic)", SmoothStep5},
	{"Hesitate3", Hesitate3},
	{"Hesitate5", Hesitate5},
	{"Funky BounceEnd", BounceEndBezier5},
}
