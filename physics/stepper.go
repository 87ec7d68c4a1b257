package physics

// Stepper drives a step function from frame deltas
// Fixed mode accumulates owed seconds and drains them in whole Step increments, carrying the
// remainder. Variable mode steps once by everything owed
type Stepper struct {
	Fixed bool
	Step  float64
	Owed  float64
}

func NewStepper(fixed bool, step float64) *Stepper {
	return &Stepper{Fixed: fixed, Step: step}
}

// Advance adds dt to the owed time and runs step, returning the number of calls made
// A non-positive fixed step falls back to one variable step
func (s *Stepper) Advance(dt float64, step func(float64)) int {
	s.Owed += dt

	if !s.Fixed || s.Step <= 0 {
		step(s.Owed)
		s.Owed = 0
		return 1
	}

	n := 0
	for s.Owed >= s.Step {
		step(s.Step)
		s.Owed -= s.Step
		n++
	}
	return n
}

// Toggle switches between fixed and variable mode
func (s *Stepper) Toggle() {
	s.Fixed = !s.Fixed
}

// ScaleStep multiplies the fixed step by factor
func (s *Stepper) ScaleStep(factor float64) {
	if factor > 0 {
		s.Step *= factor
	}
}
