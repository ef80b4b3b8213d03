package editors

// StepperFloor is the smallest value a stepper holds.
const StepperFloor = 1

// Stepper is a counter that never goes below StepperFloor.
type Stepper struct {
	Value int
}

// NewStepper lifts v to the floor when it is below it.
func NewStepper(v int) Stepper {
	if v < StepperFloor {
		v = StepperFloor
	}
	return Stepper{Value: v}
}

func (s *Stepper) Increment() {
	s.Value++
}

// Decrement is a no-op at the floor and reports whether the value changed.
func (s *Stepper) Decrement() bool {
	if !s.CanDecrement() {
		return false
	}
	s.Value--
	return true
}

// CanDecrement drives the disabled state of the minus control.
func (s Stepper) CanDecrement() bool {
	return s.Value > StepperFloor
}
