package anim

// Easing remaps normalized stage time to the alpha passed to an
// animation's Update. Inputs outside [0, 1] are clamped first.
type Easing func(t float64) float64

// Linear keeps time unwarped.
func Linear(t float64) float64 { return clamp01(t) }

// Smooth is the default easing: the smootherstep curve, with zero first
// and second derivatives at both ends.
func Smooth(t float64) float64 {
	t = clamp01(t)
	return t * t * t * (t*(6*t-15) + 10)
}

// EaseIn starts slow and accelerates.
func EaseIn(t float64) float64 {
	t = clamp01(t)
	return t * t * t
}

// EaseOut starts fast and decelerates.
func EaseOut(t float64) float64 {
	u := 1 - clamp01(t)
	return 1 - u*u*u
}

// EaseInOut accelerates through the first half and decelerates through
// the second.
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2 - 2*t
	return 1 - u*u*u/2
}

// ThereAndBack rises smoothly to 1 at the midpoint and returns to 0,
// for animations that should end where they began.
func ThereAndBack(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 - 2*t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
