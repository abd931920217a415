package common

import "cmp"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// LerpInt interpolates between two integers, rounding to the nearest value.
// t is clamped to [0, 1].
func LerpInt(a, b int, t float32) int {
	t = Clamp(t, 0, 1)
	v := Lerp(float32(a), float32(b), t)
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
