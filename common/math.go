package common

// LerpInt is integer linear interpolation of x in [x0, x1] onto [fx0, fx1].
func LerpInt(x, x0, x1, fx0, fx1 int) int {
	if x1 == x0 {
		return fx0
	}
	return fx0 + (fx1-fx0)*(x-x0)/(x1-x0)
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
