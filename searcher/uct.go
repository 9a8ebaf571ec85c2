package searcher

import "math"

// uct scores the children of one parent during selection.
type uct struct {
	numerator float64
}

// newUCT takes the parent's visit count N, which must be positive.
func newUCT(cSquared float64, N float64) *uct {
	if N <= 0 {
		panic("N must be positive")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

// evaluate returns q/n + sqrt(c^2*ln(N)/n) for a child with total reward q over n visits.
func (u uct) evaluate(q float64, n float64) float64 {
	if n <= 0 {
		panic("n must be positive")
	}
	return q/n + math.Sqrt(u.numerator/n)
}
