// Package number maps the finite sentinels used in matrix files to and from
// IEEE infinities.
package number

import "math"

// Sentinel stands in for an infinite value in files that cannot spell Inf.
const Sentinel = 1e308

// Decode maps Sentinel to +Inf and -Sentinel to -Inf and returns any other
// value unchanged.
func Decode(v float64) float64 {
	switch v {
	case Sentinel:
		return math.Inf(1)
	case -Sentinel:
		return math.Inf(-1)
	}
	return v
}

// Encode is the writer side of Decode. NaN has no encoding of its own and is
// written as +Sentinel.
func Encode(v float64) float64 {
	switch {
	case math.IsNaN(v), math.IsInf(v, 1):
		return Sentinel
	case math.IsInf(v, -1):
		return -Sentinel
	}
	return v
}

// DecodeAll applies Decode to xs in place.
func DecodeAll(xs []float64) {
	for i, v := range xs {
		xs[i] = Decode(v)
	}
}
