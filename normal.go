package optprice

import "gonum.org/v1/gonum/stat/distuv"

// NormCdf returns the probability that a standard normal variable is less than
// or equal to x, (1 + erf(x/sqrt2)) / 2.
func NormCdf(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}
