package optprice

import (
	"fmt"
	"math"
)

// PricingParameters is the parameter contract shared by both engines.
type PricingParameters struct {
	Spot       float64 // S
	Strike     float64 // K
	Rate       float64 // r, continuously compounded, annual
	Volatility float64 // sigma, annual, as a decimal
	Expiry     float64 // T, in years
}

func NewPricingParameters(
	spot float64,
	strike float64,
	rate float64,
	volatility float64,
	expiry float64) PricingParameters {

	return PricingParameters{
		Spot:       spot,
		Strike:     strike,
		Rate:       rate,
		Volatility: volatility,
		Expiry:     expiry,
	}
}

// WithVolatility returns a copy of the parameters with sigma replaced.
func (self PricingParameters) WithVolatility(volatility float64) PricingParameters {
	self.Volatility = volatility
	return self
}

// Validate checks the preconditions of both engines. Sigma and T appear in
// denominators, so zero is rejected rather than allowed to produce NaN.
func (self PricingParameters) Validate() error {
	fields := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"spot", self.Spot, true},
		{"strike", self.Strike, true},
		{"rate", self.Rate, false},
		{"volatility", self.Volatility, true},
		{"expiry", self.Expiry, true},
	}
	for _, field := range fields {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return fmt.Errorf("%w: %s=%v is not finite",
				ErrInvalidParameter, field.name, field.value)
		}
		if field.positive && field.value <= 0 {
			return fmt.Errorf("%w: %s=%v must be greater than 0",
				ErrInvalidParameter, field.name, field.value)
		}
	}
	return nil
}

// DiscountFactor returns e^(-rT).
func (self PricingParameters) DiscountFactor() float64 {
	return math.Exp(-self.Rate * self.Expiry)
}

// ForwardIntrinsic is max(0, S - K*e^(-rT)) for a call and
// max(0, K*e^(-rT) - S) for a put: the zero-volatility limit of the price.
func (self PricingParameters) ForwardIntrinsic(kind OptionKind) float64 {
	pvStrike := self.Strike * self.DiscountFactor()
	if kind == Put {
		return math.Max(0, pvStrike-self.Spot)
	}
	return math.Max(0, self.Spot-pvStrike)
}
