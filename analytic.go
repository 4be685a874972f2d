package optprice

import "math"

// AnalyticEngine prices with the Black-Scholes closed form.
type AnalyticEngine struct{}

func (AnalyticEngine) Name() string {
	return "Black-Scholes"
}

func (AnalyticEngine) Price(params PricingParameters, kind OptionKind) (float64, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}
	if err := params.Validate(); err != nil {
		return 0, err
	}

	S, K, r := params.Spot, params.Strike, params.Rate
	sigma, T := params.Volatility, params.Expiry

	a := sigma * math.Sqrt(T)
	d1 := (math.Log(S/K) + (r+sigma*sigma/2)*T) / a
	d2 := d1 - a
	b := math.Exp(-r * T)

	var price float64
	if kind == Call {
		price = S*NormCdf(d1) - K*b*NormCdf(d2)
	} else {
		price = K*b*NormCdf(-d2) - S*NormCdf(-d1)
	}
	// Deep out of the money both terms vanish and the difference can round
	// below zero.
	return math.Max(0, price), nil
}

// PriceAnalytic returns the Black-Scholes value of a European option.
func PriceAnalytic(
	spot float64,
	strike float64,
	rate float64,
	volatility float64,
	expiry float64,
	kind OptionKind) (float64, error) {

	params := NewPricingParameters(spot, strike, rate, volatility, expiry)
	return AnalyticEngine{}.Price(params, kind)
}
