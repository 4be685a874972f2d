package optprice

import (
	"fmt"
	"math"
)

const (
	// MaxPracticalSteps is the largest step count the lattice is tuned for.
	// Beyond it the O(N^2) cost dominates and the per-step factors approach 1
	// closely enough that round-off, not discretisation, limits accuracy.
	// It is not enforced.
	MaxPracticalSteps = 10000

	// DefaultSteps matches the granularity of the volatility report.
	DefaultSteps = 100
)

// LatticeConfig controls the discretisation of the binomial tree.
type LatticeConfig struct {
	Steps int // N
}

func (self LatticeConfig) Validate() error {
	if self.Steps <= 0 {
		return fmt.Errorf("%w: N=%d must be at least 1",
			ErrInvalidStepCount, self.Steps)
	}
	// The tree holds N+1 terminal nodes.
	if self.Steps >= math.MaxInt {
		return fmt.Errorf("%w: N=%d leaves no room for N+1 nodes",
			ErrInvalidStepCount, self.Steps)
	}
	return nil
}

// LatticeEngine prices with a recombining Cox-Ross-Rubinstein binomial tree.
type LatticeEngine struct {
	Config LatticeConfig
}

func NewLatticeEngine(steps int) LatticeEngine {
	return LatticeEngine{Config: LatticeConfig{Steps: steps}}
}

func (self LatticeEngine) Name() string {
	return fmt.Sprintf("Binomial(N=%d)", self.Config.Steps)
}

func (self LatticeEngine) Price(params PricingParameters, kind OptionKind) (float64, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if err := self.Config.Validate(); err != nil {
		return 0, err
	}

	N := self.Config.Steps
	S, K, r := params.Spot, params.Strike, params.Rate
	dt := params.Expiry / float64(N)

	// d = 1/u keeps the tree recombining: N+1 nodes at depth N.
	step := params.Volatility * math.Sqrt(dt)
	u := math.Exp(step)
	d := 1 / u
	growth := math.Exp(r * dt)
	if !(d < growth && growth < u) {
		return 0, fmt.Errorf("%w: d=%v, e^(r*dt)=%v, u=%v with N=%d "+
			"(at least %d steps needed)", ErrArbitrageViolation, d, growth, u, N,
			MinArbitrageFreeSteps(r, params.Volatility, params.Expiry))
	}
	p := (growth - d) / (u - d)
	q := 1 - p
	discount := math.Exp(-r * dt)

	// S*u^j*d^(N-j) == S*e^(step*(2j-N)); the exponential form avoids
	// computing large powers separately.
	values := make([]float64, N+1)
	for j := 0; j <= N; j++ {
		price := S * math.Exp(step*float64(2*j-N))
		if kind == Call {
			values[j] = math.Max(0, price-K)
		} else {
			values[j] = math.Max(0, K-price)
		}
	}

	// Level i only needs level i+1, so values is overwritten in place.
	for i := N - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			values[j] = discount * (p*values[j+1] + q*values[j])
		}
	}
	return values[0], nil
}

// PriceLattice returns the N-step binomial value of a European option.
func PriceLattice(
	spot float64,
	strike float64,
	rate float64,
	volatility float64,
	expiry float64,
	steps int,
	kind OptionKind) (float64, error) {

	params := NewPricingParameters(spot, strike, rate, volatility, expiry)
	return NewLatticeEngine(steps).Price(params, kind)
}

// MinArbitrageFreeSteps returns the smallest N for which the CRR factors
// satisfy d < e^(r*T/N) < u. That holds iff sigma*sqrt(dt) > |r|*dt, i.e.
// N > T*(r/sigma)^2. It returns 0 when sigma or T is not positive.
func MinArbitrageFreeSteps(rate float64, volatility float64, expiry float64) int {
	if volatility <= 0 || expiry <= 0 {
		return 0
	}
	bound := expiry * (rate / volatility) * (rate / volatility)
	if bound >= math.MaxInt-1 {
		return math.MaxInt
	}
	n := int(math.Floor(bound)) + 1
	if n < 1 {
		n = 1
	}
	return n
}
