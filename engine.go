package optprice

// Engine prices a European option from the shared parameter contract.
// Implementations are pure and safe for concurrent use.
type Engine interface {
	Name() string
	Price(params PricingParameters, kind OptionKind) (float64, error)
}

var (
	_ Engine = AnalyticEngine{}
	_ Engine = LatticeEngine{}
)
