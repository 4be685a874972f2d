package optprice

import "errors"

var (
	// ErrInvalidOptionKind is returned when the kind is neither Call nor Put.
	ErrInvalidOptionKind = errors.New("invalid option kind")

	// ErrInvalidParameter is returned when spot, strike, volatility or expiry is
	// not strictly positive, or when any parameter is NaN or infinite.
	ErrInvalidParameter = errors.New("invalid pricing parameter")

	// ErrInvalidStepCount is returned by the lattice engine when N < 1.
	ErrInvalidStepCount = errors.New("invalid lattice step count")

	// ErrArbitrageViolation is returned when the lattice factors imply a
	// risk-neutral probability outside [0, 1], i.e. d < e^(r*dt) < u fails.
	ErrArbitrageViolation = errors.New("lattice admits arbitrage")
)
