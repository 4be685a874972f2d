package optprice

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPriceAnalytic_ReferenceCase(t *testing.T) {
	call, err := PriceAnalytic(100, 100, 0.05, 0.2, 1, Call)
	if err != nil {
		t.Fatalf("call err: %v", err)
	}
	put, err := PriceAnalytic(100, 100, 0.05, 0.2, 1, Put)
	if err != nil {
		t.Fatalf("put err: %v", err)
	}
	if !scalar.EqualWithinAbs(call, 10.450583572185565, 1e-9) {
		t.Errorf("call price = %v, want 10.450583572185565", call)
	}
	if !scalar.EqualWithinAbs(put, 5.573526022256971, 1e-9) {
		t.Errorf("put price = %v, want 5.573526022256971", put)
	}
}

func TestPriceAnalytic_PutCallParity(t *testing.T) {
	for _, S := range []float64{50, 95, 100, 140} {
		for _, K := range []float64{60, 95, 130} {
			for _, r := range []float64{-0.01, 0, 0.05, 0.2} {
				for _, sigma := range []float64{0.05, 0.2, 0.6, 1.5} {
					for _, T := range []float64{0.1, 1, 5} {
						call, err := PriceAnalytic(S, K, r, sigma, T, Call)
						if err != nil {
							t.Fatal(err)
						}
						put, err := PriceAnalytic(S, K, r, sigma, T, Put)
						if err != nil {
							t.Fatal(err)
						}
						want := S - K*math.Exp(-r*T)
						if !scalar.EqualWithinAbsOrRel(call-put, want, 1e-9*math.Max(S, K), 1e-9) {
							t.Errorf("S=%v K=%v r=%v sigma=%v T=%v: C-P=%v, want %v",
								S, K, r, sigma, T, call-put, want)
						}
					}
				}
			}
		}
	}
}

func TestPriceAnalytic_Monotonicity(t *testing.T) {
	for _, kind := range []OptionKind{Call, Put} {
		prev := -1.0
		for sigma := 0.05; sigma <= 1.5; sigma += 0.05 {
			price, err := PriceAnalytic(100, 95, 0.05, sigma, 1, kind)
			if err != nil {
				t.Fatal(err)
			}
			if price < prev-1e-12 {
				t.Errorf("%s price decreased in sigma at %v: %v < %v", kind, sigma, price, prev)
			}
			prev = price
		}
	}

	prevCall, prevPut := -1.0, math.Inf(1)
	for S := 50.0; S <= 150; S += 2.5 {
		call, err := PriceAnalytic(S, 95, 0.05, 0.2, 1, Call)
		if err != nil {
			t.Fatal(err)
		}
		put, err := PriceAnalytic(S, 95, 0.05, 0.2, 1, Put)
		if err != nil {
			t.Fatal(err)
		}
		if call < prevCall-1e-12 {
			t.Errorf("call price decreased in S at %v", S)
		}
		if put > prevPut+1e-12 {
			t.Errorf("put price increased in S at %v", S)
		}
		prevCall, prevPut = call, put
	}
}

func TestPriceAnalytic_NonNegative(t *testing.T) {
	// Far out of the money in both directions.
	cases := [][5]float64{
		{1, 1000, 0.05, 0.05, 0.01},
		{1000, 1, 0.05, 0.05, 0.01},
		{100, 95, 0.3, 0.01, 10},
	}
	for _, c := range cases {
		for _, kind := range []OptionKind{Call, Put} {
			price, err := PriceAnalytic(c[0], c[1], c[2], c[3], c[4], kind)
			if err != nil {
				t.Fatal(err)
			}
			if price < 0 || math.IsNaN(price) {
				t.Errorf("%v %s price = %v, want >= 0", c, kind, price)
			}
		}
	}
}

func TestPriceAnalytic_Errors(t *testing.T) {
	if _, err := PriceAnalytic(100, 95, 0.05, 0.2, 1, OptionKind(99)); !errors.Is(err, ErrInvalidOptionKind) {
		t.Errorf("invalid kind error = %v, want ErrInvalidOptionKind", err)
	}
	if _, err := PriceAnalytic(100, 95, 0.05, 0, 1, Call); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("sigma=0 error = %v, want ErrInvalidParameter", err)
	}
	if _, err := PriceAnalytic(100, 95, 0.05, 0.2, 0, Put); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("T=0 error = %v, want ErrInvalidParameter", err)
	}
	price, err := PriceAnalytic(100, 95, 0.05, 0, 1, Call)
	if err == nil || math.IsNaN(price) {
		t.Errorf("sigma=0 must fail without NaN, got price=%v err=%v", price, err)
	}
}
