package pricing

import (
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
)

func TestService_Quote(t *testing.T) {
	tests := []struct {
		name       string
		netPrice   string
		commission float64
		wantFinal  string
		wantPayNow string
	}{
		{
			name:     "reference case 100 at 15%",
			netPrice: "100.00", commission: 15,
			wantFinal: "115.00", wantPayNow: "15.00",
		},
		{
			name:     "zero commission keeps net price",
			netPrice: "80.50", commission: 0,
			wantFinal: "80.50", wantPayNow: "0",
		},
		{
			name:     "zero net price",
			netPrice: "0", commission: 25,
			wantFinal: "0", wantPayNow: "0",
		},
		{
			name:     "final price rounds half-up",
			netPrice: "10.00", commission: 1.25,
			// 10.00 * 1.0125 = 10.125 -> 10.13
			wantFinal: "10.13", wantPayNow: "0.13",
		},
		{
			name:     "commission derived from rounded final",
			netPrice: "33.33", commission: 10,
			// 33.33 * 1.1 = 36.663 -> 36.66; payNow = 36.66 - 33.33
			wantFinal: "36.66", wantPayNow: "3.33",
		},
		{
			name:     "fractional commission percent",
			netPrice: "99.99", commission: 12.5,
			// 99.99 * 1.125 = 112.48875 -> 112.49
			wantFinal: "112.49", wantPayNow: "12.50",
		},
	}

	s := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := decimal.RequireFromString(tt.netPrice)
			got := s.Quote(net, tt.commission)

			if want := decimal.RequireFromString(tt.wantFinal); !got.FinalPrice.Equal(want) {
				t.Errorf("FinalPrice = %s, want %s", got.FinalPrice, want)
			}
			if want := decimal.RequireFromString(tt.wantPayNow); !got.PayNow.Equal(want) {
				t.Errorf("PayNow = %s, want %s", got.PayNow, want)
			}
			if !got.PayAtDesk.Equal(net) {
				t.Errorf("PayAtDesk = %s, want net price %s", got.PayAtDesk, net)
			}
			if sum := got.PayNow.Add(got.PayAtDesk); !sum.Equal(got.FinalPrice) {
				t.Errorf("PayNow + PayAtDesk = %s, want FinalPrice %s", sum, got.FinalPrice)
			}
		})
	}
}

// The additive invariant must hold for arbitrary non-negative inputs, not
// just hand-picked ones.
func TestService_Quote_AdditiveInvariant(t *testing.T) {
	s := NewService()
	for i := 0; i < 1000; i++ {
		net := decimal.NewFromFloat(rand.Float64() * 5000).Round(2)
		commission := rand.Float64() * 40

		got := s.Quote(net, commission)
		if sum := got.PayNow.Add(got.PayAtDesk); !sum.Equal(got.FinalPrice) {
			t.Fatalf("net=%s commission=%v: PayNow(%s) + PayAtDesk(%s) != FinalPrice(%s)",
				net, commission, got.PayNow, got.PayAtDesk, got.FinalPrice)
		}
		if !got.PayAtDesk.Equal(net) {
			t.Fatalf("net=%s: PayAtDesk = %s", net, got.PayAtDesk)
		}
	}
}

func TestService_NewReference(t *testing.T) {
	s := NewService()
	pattern := regexp.MustCompile(`^H\d{6}$`)

	for i := 0; i < 1000; i++ {
		ref := s.NewReference()
		if !pattern.MatchString(ref) {
			t.Fatalf("reference %q does not match H + 6 digits", ref)
		}
		n, err := strconv.Atoi(ref[1:])
		if err != nil {
			t.Fatalf("reference %q: %v", ref, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("reference number %d outside [100000, 999999]", n)
		}
	}
}
