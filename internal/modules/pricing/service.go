// README: Pricing service computes booking prices and booking references.
package pricing

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Quote computes the final price and its pay-now / pay-at-desk split.
// The commission is collected up front; payment at the desk equals the
// net rate. PayNow is derived by subtracting the net price from the
// already-rounded final price, never rounded on its own, so that
// PayNow + PayAtDesk == FinalPrice holds at two decimals.
func (s *Service) Quote(netPrice decimal.Decimal, commissionPercent float64) Computed {
	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(commissionPercent).Div(hundred))
	finalPrice := netPrice.Mul(multiplier).Round(2)
	return Computed{
		FinalPrice: finalPrice,
		PayNow:     finalPrice.Sub(netPrice),
		PayAtDesk:  netPrice,
	}
}

// NewReference returns a booking reference of the form "H" followed by a
// uniformly random six-digit number. Uniqueness is the store's concern.
func (s *Service) NewReference() string {
	return fmt.Sprintf("H%d", 100000+rand.Intn(900000))
}
