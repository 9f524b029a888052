// README: Pricing breakdown returned for a booking quote.
package pricing

import "github.com/shopspring/decimal"

// Computed is the customer-facing price decomposition for a quote.
// PayNow + PayAtDesk always equals FinalPrice exactly at two decimals.
type Computed struct {
	FinalPrice decimal.Decimal
	PayNow     decimal.Decimal
	PayAtDesk  decimal.Decimal
}
