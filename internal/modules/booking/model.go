// README: Booking entity; written once on creation, never mutated here.
package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The web client reads price fields as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID         int64  `json:"id"`
	BookingRef string `json:"bookingRef"`

	SupplierID   int64  `json:"supplierId"`
	SupplierName string `json:"supplierName"`
	PickupCode   string `json:"pickupCode"`
	DropoffCode  string `json:"dropoffCode"`
	PickupDate   string `json:"pickupDate"`
	DropoffDate  string `json:"dropoffDate"`

	Currency          string          `json:"currency"`
	NetPrice          decimal.Decimal `json:"netPrice"`
	CommissionPercent float64         `json:"commissionPercent"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	FinalPrice decimal.Decimal `json:"finalPrice"`
	PayNow     decimal.Decimal `json:"payNow"`
	PayAtDesk  decimal.Decimal `json:"payAtDesk"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
