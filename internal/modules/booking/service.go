// README: Booking service; prices the quote, assigns a reference, persists.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"hogicar/internal/modules/pricing"
)

var (
	ErrNotFound   = errors.New("booking not found")
	ErrBadRequest = errors.New("bad request")

	// ErrRefTaken is returned by the store when the generated booking
	// reference collides with an existing row.
	ErrRefTaken = errors.New("booking reference already taken")
)

// maxRefAttempts bounds the re-roll loop on reference collisions.
const maxRefAttempts = 3

type Pricing interface {
	Quote(netPrice decimal.Decimal, commissionPercent float64) pricing.Computed
	NewReference() string
}

type Store interface {
	Insert(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	GetByRef(ctx context.Context, ref string) (*Booking, error)
}

type Service struct {
	store   Store
	pricing Pricing
	log     *zap.Logger
}

func NewService(store Store, pricing Pricing, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, pricing: pricing, log: log}
}

type CreateCommand struct {
	SupplierID   int64
	SupplierName string
	PickupCode   string
	DropoffCode  string
	PickupDate   string
	DropoffDate  string

	Currency          string
	NetPrice          decimal.Decimal
	CommissionPercent float64

	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Create prices the quote, assigns a reference and persists the booking
// with status "confirmed". A reference collision on insert triggers a
// re-roll with a fresh reference, bounded by maxRefAttempts.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.FirstName == "" || cmd.Email == "" {
		return nil, ErrBadRequest
	}
	if cmd.NetPrice.IsNegative() {
		return nil, ErrBadRequest
	}

	computed := s.pricing.Quote(cmd.NetPrice, cmd.CommissionPercent)

	for attempt := 1; attempt <= maxRefAttempts; attempt++ {
		b := &Booking{
			BookingRef:        s.pricing.NewReference(),
			SupplierID:        cmd.SupplierID,
			SupplierName:      cmd.SupplierName,
			PickupCode:        cmd.PickupCode,
			DropoffCode:       cmd.DropoffCode,
			PickupDate:        cmd.PickupDate,
			DropoffDate:       cmd.DropoffDate,
			Currency:          cmd.Currency,
			NetPrice:          cmd.NetPrice,
			CommissionPercent: cmd.CommissionPercent,
			FirstName:         cmd.FirstName,
			LastName:          cmd.LastName,
			Email:             cmd.Email,
			Phone:             cmd.Phone,
			FinalPrice:        computed.FinalPrice,
			PayNow:            computed.PayNow,
			PayAtDesk:         computed.PayAtDesk,
			Status:            StatusConfirmed,
		}
		err := s.store.Insert(ctx, b)
		if errors.Is(err, ErrRefTaken) {
			s.log.Warn("booking reference collision, re-rolling",
				zap.String("booking_ref", b.BookingRef), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, fmt.Errorf("create booking: reference collision persisted after %d attempts", maxRefAttempts)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) GetByRef(ctx context.Context, ref string) (*Booking, error) {
	return s.store.GetByRef(ctx, ref)
}
