// README: Booking store backed by PostgreSQL (insert and keyed lookups only).
package booking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// pgUniqueViolation is the SQLSTATE raised by the unique index on booking_ref.
const pgUniqueViolation = "23505"

type pgStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Insert(ctx context.Context, b *Booking) error {
	row := s.db.QueryRow(ctx, `
        INSERT INTO bookings (
            booking_ref, supplier_id, supplier_name,
            pickup_code, dropoff_code, pickup_date, dropoff_date,
            currency, net_price, commission_percent,
            first_name, last_name, email, phone,
            final_price, pay_now, pay_at_desk, status
        ) VALUES (
            $1, $2, $3,
            $4, $5, $6, $7,
            $8, $9, $10,
            $11, $12, $13, $14,
            $15, $16, $17, $18
        )
        RETURNING id, created_at`,
		b.BookingRef, b.SupplierID, b.SupplierName,
		b.PickupCode, b.DropoffCode, b.PickupDate, b.DropoffDate,
		b.Currency, b.NetPrice.StringFixed(2), b.CommissionPercent,
		b.FirstName, b.LastName, b.Email, b.Phone,
		b.FinalPrice.StringFixed(2), b.PayNow.StringFixed(2), b.PayAtDesk.StringFixed(2),
		string(b.Status),
	)
	err := row.Scan(&b.ID, &b.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrRefTaken
	}
	return err
}

func (s *pgStore) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.get(ctx, `WHERE id = $1`, id)
}

func (s *pgStore) GetByRef(ctx context.Context, ref string) (*Booking, error) {
	return s.get(ctx, `WHERE booking_ref = $1`, ref)
}

func (s *pgStore) get(ctx context.Context, where string, arg any) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, booking_ref, supplier_id, supplier_name,
               pickup_code, dropoff_code, pickup_date, dropoff_date,
               currency, net_price::text, commission_percent,
               first_name, last_name, email, phone,
               final_price::text, pay_now::text, pay_at_desk::text,
               status, created_at
        FROM bookings `+where, arg,
	)

	var b Booking
	var netPrice, finalPrice, payNow, payAtDesk string
	err := row.Scan(
		&b.ID, &b.BookingRef, &b.SupplierID, &b.SupplierName,
		&b.PickupCode, &b.DropoffCode, &b.PickupDate, &b.DropoffDate,
		&b.Currency, &netPrice, &b.CommissionPercent,
		&b.FirstName, &b.LastName, &b.Email, &b.Phone,
		&finalPrice, &payNow, &payAtDesk,
		&b.Status, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if b.NetPrice, err = decimal.NewFromString(netPrice); err != nil {
		return nil, err
	}
	if b.FinalPrice, err = decimal.NewFromString(finalPrice); err != nil {
		return nil, err
	}
	if b.PayNow, err = decimal.NewFromString(payNow); err != nil {
		return nil, err
	}
	if b.PayAtDesk, err = decimal.NewFromString(payAtDesk); err != nil {
		return nil, err
	}
	return &b, nil
}
