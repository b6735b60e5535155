package postgres

import (
	"context"
	"fmt"
	"travel/pkg/domain"
	"travel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const paymentsTable = "payments"

// StorePayment inserts a new payment and returns the stored row.
func (p *PgSQL) StorePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	row := PgPayment{}
	row.FromDomain(payment)

	var inserted []PgPayment
	err := p.Builder.Insert(paymentsTable).
		Rows(row).
		Returning(&PgPayment{}).
		Executor().
		ScanStructsContext(ctx, &inserted)
	if err != nil {
		return nil, fmt.Errorf("could not insert payment: %w", mapError(err))
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert payment returned no rows")
	}

	return inserted[0].ToDomain(), nil
}

// UpdatePayment overwrites the mutable columns of a payment.
func (p *PgSQL) UpdatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	row := PgPayment{}
	row.FromDomain(payment)

	var updated PgPayment
	found, err := p.Builder.Update(paymentsTable).
		Set(goqu.Record{
			"amount":               row.Amount,
			"currency":             row.Currency,
			"status":               row.Status,
			"payment_method":       row.Method,
			"chapa_transaction_id": row.TransactionID,
			"chapa_checkout_url":   row.CheckoutURL,
			"chapa_reference":      row.Reference,
			"customer_email":       row.CustomerEmail,
			"customer_phone":       row.CustomerPhone,
			"customer_name":        row.CustomerName,
			"payment_date":         row.PaymentDate,
			"failure_reason":       row.FailureReason,
			"webhook_data":         row.WebhookData,
			"updated_at":           goqu.L("NOW()"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgPayment{}).
		Executor().
		ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("could not update payment: %w", mapError(err))
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return updated.ToDomain(), nil
}

// PaymentByID fetches a payment by its ID. It returns nil when not found.
func (p *PgSQL) PaymentByID(ctx context.Context, ID domain.PaymentID) (*domain.Payment, error) {
	return p.paymentBy(ctx, goqu.I("id").Eq(uuid.UUID(ID)))
}

// PaymentByReference fetches a payment by its gateway reference.
func (p *PgSQL) PaymentByReference(ctx context.Context, reference string) (*domain.Payment, error) {
	return p.paymentBy(ctx, goqu.I("chapa_reference").Eq(reference))
}

// PaymentByBookingID fetches the payment of a booking.
func (p *PgSQL) PaymentByBookingID(ctx context.Context, bookingID domain.BookingID) (*domain.Payment, error) {
	return p.paymentBy(ctx, goqu.I("booking_id").Eq(uuid.UUID(bookingID)))
}

// PaymentsByBookingIDs returns the payments of the given bookings.
func (p *PgSQL) PaymentsByBookingIDs(ctx context.Context, bookingIDs ...domain.BookingID) ([]domain.Payment, error) {
	if len(bookingIDs) == 0 {
		return []domain.Payment{}, nil
	}
	vals := make([]interface{}, 0, len(bookingIDs))
	for _, id := range bookingIDs {
		vals = append(vals, uuid.UUID(id))
	}

	var rows []PgPayment
	if err := p.Builder.From(paymentsTable).
		Where(goqu.I("booking_id").In(vals...)).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch payments: %w", err)
	}

	return toDomain(rows, (*PgPayment).ToDomain), nil
}

func (p *PgSQL) paymentBy(ctx context.Context, cond goqu.Expression) (*domain.Payment, error) {
	var row PgPayment
	found, err := p.Builder.From(paymentsTable).
		Where(cond).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// Payments returns a page of payments matching the filter, newest first.
func (p *PgSQL) Payments(ctx context.Context,
	filter storage.PaymentFilter,
	cursor storage.Cursor,
	limit uint,
) (storage.Page[domain.Payment], error) {
	limit = pageSize(limit)

	q := p.Builder.From(paymentsTable)
	if filter.Status != "" {
		q = q.Where(goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.BookingID != (domain.BookingID{}) {
		q = q.Where(goqu.I("booking_id").Eq(uuid.UUID(filter.BookingID)))
	}
	q = afterCursor(q, goqu.I("created_at"), goqu.I("id"), cursor)

	var rows []PgPayment
	if err := q.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Payment]{}, fmt.Errorf("could not fetch payments: %w", err)
	}

	return paginate(toDomain(rows, (*PgPayment).ToDomain), limit, func(pm domain.Payment) storage.Cursor {
		return storage.Cursor{CreatedAt: pm.CreatedAt, ID: uuid.UUID(pm.ID)}
	}), nil
}

// CancelPendingPayments cancels the unsettled payments of the given bookings.
func (p *PgSQL) CancelPendingPayments(ctx context.Context, bookingIDs ...domain.BookingID) (int64, error) {
	if len(bookingIDs) == 0 {
		return 0, nil
	}
	vals := make([]interface{}, 0, len(bookingIDs))
	for _, id := range bookingIDs {
		vals = append(vals, uuid.UUID(id))
	}

	res, err := p.Builder.Update(paymentsTable).
		Set(goqu.Record{
			"status":     string(domain.PaymentStatusCancelled),
			"updated_at": goqu.L("NOW()"),
		}).
		Where(
			goqu.I("booking_id").In(vals...),
			goqu.I("status").In(string(domain.PaymentStatusPending), string(domain.PaymentStatusProcessing)),
		).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not cancel pending payments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
