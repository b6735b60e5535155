package postgres

import (
	"context"
	"fmt"
	"time"
	"travel/pkg/domain"
	"travel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const bookingsTable = "bookings"

// StoreBooking inserts a new booking and returns the stored row.
func (p *PgSQL) StoreBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	row := PgBooking{}
	row.FromDomain(booking)

	var inserted []PgBooking
	err := p.Builder.Insert(bookingsTable).
		Rows(row).
		Returning(&PgBooking{}).
		Executor().
		ScanStructsContext(ctx, &inserted)
	if err != nil {
		return nil, fmt.Errorf("could not insert booking: %w", mapError(err))
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert booking returned no rows")
	}

	return inserted[0].ToDomain(), nil
}

// UpdateBooking overwrites the mutable columns of a booking.
func (p *PgSQL) UpdateBooking(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	row := PgBooking{}
	row.FromDomain(booking)

	return p.updateBooking(ctx, row.ID, goqu.Record{
		"check_in_date":    row.CheckIn,
		"check_out_date":   row.CheckOut,
		"number_of_guests": row.Guests,
		"total_price":      row.TotalPrice,
		"status":           row.Status,
		"special_requests": row.SpecialRequests,
		"updated_at":       goqu.L("NOW()"),
	})
}

// UpdateBookingStatus sets the status of a booking.
func (p *PgSQL) UpdateBookingStatus(ctx context.Context,
	ID domain.BookingID,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	return p.updateBooking(ctx, uuid.UUID(ID), goqu.Record{
		"status":     string(status),
		"updated_at": goqu.L("NOW()"),
	})
}

func (p *PgSQL) updateBooking(ctx context.Context, ID uuid.UUID, record goqu.Record) (*domain.Booking, error) {
	var row PgBooking
	found, err := p.Builder.Update(bookingsTable).
		Set(record).
		Where(goqu.I("id").Eq(ID)).
		Returning(&PgBooking{}).
		Executor().
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update booking: %w", mapError(err))
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteBooking removes a booking and its payment.
func (p *PgSQL) DeleteBooking(ctx context.Context, ID domain.BookingID) (bool, error) {
	res, err := p.Builder.Delete(bookingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// BookingByID fetches a booking by its ID. It returns nil when not found.
func (p *PgSQL) BookingByID(ctx context.Context, ID domain.BookingID) (*domain.Booking, error) {
	var row PgBooking
	found, err := p.Builder.From(bookingsTable).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch booking: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// Bookings returns a page of bookings matching the filter, newest first.
func (p *PgSQL) Bookings(ctx context.Context,
	filter storage.BookingFilter,
	cursor storage.Cursor,
	limit uint,
) (storage.Page[domain.Booking], error) {
	limit = pageSize(limit)

	q := p.Builder.From(bookingsTable)
	if filter.Status != "" {
		q = q.Where(goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.UserID != 0 {
		q = q.Where(goqu.I("user_id").Eq(int64(filter.UserID)))
	}
	if filter.ListingID != (domain.ListingID{}) {
		q = q.Where(goqu.I("listing_id").Eq(uuid.UUID(filter.ListingID)))
	}
	q = afterCursor(q, goqu.I("created_at"), goqu.I("id"), cursor)

	var rows []PgBooking
	if err := q.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.Booking]{}, fmt.Errorf("could not fetch bookings: %w", err)
	}

	return paginate(toDomain(rows, (*PgBooking).ToDomain), limit, func(b domain.Booking) storage.Cursor {
		return storage.Cursor{CreatedAt: b.CreatedAt, ID: uuid.UUID(b.ID)}
	}), nil
}

// CountOverlappingBookings counts bookings of a listing whose stay intersects
// [checkIn, checkOut).
func (p *PgSQL) CountOverlappingBookings(ctx context.Context,
	listingID domain.ListingID,
	checkIn, checkOut time.Time,
	statuses []domain.BookingStatus,
	exclude *domain.BookingID,
) (int64, error) {
	vals := make([]interface{}, 0, len(statuses))
	for _, s := range statuses {
		vals = append(vals, string(s))
	}

	q := p.Builder.From(bookingsTable).Where(
		goqu.I("listing_id").Eq(uuid.UUID(listingID)),
		goqu.I("check_in_date").Lt(pgDate(domain.Date(checkOut))),
		goqu.I("check_out_date").Gt(pgDate(domain.Date(checkIn))),
	)
	if len(vals) > 0 {
		q = q.Where(goqu.I("status").In(vals...))
	}
	if exclude != nil {
		q = q.Where(goqu.I("id").Neq(uuid.UUID(*exclude)))
	}

	n, err := q.CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count overlapping bookings: %w", err)
	}

	return n, nil
}

// ExpirePendingBookings cancels bookings awaiting payment created before cutoff.
func (p *PgSQL) ExpirePendingBookings(ctx context.Context, cutoff time.Time) ([]domain.BookingID, error) {
	var ids []uuid.UUID
	err := p.Builder.Update(bookingsTable).
		Set(goqu.Record{
			"status":     string(domain.BookingStatusCancelled),
			"updated_at": goqu.L("NOW()"),
		}).
		Where(
			goqu.I("status").Eq(string(domain.BookingStatusPaymentPending)),
			goqu.I("created_at").Lt(cutoff),
		).
		Returning("id").
		Executor().
		ScanValsContext(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("could not expire pending bookings: %w", err)
	}

	out := make([]domain.BookingID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.BookingID(id))
	}

	return out, nil
}

// BookingsCheckingInOn returns bookings in the given status checking in on day.
func (p *PgSQL) BookingsCheckingInOn(ctx context.Context,
	day time.Time,
	status domain.BookingStatus,
) ([]domain.Booking, error) {
	var rows []PgBooking
	if err := p.Builder.From(bookingsTable).
		Where(
			goqu.I("check_in_date").Eq(pgDate(domain.Date(day))),
			goqu.I("status").Eq(string(status)),
		).
		Order(goqu.I("created_at").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch bookings: %w", err)
	}

	return toDomain(rows, (*PgBooking).ToDomain), nil
}
