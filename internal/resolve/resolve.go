// Package resolve fills in the related entities of domain records read from
// storage, batching lookups per relation.
package resolve

import (
	"context"
	"fmt"
	"travel/pkg/domain"
	"travel/pkg/storage"
)

// Listings sets the Host of every listing.
func Listings(ctx context.Context, st storage.AllStorage, listings []domain.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	ids := make([]domain.UserID, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.HostID)
	}
	users, err := usersByID(ctx, st, ids)
	if err != nil {
		return err
	}

	for i := range listings {
		listings[i].Host = users[listings[i].HostID]
	}

	return nil
}

// Bookings sets the Listing (with its host), User and Payment of every booking.
func Bookings(ctx context.Context, st storage.AllStorage, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	listingIDs := make([]domain.ListingID, 0, len(bookings))
	userIDs := make([]domain.UserID, 0, len(bookings))
	bookingIDs := make([]domain.BookingID, 0, len(bookings))
	for _, b := range bookings {
		listingIDs = append(listingIDs, b.ListingID)
		userIDs = append(userIDs, b.UserID)
		bookingIDs = append(bookingIDs, b.ID)
	}

	listings, err := listingsByID(ctx, st, listingIDs)
	if err != nil {
		return err
	}
	users, err := usersByID(ctx, st, userIDs)
	if err != nil {
		return err
	}
	payments, err := st.PaymentsByBookingIDs(ctx, bookingIDs...)
	if err != nil {
		return fmt.Errorf("could not get payments: %w", err)
	}
	paymentByBooking := make(map[domain.BookingID]*domain.Payment, len(payments))
	for i := range payments {
		paymentByBooking[payments[i].BookingID] = &payments[i]
	}

	for i := range bookings {
		b := &bookings[i]
		b.Listing = listings[b.ListingID]
		b.User = users[b.UserID]
		b.Payment = paymentByBooking[b.ID]
	}

	return nil
}

// Booking resolves a single booking, see Bookings.
func Booking(ctx context.Context, st storage.AllStorage, booking *domain.Booking) error {
	bookings := []domain.Booking{*booking}
	if err := Bookings(ctx, st, bookings); err != nil {
		return err
	}
	*booking = bookings[0]

	return nil
}

// Reviews sets the Listing (with its host) and User of every review.
func Reviews(ctx context.Context, st storage.AllStorage, reviews []domain.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	listingIDs := make([]domain.ListingID, 0, len(reviews))
	userIDs := make([]domain.UserID, 0, len(reviews))
	for _, r := range reviews {
		listingIDs = append(listingIDs, r.ListingID)
		userIDs = append(userIDs, r.UserID)
	}

	listings, err := listingsByID(ctx, st, listingIDs)
	if err != nil {
		return err
	}
	users, err := usersByID(ctx, st, userIDs)
	if err != nil {
		return err
	}

	for i := range reviews {
		reviews[i].Listing = listings[reviews[i].ListingID]
		reviews[i].User = users[reviews[i].UserID]
	}

	return nil
}

func usersByID(ctx context.Context, st storage.UserStorage, ids []domain.UserID) (map[domain.UserID]*domain.User, error) {
	users, err := st.UsersByIDs(ctx, unique(ids)...)
	if err != nil {
		return nil, fmt.Errorf("could not get users: %w", err)
	}

	out := make(map[domain.UserID]*domain.User, len(users))
	for i := range users {
		out[users[i].ID] = &users[i]
	}

	return out, nil
}

func listingsByID(ctx context.Context,
	st storage.AllStorage,
	ids []domain.ListingID,
) (map[domain.ListingID]*domain.Listing, error) {
	listings, err := st.ListingsByIDs(ctx, unique(ids)...)
	if err != nil {
		return nil, fmt.Errorf("could not get listings: %w", err)
	}
	if err := Listings(ctx, st, listings); err != nil {
		return nil, err
	}

	out := make(map[domain.ListingID]*domain.Listing, len(listings))
	for i := range listings {
		out[listings[i].ID] = &listings[i]
	}

	return out, nil
}

func unique[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
