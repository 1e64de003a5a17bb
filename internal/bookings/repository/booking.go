package repository

import (
	"context"
	"sync"

	bookingserrors "classbook/internal/bookings/errors"
	"classbook/pkg/model"
)

// BookingRepository is an append-only ledger of confirmed bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	// FindByEmail matches clientEmail exactly, in creation order.
	FindByEmail(ctx context.Context, email string) ([]*model.Booking, error)
	CountByClass(ctx context.Context, classID string) (int, error)
	Count(ctx context.Context) (int, error)
}

type inMemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []model.Booking
	ids      map[string]struct{}
}

func NewInMemoryBookingRepository() BookingRepository {
	return &inMemoryBookingRepository{
		bookings: make([]model.Booking, 0),
		ids:      make(map[string]struct{}),
	}
}

func (r *inMemoryBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if booking == nil || booking.ID == "" || booking.ClassID == "" {
		return bookingserrors.ErrInvalidBooking
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[booking.ID]; exists {
		return bookingserrors.ErrDuplicateID
	}

	r.ids[booking.ID] = struct{}{}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *inMemoryBookingRepository) FindByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*model.Booking, 0)
	for i := range r.bookings {
		if r.bookings[i].ClientEmail == email {
			b := r.bookings[i]
			matches = append(matches, &b)
		}
	}
	return matches, nil
}

func (r *inMemoryBookingRepository) CountByClass(ctx context.Context, classID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for i := range r.bookings {
		if r.bookings[i].ClassID == classID {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryBookingRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings), nil
}
