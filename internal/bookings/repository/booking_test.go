package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	bookingserrors "classbook/internal/bookings/errors"
	"classbook/pkg/model"
)

func newBooking(id, classID, email string) *model.Booking {
	return &model.Booking{
		ID:          id,
		ClassID:     classID,
		ClientName:  "Jane",
		ClientEmail: email,
		BookedAt:    time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreate_AndFindByEmailInOrder(t *testing.T) {
	repo := NewInMemoryBookingRepository()
	ctx := context.Background()

	for i, classID := range []string{"yoga", "zumba", "yoga"} {
		if err := repo.Create(ctx, newBooking(fmt.Sprintf("b-%d", i), classID, "jane@example.com")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if err := repo.Create(ctx, newBooking("other", "yoga", "john@example.com")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}
	for i, b := range got {
		if b.ID != fmt.Sprintf("b-%d", i) {
			t.Errorf("position %d: expected b-%d, got %s", i, i, b.ID)
		}
	}
}

func TestFindByEmail_ExactMatch(t *testing.T) {
	repo := NewInMemoryBookingRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, newBooking("b-1", "yoga", "Jane@Example.com"))

	tests := []struct {
		email string
		want  int
	}{
		{"Jane@Example.com", 1},
		{"jane@example.com", 0},
		{" Jane@Example.com", 0},
		{"nobody@example.com", 0},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got, err := repo.FindByEmail(ctx, tt.email)
			if err != nil {
				t.Fatalf("FindByEmail failed: %v", err)
			}
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != tt.want {
				t.Errorf("expected %d matches, got %d", tt.want, len(got))
			}
		})
	}
}

func TestCreate_Rejects(t *testing.T) {
	repo := NewInMemoryBookingRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, newBooking("b-1", "yoga", "a@b.co")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, newBooking("b-1", "yoga", "a@b.co")); !errors.Is(err, bookingserrors.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
	if err := repo.Create(ctx, newBooking("", "yoga", "a@b.co")); !errors.Is(err, bookingserrors.ErrInvalidBooking) {
		t.Errorf("expected ErrInvalidBooking, got %v", err)
	}
	if err := repo.Create(ctx, nil); !errors.Is(err, bookingserrors.ErrInvalidBooking) {
		t.Errorf("expected ErrInvalidBooking for nil, got %v", err)
	}

	n, _ := repo.Count(ctx)
	if n != 1 {
		t.Errorf("rejected creates must not append, count=%d", n)
	}
}

func TestFindByEmail_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryBookingRepository()
	ctx := context.Background()
	_ = repo.Create(ctx, newBooking("b-1", "yoga", "a@b.co"))

	got, _ := repo.FindByEmail(ctx, "a@b.co")
	got[0].ClassID = "tampered"

	n, _ := repo.CountByClass(ctx, "yoga")
	if n != 1 {
		t.Errorf("ledger mutated through returned value")
	}
}

func TestCreate_Concurrent(t *testing.T) {
	repo := NewInMemoryBookingRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.Create(ctx, newBooking(fmt.Sprintf("b-%d", i), "yoga", "a@b.co")); err != nil {
				t.Errorf("Create failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	n, _ := repo.CountByClass(ctx, "yoga")
	if n != 50 {
		t.Errorf("expected 50 bookings, got %d", n)
	}
}
