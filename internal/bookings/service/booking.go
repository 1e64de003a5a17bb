package service

import (
	"context"
	"errors"
	"time"

	"classbook/internal/bookings/events"
	"classbook/internal/bookings/repository"
	"classbook/internal/bookings/validator"
	classeserrors "classbook/internal/classes/errors"
	"classbook/pkg/config"
	apperrors "classbook/pkg/errors"
	"classbook/pkg/middleware"
	"classbook/pkg/model"

	"github.com/google/uuid"
)

const (
	msgMissingFields = "Missing required fields"
	msgInvalidEmail  = "Invalid email address"

	msgEmailRequired     = "Email is required"
	msgInvalidQueryEmail = "Invalid email"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]*model.Booking, error)
}

// SlotReserver is the part of the class catalog a booking needs.
type SlotReserver interface {
	ReserveSlot(ctx context.Context, id string) (*model.ClassSession, error)
	ReleaseSlot(ctx context.Context, id string) error
}

type Option func(*bookingService)

func WithIDGenerator(fn func() string) Option {
	return func(s *bookingService) {
		s.newID = fn
	}
}

func WithClock(fn func() time.Time) Option {
	return func(s *bookingService) {
		s.now = fn
	}
}

type bookingService struct {
	repo      repository.BookingRepository
	classes   SlotReserver
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
	newID     func() string
	now       func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	classes SlotReserver,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
	opts ...Option,
) BookingService {
	s := &bookingService{
		repo:      repo,
		classes:   classes,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher == nil {
		s.publisher = events.NewNoopPublisher()
	}
	return s
}

func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	session, err := s.classes.ReserveSlot(ctx, req.ClassID)
	if err != nil {
		return nil, s.mapReserveError(ctx, req.ClassID, err)
	}

	booking := &model.Booking{
		ID:          s.newID(),
		ClassID:     req.ClassID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		BookedAt:    s.now().In(s.cfg.ReferenceLocation),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		// The slot was taken but nothing was recorded; give it back.
		if releaseErr := s.classes.ReleaseSlot(context.WithoutCancel(ctx), req.ClassID); releaseErr != nil {
			s.cfg.Log.Error("Failed to release slot after ledger failure",
				"request_id", middleware.RequestIDFromContext(ctx),
				"class_id", req.ClassID,
				"error", releaseErr,
			)
		}
		s.cfg.Log.Error("Failed to create booking", "class_id", req.ClassID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"request_id", middleware.RequestIDFromContext(ctx),
		"id", booking.ID,
		"class_id", booking.ClassID,
		"class_name", session.Name,
		"client_email", booking.ClientEmail,
		"available_slots", session.AvailableSlots,
	)

	if err := s.publisher.BookingCreated(ctx, booking); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"request_id", middleware.RequestIDFromContext(ctx),
			"id", booking.ID,
			"error", err,
		)
	}

	return booking, nil
}

func (s *bookingService) GetByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if email == "" {
		return nil, apperrors.MissingField(msgEmailRequired)
	}

	if err := s.validator.ValidateEmail(email); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, apperrors.InvalidEmail(msgInvalidQueryEmail).WithDetails(verrs.Fields())
		}
		return nil, apperrors.InvalidEmail(msgInvalidQueryEmail)
	}

	bookings, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return bookings, nil
}

// validate checks the request exactly as received. Missing fields are
// reported before a malformed email.
func (s *bookingService) validate(ctx context.Context, req *model.BookingRequest) error {
	err := s.validator.ValidateRequest(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Internal("Failed to validate booking", err)
	}

	s.cfg.Log.Warn("Booking rejected",
		"request_id", middleware.RequestIDFromContext(ctx),
		"class_id", req.ClassID,
		"error", verrs.Error(),
	)

	switch {
	case verrs.HasTag(validator.TagRequired):
		return apperrors.MissingField(msgMissingFields).WithDetails(verrs.Fields())
	case verrs.HasTag(validator.TagEmail):
		return apperrors.InvalidEmail(msgInvalidEmail).WithDetails(verrs.Fields())
	default:
		return apperrors.InvalidInput("Invalid booking request").WithDetails(verrs.Fields())
	}
}

func (s *bookingService) mapReserveError(ctx context.Context, classID string, err error) error {
	switch {
	case errors.Is(err, classeserrors.ErrNotFound):
		s.cfg.Log.Warn("Booking for unknown class", "request_id", middleware.RequestIDFromContext(ctx), "class_id", classID)
		return apperrors.ClassNotFound(classID)
	case errors.Is(err, classeserrors.ErrNoSlotsAvailable):
		s.cfg.Log.Warn("Booking for full class", "request_id", middleware.RequestIDFromContext(ctx), "class_id", classID)
		return apperrors.NoSlotsAvailable()
	default:
		s.cfg.Log.Error("Failed to reserve slot", "class_id", classID, "error", err)
		return apperrors.Internal("Failed to reserve slot", err)
	}
}
