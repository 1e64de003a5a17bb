package service

import (
	"context"

	"classbook/internal/classes/repository"
	"classbook/pkg/config"
	apperrors "classbook/pkg/errors"
	"classbook/pkg/locale"
	"classbook/pkg/model"
)

type ClassService interface {
	// List returns every session with its start time expressed in timezone.
	// A nil timezone selects the reference zone; a present one must name an
	// IANA zone exactly, so "" and padded names are rejected.
	List(ctx context.Context, timezone *string) ([]model.ClassView, error)
}

type classService struct {
	repo repository.ClassRepository
	cfg  *config.Config
}

func NewClassService(repo repository.ClassRepository, cfg *config.Config) ClassService {
	return &classService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *classService) List(ctx context.Context, timezone *string) ([]model.ClassView, error) {
	loc := s.cfg.ReferenceLocation
	if timezone != nil {
		var err error
		loc, err = locale.LoadZone(*timezone)
		if err != nil {
			s.cfg.Log.Warn("Rejected class listing", "timezone", *timezone, "error", err)
			return nil, apperrors.InvalidTimeZone()
		}
	}

	sessions, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list classes", "error", err)
		return nil, apperrors.Internal("Failed to retrieve classes", err)
	}

	views := make([]model.ClassView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, session.View(loc))
	}

	return views, nil
}
