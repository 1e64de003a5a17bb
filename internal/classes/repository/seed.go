package repository

import (
	"fmt"
	"os"
	"time"

	classeserrors "classbook/internal/classes/errors"
	"classbook/pkg/model"
	"classbook/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SeedTimeLayout is the wall clock layout of scheduled_at in seed files.
const SeedTimeLayout = "2006-01-02T15:04:05"

var defaultSeed = []model.ClassSeed{
	{Name: "Yoga", Instructor: "Alice", ScheduledAt: "2025-06-21T07:00:00", TotalSlots: 10},
	{Name: "Zumba", Instructor: "Bob", ScheduledAt: "2025-06-21T09:00:00", TotalSlots: 15},
	{Name: "HIIT", Instructor: "Charlie", ScheduledAt: "2025-06-21T18:00:00", TotalSlots: 12},
}

// DefaultSessions returns the built-in catalog with times in loc.
func DefaultSessions(loc *time.Location, newID func() string) ([]model.ClassSession, error) {
	return sessionsFromSeed(defaultSeed, loc, newID)
}

// LoadSeedFile reads a YAML catalog. Entries without an id get one from newID.
func LoadSeedFile(path string, loc *time.Location, newID func() string) ([]model.ClassSession, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file model.ClassSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", classeserrors.ErrInvalidSeed, path, err)
	}

	for i := range file.Classes {
		file.Classes[i] = sanitizer.SanitizeSeed(file.Classes[i])
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", classeserrors.ErrInvalidSeed, path, err)
	}

	return sessionsFromSeed(file.Classes, loc, newID)
}

func sessionsFromSeed(seeds []model.ClassSeed, loc *time.Location, newID func() string) ([]model.ClassSession, error) {
	sessions := make([]model.ClassSession, 0, len(seeds))

	for i, seed := range seeds {
		scheduledAt, err := time.ParseInLocation(SeedTimeLayout, seed.ScheduledAt, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: class %d (%s): scheduled_at %q: %v",
				classeserrors.ErrInvalidSeed, i, seed.Name, seed.ScheduledAt, err)
		}

		id := seed.ID
		if id == "" {
			id = newID()
		}

		sessions = append(sessions, model.ClassSession{
			ID:             id,
			Name:           seed.Name,
			ScheduledAt:    scheduledAt,
			Instructor:     seed.Instructor,
			TotalSlots:     seed.TotalSlots,
			AvailableSlots: seed.TotalSlots,
		})
	}

	return sessions, nil
}
