package model

import "time"

type ClassSession struct {
	ID             string    `json:"id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=100"`
	ScheduledAt    time.Time `json:"scheduled_at" validate:"required"`
	Instructor     string    `json:"instructor" validate:"required,min=1,max=100"`
	TotalSlots     int       `json:"total_slots" validate:"required,min=1"`
	AvailableSlots int       `json:"available_slots" validate:"min=0,ltefield=TotalSlots"`
}

// ClassView is the public listing shape of a session. TotalSlots is intentionally absent.
type ClassView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DateTime       string `json:"datetime"`
	Instructor     string `json:"instructor"`
	AvailableSlots int    `json:"available_slots"`
}

// ClassSeed describes one catalog entry as it appears in a seed file.
// ScheduledAt is a wall clock time in the reference zone.
type ClassSeed struct {
	ID          string `yaml:"id,omitempty" validate:"omitempty,max=64"`
	Name        string `yaml:"name" validate:"required,min=1,max=100"`
	Instructor  string `yaml:"instructor" validate:"required,min=1,max=100"`
	ScheduledAt string `yaml:"scheduled_at" validate:"required"`
	TotalSlots  int    `yaml:"total_slots" validate:"required,min=1"`
}

type ClassSeedFile struct {
	Classes []ClassSeed `yaml:"classes" validate:"required,min=1,dive"`
}

func (c *ClassSession) View(loc *time.Location) ClassView {
	return ClassView{
		ID:             c.ID,
		Name:           c.Name,
		DateTime:       FormatTimestamp(c.ScheduledAt.In(loc)),
		Instructor:     c.Instructor,
		AvailableSlots: c.AvailableSlots,
	}
}
