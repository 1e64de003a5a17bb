package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	classeserrors "classbook/internal/classes/errors"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestDefaultSessions(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}

	sessions, err := DefaultSessions(ist, sequentialIDs())
	if err != nil {
		t.Fatalf("DefaultSessions failed: %v", err)
	}

	want := []struct {
		name       string
		instructor string
		hour       int
		slots      int
	}{
		{"Yoga", "Alice", 7, 10},
		{"Zumba", "Bob", 9, 15},
		{"HIIT", "Charlie", 18, 12},
	}

	if len(sessions) != len(want) {
		t.Fatalf("expected %d sessions, got %d", len(want), len(sessions))
	}
	for i, w := range want {
		s := sessions[i]
		if s.Name != w.name || s.Instructor != w.instructor {
			t.Errorf("session %d: got %s/%s", i, s.Name, s.Instructor)
		}
		expected := time.Date(2025, 6, 21, w.hour, 0, 0, 0, ist)
		if !s.ScheduledAt.Equal(expected) {
			t.Errorf("%s: expected %v, got %v", w.name, expected, s.ScheduledAt)
		}
		if s.TotalSlots != w.slots || s.AvailableSlots != w.slots {
			t.Errorf("%s: expected %d/%d slots, got %d/%d", w.name, w.slots, w.slots, s.AvailableSlots, s.TotalSlots)
		}
		if s.ID != fmt.Sprintf("id-%d", i+1) {
			t.Errorf("%s: unexpected id %s", w.name, s.ID)
		}
	}
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeed(t, `
classes:
  - id: pilates-1
    name: Pilates
    instructor: Dana
    scheduled_at: "2025-07-01T06:30:00"
    total_slots: 8
  - name: Spin
    instructor: Eve
    scheduled_at: "2025-07-01T19:00:00"
    total_slots: 20
`)

	sessions, err := LoadSeedFile(path, time.UTC, sequentialIDs())
	if err != nil {
		t.Fatalf("LoadSeedFile failed: %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != "pilates-1" {
		t.Errorf("explicit id not kept: %s", sessions[0].ID)
	}
	if sessions[1].ID != "id-1" {
		t.Errorf("expected generated id, got %s", sessions[1].ID)
	}
	if !sessions[0].ScheduledAt.Equal(time.Date(2025, 7, 1, 6, 30, 0, 0, time.UTC)) {
		t.Errorf("unexpected time %v", sessions[0].ScheduledAt)
	}
	if sessions[1].AvailableSlots != 20 {
		t.Errorf("expected full availability, got %d", sessions[1].AvailableSlots)
	}
}

func TestLoadSeedFile_NormalizesEntries(t *testing.T) {
	path := writeSeed(t, `
classes:
  - id: " pilates-1 "
    name: "  Power   Pilates "
    instructor: "Dana "
    scheduled_at: " 2025-07-01T06:30:00 "
    total_slots: 8
`)

	sessions, err := LoadSeedFile(path, time.UTC, sequentialIDs())
	if err != nil {
		t.Fatalf("LoadSeedFile failed: %v", err)
	}
	if sessions[0].ID != "pilates-1" || sessions[0].Name != "Power Pilates" || sessions[0].Instructor != "Dana" {
		t.Errorf("entry not normalized: %+v", sessions[0])
	}
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "classes: [::"},
		{"no classes", "classes: []"},
		{"missing instructor", "classes:\n  - name: Yoga\n    scheduled_at: \"2025-06-21T07:00:00\"\n    total_slots: 10\n"},
		{"zero slots", "classes:\n  - name: Yoga\n    instructor: Alice\n    scheduled_at: \"2025-06-21T07:00:00\"\n    total_slots: 0\n"},
		{"blank instructor", "classes:\n  - name: Yoga\n    instructor: \"   \"\n    scheduled_at: \"2025-06-21T07:00:00\"\n    total_slots: 10\n"},
		{"bad time", "classes:\n  - name: Yoga\n    instructor: Alice\n    scheduled_at: \"21/06/2025 07:00\"\n    total_slots: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeedFile(writeSeed(t, tt.content), time.UTC, sequentialIDs())
			if !errors.Is(err, classeserrors.ErrInvalidSeed) {
				t.Errorf("expected ErrInvalidSeed, got %v", err)
			}
		})
	}

	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"), time.UTC, sequentialIDs()); err == nil {
		t.Error("expected error for missing file")
	}
}
