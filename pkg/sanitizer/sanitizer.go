package sanitizer

import (
	"strings"

	"classbook/pkg/model"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func SanitizeName(input string) string {
	p := Pipeline{
		stripControl,
		TrimAndNormalize,
	}
	return p.Apply(input)
}

func SanitizeID(input string) string {
	p := Pipeline{
		stripControl,
		strings.TrimSpace,
	}
	return p.Apply(input)
}

// SanitizeSeed normalizes a catalog entry read from a seed file.
func SanitizeSeed(seed model.ClassSeed) model.ClassSeed {
	seed.ID = SanitizeID(seed.ID)
	seed.Name = SanitizeName(seed.Name)
	seed.Instructor = SanitizeName(seed.Instructor)
	seed.ScheduledAt = strings.TrimSpace(seed.ScheduledAt)
	return seed
}
