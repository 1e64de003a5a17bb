package locale

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the reference zone class schedules are stored in.
	DefaultTimezone = "Asia/Kolkata"

	localZone = "Local"
)

var (
	ErrUnknownTimezone = errors.New("unknown time zone")

	zoneCache sync.Map // name -> *time.Location
)

// LoadZone resolves an IANA zone identifier. Unlike time.LoadLocation it refuses
// the empty string and "Local", whose meaning depends on the host.
func LoadZone(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, localZone) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}

	if cached, ok := zoneCache.Load(name); ok {
		return cached.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}

	zoneCache.Store(name, loc)
	return loc, nil
}
