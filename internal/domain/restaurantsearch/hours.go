package restaurantsearch

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock instant without date or timezone. The deployment
// is single-timezone, so opening-hours checks and the peak-hour policy only
// ever compare seconds since midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOfDayFrom extracts the wall-clock portion of t.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseTimeOfDay decodes "HH:mm" or "HH:mm:ss".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	switch strings.Count(s, ":") {
	case 1:
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
		}
	case 2:
		if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
			return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
		}
	default:
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: expected HH:mm", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: out of range", s)
	}
	return TimeOfDay{Hour: h, Minute: m, Second: sec}, nil
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// After reports whether t is strictly later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.seconds() > other.seconds()
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

type hoursKind int

const (
	hoursAlwaysOpen hoursKind = iota
	hoursScheduled
)

// OpeningHours is a tagged variant: either a scheduled (opens, closes)
// window or AlwaysOpen. Records with missing or unparseable bounds decode
// as AlwaysOpen so data-quality problems never hide a restaurant.
type OpeningHours struct {
	kind   hoursKind
	opens  TimeOfDay
	closes TimeOfDay
}

// AlwaysOpen returns the permissive variant.
func AlwaysOpen() OpeningHours {
	return OpeningHours{kind: hoursAlwaysOpen}
}

// ScheduledHours returns the variant bounded by opens and closes.
func ScheduledHours(opens, closes TimeOfDay) OpeningHours {
	return OpeningHours{kind: hoursScheduled, opens: opens, closes: closes}
}

// ParseOpeningHours decodes the two "HH:mm" bounds of a restaurant record.
func ParseOpeningHours(opensAt, closesAt string) OpeningHours {
	if opensAt == "" || closesAt == "" {
		return AlwaysOpen()
	}
	opens, err := ParseTimeOfDay(opensAt)
	if err != nil {
		return AlwaysOpen()
	}
	closes, err := ParseTimeOfDay(closesAt)
	if err != nil {
		return AlwaysOpen()
	}
	return ScheduledHours(opens, closes)
}

// OpenAt reports whether the window contains t. The interval is open:
// a restaurant is not open at the exact opening or closing instant.
func (h OpeningHours) OpenAt(t TimeOfDay) bool {
	if h.kind == hoursAlwaysOpen {
		return true
	}
	return t.After(h.opens) && t.Before(h.closes)
}
