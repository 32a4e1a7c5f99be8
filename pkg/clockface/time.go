package clockface

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/clockface/pkg/errors"
)

const (
	minutesPerHour = 60
	maxHours       = 23
	maxMinutes     = 59
)

// ClockTime is a time of day as hours (0-23) and minutes (0-59).
type ClockTime struct {
	Hours   int
	Minutes int
}

// NewClockTime validates hours and minutes and returns the time.
// Out-of-range values yield an error matching errors.ErrInvalidArgument.
func NewClockTime(hours, minutes int) (ClockTime, error) {
	if err := validate("clockface.NewClockTime", hours, minutes); err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hours: hours, Minutes: minutes}, nil
}

func validate(op string, hours, minutes int) error {
	if hours < 0 || hours > maxHours {
		return errors.InvalidArgument(op, "hours must be in 0-%d, got %d", maxHours, hours)
	}
	if minutes < 0 || minutes > maxMinutes {
		return errors.InvalidArgument(op, "minutes must be in 0-%d, got %d", maxMinutes, minutes)
	}
	return nil
}

// ParseClockTime parses "H:MM" or "HH:MM".
func ParseClockTime(s string) (ClockTime, error) {
	const op = "clockface.ParseClockTime"
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return ClockTime{}, errors.InvalidArgument(op, "time %q is not in HH:MM form", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return ClockTime{}, errors.InvalidArgument(op, "time %q: bad hours: %v", s, err)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return ClockTime{}, errors.InvalidArgument(op, "time %q: bad minutes: %v", s, err)
	}
	if err := validate(op, hours, minutes); err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hours: hours, Minutes: minutes}, nil
}

// ToMinutes returns the minutes elapsed since 00:00.
func (t ClockTime) ToMinutes() int {
	return t.Hours*minutesPerHour + t.Minutes
}

// String formats the time as HH:MM.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

// MinutesBetween returns the unsigned number of minutes between a and b.
func MinutesBetween(a, b ClockTime) int {
	d := a.ToMinutes() - b.ToMinutes()
	if d < 0 {
		return -d
	}
	return d
}
