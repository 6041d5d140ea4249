package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay  = errors.New("invalid time of day format")
	ErrInvalidWeekday    = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
	ErrDuplicateWeekday  = errors.New("duplicate weekday entry")
	ErrClosesBeforeOpens = errors.New("closing time must not be before opening time")
)

// Weekday uses the salon's 1-7 convention: Monday=1 through Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// WeekdayOf maps time.Weekday (Sunday=0) onto the 1-7 convention.
func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

// TimeOfDay is a wall-clock time without a date, parsed from "HH:MM".
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// On combines the time of day with day's calendar date in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, 0, 0, day.Location())
}

func (t TimeOfDay) beforeOrEqual(other TimeOfDay) bool {
	if t.hour != other.hour {
		return t.hour < other.hour
	}
	return t.minute <= other.minute
}

// DayHours is one weekday's business hours: either open with an opening and
// closing time, or closed for the whole day.
type DayHours struct {
	day    Weekday
	opens  TimeOfDay
	closes TimeOfDay
	closed bool
}

func OpenDay(day Weekday, opensAt, closesAt string) (DayHours, error) {
	if !day.IsValid() {
		return DayHours{}, ErrInvalidWeekday
	}
	opens, err := NewTimeOfDay(opensAt)
	if err != nil {
		return DayHours{}, err
	}
	closes, err := NewTimeOfDay(closesAt)
	if err != nil {
		return DayHours{}, err
	}
	if !opens.beforeOrEqual(closes) {
		return DayHours{}, ErrClosesBeforeOpens
	}
	return DayHours{day: day, opens: opens, closes: closes}, nil
}

func ClosedDay(day Weekday) (DayHours, error) {
	if !day.IsValid() {
		return DayHours{}, ErrInvalidWeekday
	}
	return DayHours{day: day, closed: true}, nil
}

func (h DayHours) Day() Weekday      { return h.day }
func (h DayHours) IsClosed() bool    { return h.closed }
func (h DayHours) Opens() TimeOfDay  { return h.opens }
func (h DayHours) Closes() TimeOfDay { return h.closes }

// WeeklyHours holds at most one DayHours per weekday. Days without an entry
// are treated the same as closed days by the validator.
type WeeklyHours struct {
	entries map[Weekday]DayHours
}

func NewWeeklyHours(entries ...DayHours) (WeeklyHours, error) {
	byDay := make(map[Weekday]DayHours, len(entries))
	for _, e := range entries {
		if !e.day.IsValid() {
			return WeeklyHours{}, ErrInvalidWeekday
		}
		if _, ok := byDay[e.day]; ok {
			return WeeklyHours{}, ErrDuplicateWeekday
		}
		byDay[e.day] = e
	}
	return WeeklyHours{entries: byDay}, nil
}

func (w WeeklyHours) Day(d Weekday) (DayHours, bool) {
	h, ok := w.entries[d]
	return h, ok
}
