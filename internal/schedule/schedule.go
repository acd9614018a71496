package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Window is one weekday's active period, expressed as times of day in
// UTC. Windows never span midnight. "All day" is encoded 00:00-23:59,
// which deliberately leaves the last minute of the day outside the
// window; that gap is documented behavior, not a rounding bug.
type Window struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// AllDay is the 00:00-23:59 convention for an always-active weekday.
func AllDay() Window {
	return Window{EndHour: 23, EndMinute: 59}
}

func (w Window) validate() error {
	if w.StartHour < 0 || w.StartHour > 23 || w.EndHour < 0 || w.EndHour > 23 {
		return fmt.Errorf("hour out of range in window %s", w)
	}
	if w.StartMinute < 0 || w.StartMinute > 59 || w.EndMinute < 0 || w.EndMinute > 59 {
		return fmt.Errorf("minute out of range in window %s", w)
	}
	if w.EndHour < w.StartHour || (w.EndHour == w.StartHour && w.EndMinute < w.StartMinute) {
		return fmt.Errorf("window %s ends before it starts", w)
	}
	return nil
}

func (w Window) String() string {
	return fmt.Sprintf("%d:%02d-%d:%02d", w.StartHour, w.StartMinute, w.EndHour, w.EndMinute)
}

// ParseWindow parses the "H:MM-H:MM" form used in configuration,
// e.g. "3:01-21:00".
func ParseWindow(s string) (Window, error) {
	var w Window
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return w, fmt.Errorf("window %q is not of the form H:MM-H:MM", s)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%d:%d", &w.StartHour, &w.StartMinute); err != nil {
		return w, fmt.Errorf("invalid window start %q: %w", parts[0], err)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[1]), "%d:%d", &w.EndHour, &w.EndMinute); err != nil {
		return w, fmt.Errorf("invalid window end %q: %w", parts[1], err)
	}
	if err := w.validate(); err != nil {
		return w, err
	}
	return w, nil
}

// Schedule holds one Window per weekday, indexed 0=Monday through
// 6=Sunday.
type Schedule [7]Window

var weekdayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (s Schedule) Validate() error {
	for i, w := range s {
		if err := w.validate(); err != nil {
			return fmt.Errorf("%s: %w", weekdayNames[i], err)
		}
	}
	return nil
}

// weekdayIndex converts Go's Sunday-first weekday to the Monday-first
// index used by Schedule.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// SecondsUntilNextWindow returns how long to wait before the next
// activity window opens, or 0 when now is inside today's window.
// Comparisons are made on (hour, minute) pairs so that seconds within
// a boundary minute do not flip the result; the end minute itself is
// already outside the window.
func SecondsUntilNextWindow(s Schedule, now time.Time) int {
	now = now.UTC()
	today := s[weekdayIndex(now)]
	hour, minute := now.Hour(), now.Minute()

	beforeStart := hour < today.StartHour ||
		(hour == today.StartHour && minute < today.StartMinute)
	afterEnd := hour > today.EndHour ||
		(hour == today.EndHour && minute >= today.EndMinute)

	switch {
	case beforeStart:
		start := time.Date(now.Year(), now.Month(), now.Day(),
			today.StartHour, today.StartMinute, 0, 0, time.UTC)
		return int(start.Sub(now).Seconds())
	case afterEnd:
		next := now.AddDate(0, 0, 1)
		tomorrow := s[weekdayIndex(next)]
		start := time.Date(next.Year(), next.Month(), next.Day(),
			tomorrow.StartHour, tomorrow.StartMinute, 0, 0, time.UTC)
		return int(start.Sub(now).Seconds())
	default:
		return 0
	}
}
