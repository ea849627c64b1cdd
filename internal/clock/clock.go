// Package clock implements time-of-day parsing and answer evaluation for
// the analog clock widget. Times are compared on the 12-hour dial, where
// hour 12 stands for both the noon and midnight positions.
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a time-of-day string ("3:05", "09:15", "12:00") and returns
// the hour mapped onto the 1-12 dial and the minute. Hours given in
// 24-hour form are reduced onto the dial, so "15:30" parses as 3:30.
func Parse(s string) (hours, minutes int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hours, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("hour out of range in %q", s)
	}
	if minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("minute out of range in %q", s)
	}

	// Reduce onto the dial: 0 and 12 are the same position
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}

	return hours, minutes, nil
}

// Format renders a dial position as a zero-padded HH:MM string. The clock
// widget emits exactly this form, so it is the canonical comparison format.
func Format(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Normalize parses a time string and re-renders it in canonical form
func Normalize(s string) (string, error) {
	hours, minutes, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(hours, minutes), nil
}

// Evaluate reports whether a submitted time matches the expected answer.
// Both sides are normalized before comparison, so "9:5" matches "09:05".
// Input that does not parse never matches.
func Evaluate(submitted, expected string) bool {
	s, err := Normalize(submitted)
	if err != nil {
		return false
	}
	e, err := Normalize(expected)
	if err != nil {
		return false
	}
	return s == e
}
