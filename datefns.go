// Package datefns provides small, pure date helpers built on time.Time.
//
// Helpers accept either a time.Time or an int64 timestamp in milliseconds
// since the Unix epoch (see [DateLike]). Timestamps are interpreted in UTC;
// a time.Time keeps its own location and time of day.
//
// Find the next Monday after Friday, March 20, 2020:
//
//	t := time.Date(2020, time.March, 20, 0, 0, 0, 0, time.UTC)
//	next, err := datefns.NextDay(t, 1) // 2020-03-23
//
// All functions are stateless and safe for concurrent use.
package datefns

import (
	"errors"
	"fmt"
	"time"
)

// DateLike is the set of inputs accepted by the coercing helpers.
type DateLike interface {
	time.Time | int64
}

var (
	// ErrArgumentsRequired is returned by [RequiredArgs] when a caller
	// supplied fewer arguments than a helper needs.
	ErrArgumentsRequired = errors.New("arguments required")

	// ErrInvalidDay is returned when a weekday index is outside [0,6].
	ErrInvalidDay = errors.New("invalid day")

	// ErrInvalidDate is returned when an input does not coerce to a valid
	// calendar date.
	ErrInvalidDate = errors.New("invalid date")
)

// ToDate coerces d to a time.Time. It never fails; use [IsValid] to check
// the result.
func ToDate[D DateLike](d D) time.Time {
	switch v := any(d).(type) {
	case time.Time:
		return v
	case int64:
		if !millisInRange(v) {
			return time.Time{}
		}
		return time.UnixMilli(v).UTC()
	}
	return time.Time{}
}

// IsValid reports whether d coerces to a usable calendar date.
func IsValid[D DateLike](d D) bool {
	if ms, ok := any(d).(int64); ok {
		return millisInRange(ms)
	}
	return timeInRange(ToDate(d))
}

// GetDay returns the day of the week of t in t's location,
// 0 for Sunday through 6 for Saturday.
func GetDay(t time.Time) int {
	return int(t.Weekday())
}

// AddDays returns t moved by n calendar days. The wall-clock time is kept.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// RequiredArgs checks that at least n arguments are present in args.
// It serves entry points that receive a variable argument list, such as
// a command line.
func RequiredArgs(n int, args []any) error {
	if len(args) >= n {
		return nil
	}
	noun := "arguments"
	if n == 1 {
		noun = "argument"
	}
	return fmt.Errorf("%w: %d %s required, but only %d present", ErrArgumentsRequired, n, noun, len(args))
}
