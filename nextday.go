package datefns

import "time"

// sundayOffsets maps the current weekday to the number of days until the
// following Sunday. The entry for Sunday itself is a full week.
var sundayOffsets = [7]int{7, 6, 5, 4, 3, 2, 1}

// offsetTable returns sundayOffsets rotated right by day, which maps the
// current weekday to the days remaining until the next occurrence of day.
func offsetTable(day int) [7]int {
	var table [7]int
	split := len(sundayOffsets) - day
	n := copy(table[:], sundayOffsets[split:])
	copy(table[n:], sundayOffsets[:split])
	return table
}

// NextDay returns the first date strictly after date that falls on day,
// where day is 0 for Sunday through 6 for Saturday. When date already falls
// on day the result is one week later.
//
// It returns [ErrInvalidDay] if day is outside [0,6] and [ErrInvalidDate]
// if date is not valid. The day is checked first.
func NextDay[D DateLike](date D, day int) (time.Time, error) {
	if day < 0 || day > 6 {
		return time.Time{}, ErrInvalidDay
	}
	if !IsValid(date) {
		return time.Time{}, ErrInvalidDate
	}

	t := ToDate(date)
	next := AddDays(t, offsetTable(day)[GetDay(t)])
	if !timeInRange(next) {
		return time.Time{}, ErrInvalidDate
	}
	return next, nil
}

// NextSunday returns the first Sunday strictly after date.
func NextSunday[D DateLike](date D) (time.Time, error) { return NextDay(date, int(time.Sunday)) }

// NextMonday returns the first Monday strictly after date.
func NextMonday[D DateLike](date D) (time.Time, error) { return NextDay(date, int(time.Monday)) }

// NextTuesday returns the first Tuesday strictly after date.
func NextTuesday[D DateLike](date D) (time.Time, error) { return NextDay(date, int(time.Tuesday)) }

// NextWednesday returns the first Wednesday strictly after date.
func NextWednesday[D DateLike](date D) (time.Time, error) {
	return NextDay(date, int(time.Wednesday))
}

// NextThursday returns the first Thursday strictly after date.
func NextThursday[D DateLike](date D) (time.Time, error) {
	return NextDay(date, int(time.Thursday))
}

// NextFriday returns the first Friday strictly after date.
func NextFriday[D DateLike](date D) (time.Time, error) { return NextDay(date, int(time.Friday)) }

// NextSaturday returns the first Saturday strictly after date.
func NextSaturday[D DateLike](date D) (time.Time, error) {
	return NextDay(date, int(time.Saturday))
}
