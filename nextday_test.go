package datefns_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabitt1ove/datefns"
)

func TestNextDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from time.Time
		day  int
		want time.Time
	}{
		{"Friday to Monday", d(2020, time.March, 20), 1, d(2020, time.March, 23)},
		{"Saturday to Tuesday", d(2020, time.March, 21), 2, d(2020, time.March, 24)},
		{"Sunday to next Sunday", d(2020, time.March, 22), 0, d(2020, time.March, 29)},
		{"across year boundary", d(2020, time.December, 30), 5, d(2021, time.January, 1)},
		{"onto leap day", d(2024, time.February, 28), 4, d(2024, time.February, 29)},
		{"past February in common year", d(2023, time.February, 28), 3, d(2023, time.March, 1)},
		{"Saturday to Sunday", d(2020, time.March, 21), 0, d(2020, time.March, 22)},
		{"Sunday to Saturday", d(2020, time.March, 22), 6, d(2020, time.March, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datefns.NextDay(tt.from, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextDay_Timestamp(t *testing.T) {
	t.Parallel()

	// 2020-03-20T00:00:00Z, a Friday.
	got, err := datefns.NextDay(int64(1584662400000), 1)
	require.NoError(t, err)
	assert.Equal(t, d(2020, time.March, 23), got)
}

func TestNextDay_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	from := d(2020, time.March, 20)
	orig := from
	_, err := datefns.NextDay(from, 1)
	require.NoError(t, err)
	assert.Equal(t, orig, from)
}

func TestNextDay_KeepsTimeOfDayAcrossDST(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST starts on Sunday 2020-03-08 in New York.
	from := time.Date(2020, time.March, 6, 10, 0, 0, 0, ny)
	got, err := datefns.NextDay(from, int(time.Monday))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.March, 9, 10, 0, 0, 0, ny), got)
}

func TestNextDay_Properties(t *testing.T) {
	t.Parallel()

	start := d(2019, time.December, 1)
	for i := 0; i < 800; i++ {
		from := start.AddDate(0, 0, i)
		for day := 0; day < 7; day++ {
			got, err := datefns.NextDay(from, day)
			require.NoError(t, err)

			diff := int(got.Sub(from).Hours() / 24)
			if datefns.GetDay(got) != day || diff < 1 || diff > 7 {
				t.Fatalf("NextDay(%s, %d) = %s (%s, %d days later)",
					from.Format("2006-01-02"), day, got.Format("2006-01-02"), got.Weekday(), diff)
			}
			if datefns.GetDay(from) == day && diff != 7 {
				t.Fatalf("NextDay(%s, %d) = %s, want one week later",
					from.Format("2006-01-02"), day, got.Format("2006-01-02"))
			}
		}
	}
}

func TestNextDay_InvalidDay(t *testing.T) {
	t.Parallel()

	for _, day := range []int{-1, 7, 8, -7, 100} {
		_, err := datefns.NextDay(d(2020, time.March, 20), day)
		assert.ErrorIs(t, err, datefns.ErrInvalidDay, "day %d", day)
	}
}

func TestNextDay_InvalidDate(t *testing.T) {
	t.Parallel()

	_, err := datefns.NextDay(time.Time{}, 1)
	assert.ErrorIs(t, err, datefns.ErrInvalidDate)

	_, err = datefns.NextDay(int64(9e15), 1)
	assert.ErrorIs(t, err, datefns.ErrInvalidDate)
}

func TestNextDay_InvalidDayCheckedFirst(t *testing.T) {
	t.Parallel()

	_, err := datefns.NextDay(time.Time{}, 7)
	assert.ErrorIs(t, err, datefns.ErrInvalidDay)
	assert.NotErrorIs(t, err, datefns.ErrInvalidDate)
}

func TestNextDay_ResultOutOfRange(t *testing.T) {
	t.Parallel()

	// The last representable instant is a Saturday; nothing follows it.
	last := int64(8_640_000_000_000_000)
	for day := 0; day < 7; day++ {
		_, err := datefns.NextDay(last, day)
		assert.ErrorIs(t, err, datefns.ErrInvalidDate, "day %d", day)
	}
}

func TestNextWeekdayHelpers(t *testing.T) {
	t.Parallel()

	from := d(2020, time.March, 20) // Friday
	tests := []struct {
		name string
		fn   func(time.Time) (time.Time, error)
		want time.Time
	}{
		{"NextSunday", datefns.NextSunday[time.Time], d(2020, time.March, 22)},
		{"NextMonday", datefns.NextMonday[time.Time], d(2020, time.March, 23)},
		{"NextTuesday", datefns.NextTuesday[time.Time], d(2020, time.March, 24)},
		{"NextWednesday", datefns.NextWednesday[time.Time], d(2020, time.March, 25)},
		{"NextThursday", datefns.NextThursday[time.Time], d(2020, time.March, 26)},
		{"NextFriday", datefns.NextFriday[time.Time], d(2020, time.March, 27)},
		{"NextSaturday", datefns.NextSaturday[time.Time], d(2020, time.March, 21)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(from)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := datefns.NextMonday(time.Time{})
	assert.ErrorIs(t, err, datefns.ErrInvalidDate)
}

func TestNextDay_Concurrent(t *testing.T) {
	t.Parallel()

	want := d(2020, time.March, 23)
	done := make(chan time.Time, 16)
	for i := 0; i < cap(done); i++ {
		go func() {
			got, _ := datefns.NextDay(d(2020, time.March, 20), 1)
			done <- got
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.Equal(t, want, <-done)
	}
}
