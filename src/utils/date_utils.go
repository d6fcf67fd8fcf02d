package utils

import (
	"fmt"
	"time"
)

// OperationDateLayout is the day-first timestamp format used by the
// operations export, e.g. "31.12.2021 16:44:00".
const OperationDateLayout = "02.01.2006 15:04:05"

// ParseOperationDate parses a day-first operation timestamp.
// An unparseable stored date is a hard failure for the caller.
func ParseOperationDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(OperationDateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing operation date %q: %w", dateStr, err)
	}
	return t, nil
}

// MonthsBefore returns t shifted back by the given number of calendar
// months, clamping the day to the target month's last day. Unlike
// time.Time.AddDate it never normalizes into a neighbouring month:
// 2022-05-31 minus 3 months is 2022-02-28, not 2022-03-03.
func MonthsBefore(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) - months
	for m < 1 {
		m += 12
		year--
	}
	if last := daysInMonth(year, time.Month(m)); day > last {
		day = last
	}
	return time.Date(year, time.Month(m), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
