// SPDX-License-Identifier: Apache-2.0

package toc

import (
	"fmt"
	"time"
)

// DateTime is the seven broken-down integers pg_dump emits for a dump
// timestamp. It is always stored this way, never as a civil date-time,
// because an invalid date (month 0, for example) must still round-trip
// verbatim if that's what the underlying file contains.
type DateTime struct {
	Second, Minute, Hour int32
	Day, Month           int32
	YearSince1900        int32
	IsDST                int32
}

// ToTime converts the broken-down fields to a civil date-time for display
// or JSON projection only. It returns an error for a DateTime that cannot
// be represented as a real calendar date; callers displaying such a value
// should fall back to "Invalid date" rather than fail the operation.
func (d DateTime) ToTime() (time.Time, error) {
	year := int(d.YearSince1900) + 1900
	t := time.Date(year, time.Month(d.Month), int(d.Day), int(d.Hour), int(d.Minute), int(d.Second), 0, time.UTC)
	if int32(t.Year()) != int32(year) || int32(t.Month()) != d.Month || int32(t.Day()) != d.Day {
		return time.Time{}, fmt.Errorf("invalid date: %04d-%02d-%02d", year, d.Month, d.Day)
	}
	if int32(t.Hour()) != d.Hour || int32(t.Minute()) != d.Minute || int32(t.Second()) != d.Second {
		return time.Time{}, fmt.Errorf("invalid time: %02d:%02d:%02d", d.Hour, d.Minute, d.Second)
	}
	return t, nil
}

// DateTimeFromTime is the inverse of ToTime, used when parsing the JSON
// projection back into the broken-down representation.
func DateTimeFromTime(t time.Time, isDST bool) DateTime {
	dst := int32(0)
	if isDST {
		dst = 1
	}
	return DateTime{
		Second:        int32(t.Second()),
		Minute:        int32(t.Minute()),
		Hour:          int32(t.Hour()),
		Day:           int32(t.Day()),
		Month:         int32(t.Month()),
		YearSince1900: int32(t.Year() - 1900),
		IsDST:         dst,
	}
}

// String renders the timestamp for display, falling back to a fixed
// placeholder when the broken-down fields don't form a valid date.
func (d DateTime) String() string {
	t, err := d.ToTime()
	if err != nil {
		return "Invalid date"
	}
	return t.Format("2006-01-02 15:04:05")
}
