package parser

import (
	"strconv"
	"strings"
	"time"
)

const (
	layoutMinutes = "2006/01/02 15:04"
	layoutSeconds = "2006/01/02 15:04:05"
)

// ParseDateTime parses "YYYY/MM/DD HH:MM" or "YYYY/MM/DD HH:MM:SS".
// CML timestamps carry no zone; the result is a wall-clock time in UTC.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return time.Time{}, formatError(s, "invalid datetime, want YYYY/MM/DD HH:MM[:SS]")
	}

	date := strings.Split(fields[0], "/")
	clock := strings.Split(fields[1], ":")
	if len(date) != 3 || (len(clock) != 2 && len(clock) != 3) {
		return time.Time{}, formatError(s, "invalid datetime, want YYYY/MM/DD HH:MM[:SS]")
	}

	year, ok := number(date[0], 4, 4, 1, 9999)
	if !ok {
		return time.Time{}, formatError(s, "invalid year in datetime")
	}
	month, ok := number(date[1], 1, 2, 1, 12)
	if !ok {
		return time.Time{}, formatError(s, "invalid month in datetime")
	}
	day, ok := number(date[2], 1, 2, 1, daysIn(year, month))
	if !ok {
		return time.Time{}, formatError(s, "invalid day in datetime")
	}
	hour, ok := number(clock[0], 1, 2, 0, 23)
	if !ok {
		return time.Time{}, formatError(s, "invalid hour in datetime")
	}
	minute, ok := number(clock[1], 1, 2, 0, 59)
	if !ok {
		return time.Time{}, formatError(s, "invalid minute in datetime")
	}
	second := 0
	if len(clock) == 3 {
		if second, ok = number(clock[2], 1, 2, 0, 59); !ok {
			return time.Time{}, formatError(s, "invalid second in datetime")
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

// FormatDateTime writes t in CML form, adding seconds only when non-zero.
func FormatDateTime(t time.Time) string {
	if t.Second() != 0 {
		return t.Format(layoutSeconds)
	}
	return t.Format(layoutMinutes)
}

// number parses an unsigned decimal field of minLen..maxLen digits and
// checks it against [lo, hi].
func number(s string, minLen, maxLen, lo, hi int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
