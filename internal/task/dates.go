package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Accepted user date layouts, most specific first.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 1504"
)

const (
	displayDate     = "Jan 2 2006"
	displayDateTime = "Jan 2 2006 15:04"
)

// ParseUserDate parses a date typed by the user.
// Wall-clock values are read as UTC so the stored epoch matches the reading.
func ParseUserDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range []string{DateTimeLayout, DateLayout} {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, text)
}

// ParseStoredDate parses the epoch-seconds token used in the save file.
// Only the canonical form FormatForStorage writes is accepted: no sign on
// positive values, no leading zeros.
func ParseStoredDate(token string) (time.Time, error) {
	secs, err := strconv.ParseInt(token, 10, 64)
	if err != nil || strconv.FormatInt(secs, 10) != token {
		return time.Time{}, fmt.Errorf("%w: %q", ErrCorruptDate, token)
	}
	return time.Unix(secs, 0).UTC(), nil
}

// FormatForStorage is the inverse of ParseStoredDate.
func FormatForStorage(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// FormatForDisplay renders a point in time for humans. Midnight drops the clock.
func FormatForDisplay(t time.Time) string {
	t = t.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(displayDate)
	}
	return t.Format(displayDateTime)
}
