package dashboard

import "time"

const dayKeyLayout = "2006-01-02"

// DayStart returns midnight of t's calendar day in tz.
func DayStart(t time.Time, tz *time.Location) time.Time {
	local := t.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz)
}

// dayKey identifies t's calendar day in tz.
func dayKey(t time.Time, tz *time.Location) string {
	return t.In(tz).Format(dayKeyLayout)
}

// ParseTimezone parses an IANA timezone name; an empty name means fallback.
func ParseTimezone(name string, fallback *time.Location) (*time.Location, error) {
	if name == "" {
		return fallback, nil
	}
	return time.LoadLocation(name)
}
