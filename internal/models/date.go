package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// CalendarDate is a day without time of day. JSON accepts "2006-01-02" or an
// RFC3339 timestamp; only the date part of a timestamp is kept.
type CalendarDate time.Time

func NewCalendarDate(y int, m time.Month, d int) CalendarDate {
	return CalendarDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight UTC of the date
func (d CalendarDate) Time() time.Time {
	y, m, day := time.Time(d).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time().Format(time.DateOnly))
}

func (d *CalendarDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			*d = CalendarDate(CalendarDate(t).Time())
			return nil
		}
	}
	return fmt.Errorf("date %q must be 2006-01-02 or RFC3339", raw)
}
