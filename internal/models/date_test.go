package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCalendarDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: `"1990-12-10"`, want: time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 drops time of day", input: `"1990-12-10T15:30:00Z"`, want: time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)},
		{name: "offset keeps its own calendar day", input: `"1990-12-10T23:30:00-05:00"`, want: time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: `"10/12/1990"`, wantErr: true},
		{name: "number", input: `19901210`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d CalendarDate
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", d.Time())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !d.Time().Equal(tt.want) {
				t.Errorf("got %v want %v", d.Time(), tt.want)
			}
		})
	}
}

func TestCalendarDate_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(NewCalendarDate(2001, time.February, 3))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"2001-02-03"` {
		t.Errorf("got %s", out)
	}

	var zero CalendarDate
	if err := json.Unmarshal([]byte("null"), &zero); err != nil || !zero.IsZero() {
		t.Errorf("null should leave the zero date, got %v err=%v", zero.Time(), err)
	}
}
