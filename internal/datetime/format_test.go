package datetime

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   PartialDate
		want string
	}{
		{"empty", PartialDate{}, "No date"},
		{"year", NewPartialDate(2025), "2025"},
		{"month", NewPartialDate(2025, 3), "March 2025"},
		{"day", NewPartialDate(2025, 3, 14), "March 14, 2025"},
		{"hour", NewPartialDate(2025, 3, 14, 9), "March 14, 2025 | 9h00"},
		{"minute", NewPartialDate(2025, 3, 14, 9, 30), "March 14, 2025 | 9h30"},
		{"midnight", NewPartialDate(2025, 1, 1, 0, 0), "January 1, 2025 | 0h00"},
		{"padded minute", NewPartialDate(2025, 12, 31, 23, 7), "December 31, 2025 | 23h07"},
		{"bad month", NewPartialDate(2025, 13), "Invalid_Month 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDateSkipsBrokenPrefix(t *testing.T) {
	day, hour := 14, 9
	p := PartialDate{Year: NewPartialDate(2025).Year, Day: &day, Hour: &hour}
	if got := FormatDate(p); got != "2025" {
		t.Errorf("FormatDate() = %q, want a year only", got)
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(1); got != "January" {
		t.Errorf("MonthName(1) = %q", got)
	}
	if got := MonthName(12); got != "December" {
		t.Errorf("MonthName(12) = %q", got)
	}
	for _, m := range []int{-1, 0, 13} {
		if got := MonthName(m); got != InvalidMonth {
			t.Errorf("MonthName(%d) = %q, want %q", m, got, InvalidMonth)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    PartialDate
		wantErr error
	}{
		{"", PartialDate{}, nil},
		{"2025", NewPartialDate(2025), nil},
		{"2025-03", NewPartialDate(2025, 3), nil},
		{"2025-03-14", NewPartialDate(2025, 3, 14), nil},
		{"2025-03-14 09", NewPartialDate(2025, 3, 14, 9), nil},
		{"2025-03-14 09:30", NewPartialDate(2025, 3, 14, 9, 30), nil},
		{"2025-03-14T9:05", NewPartialDate(2025, 3, 14, 9, 5), nil},
		{"2023-02-29", PartialDate{}, ErrCalendar},
		{"2025-13", PartialDate{}, ErrRange},
		{"20x5", PartialDate{}, ErrConversion},
		{"2025-03-14 25:00", PartialDate{}, ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"2025-03-14-01", "2025-03 10:00", "2025--14", "2025-03-14 1:2:3"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected an error", in)
		}
	}
}

func TestPartialDateHelpers(t *testing.T) {
	p := NewPartialDate(2025, 3, 14, 9)
	if p.Len() != 4 || !p.HasTime() || p.IsEmpty() {
		t.Errorf("unexpected helpers for %v: len=%d", p, p.Len())
	}
	if NewPartialDate(2025, 3, 14).HasTime() {
		t.Errorf("date without hour has no time")
	}
	if NewPartialDate(1, 2, 3, 4, 5, 6).Len() != 5 {
		t.Errorf("extra parts must be ignored")
	}

	want := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	if got := p.Time(time.UTC); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
	if got := NewPartialDate(2025).Time(time.UTC); !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Time() for a year = %v", got)
	}
	if !(PartialDate{}).Time(nil).IsZero() {
		t.Errorf("empty date should convert to the zero time")
	}

	minute := 5
	broken := NewPartialDate(2025)
	broken.Minute = &minute
	if got := broken.Prefix(); !got.Equal(NewPartialDate(2025)) {
		t.Errorf("Prefix() = %+v", got)
	}
}

func TestField(t *testing.T) {
	for i, name := range []string{"year", "month", "day", "hour", "minute"} {
		f, err := ParseField(name)
		if err != nil || f != Field(i) || f.String() != name {
			t.Errorf("ParseField(%q) = %v, %v", name, f, err)
		}
	}
	if f, err := ParseField("mins"); err != nil || f != Minute {
		t.Errorf("ParseField(mins) = %v, %v", f, err)
	}
	if _, err := ParseField("second"); err == nil {
		t.Errorf("ParseField(second) expected error")
	}
	if next, ok := Minute.Next(); ok || next != Minute {
		t.Errorf("Minute.Next() = %v, %v", next, ok)
	}
	if prev, ok := Month.Prev(); !ok || prev != Year {
		t.Errorf("Month.Prev() = %v, %v", prev, ok)
	}
	if Year.MaxLength() != 4 || Day.MaxLength() != 2 {
		t.Errorf("unexpected max lengths")
	}
}
