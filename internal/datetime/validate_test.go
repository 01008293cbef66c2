package datetime

import (
	"errors"
	"testing"
)

func TestValidateYear(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr error
		wantMsg string
	}{
		{"2025", nil, ""},
		{"1000", nil, ""},
		{"2999", nil, ""},
		{" 2025 ", nil, ""},
		{"999", ErrRange, "Year too small."},
		{"50", ErrRange, "Year too small."},
		{"3000", ErrRange, "Year too big."},
		{"abcd", ErrConversion, "Couldn't convert to a number."},
		{"", ErrConversion, "Couldn't convert to a number."},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := ValidateYear(tt.raw)
			checkValidation(t, err, tt.wantErr, tt.wantMsg)
		})
	}
}

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr error
	}{
		{"1", nil},
		{"12", nil},
		{"07", nil},
		{"0", ErrRange},
		{"13", ErrRange},
		{"-1", ErrRange},
		{"x", ErrConversion},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := ValidateMonth(tt.raw)
			msg := ""
			if errors.Is(tt.wantErr, ErrRange) {
				msg = "Month should be between 1 and 12 inclusive."
			} else if tt.wantErr != nil {
				msg = "Couldn't convert to a number."
			}
			checkValidation(t, err, tt.wantErr, msg)
		})
	}
}

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day string
		wantErr          error
		wantMsg          string
	}{
		{"leap day in leap year", "2024", "2", "29", nil, ""},
		{"leap day in non-leap year", "2023", "2", "29", ErrCalendar, "The specific date does not exist."},
		{"leap day in century year", "1900", "2", "29", ErrCalendar, "The specific date does not exist."},
		{"leap day in 400 year", "2000", "2", "29", nil, ""},
		{"april 31", "2023", "4", "31", ErrCalendar, "The specific date does not exist."},
		{"april 30", "2023", "4", "30", nil, ""},
		{"feb 30", "2024", "2", "30", ErrCalendar, "The specific date does not exist."},
		{"december 31", "2025", "12", "31", nil, ""},
		{"zero", "2025", "1", "0", ErrRange, "Day can't be lower than 1."},
		{"too big", "2025", "1", "32", ErrRange, "Day can't be higher than 31."},
		{"day not a number", "2025", "1", "x", ErrConversion, "Couldn't convert to a number."},
		{"month not a number", "2025", "", "1", ErrConversion, "Couldn't convert to a number."},
		{"year not a number", "20x5", "1", "1", ErrConversion, "Couldn't convert to a number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDay(tt.year, tt.month, tt.day)
			checkValidation(t, err, tt.wantErr, tt.wantMsg)
		})
	}
}

func TestValidateHourMinute(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		raw     string
		wantErr error
		wantMsg string
	}{
		{"hour zero", ValidateHour, "0", nil, ""},
		{"hour 23", ValidateHour, "23", nil, ""},
		{"hour 24", ValidateHour, "24", ErrRange, "Hour can't be higher than 23"},
		{"hour negative", ValidateHour, "-1", ErrRange, "Hour can't be negative"},
		{"hour text", ValidateHour, "h", ErrConversion, "Couldn't convert to number."},
		{"minute zero", ValidateMinute, "0", nil, ""},
		{"minute 59", ValidateMinute, "59", nil, ""},
		{"minute 60", ValidateMinute, "60", ErrRange, "Minutes can't be higher than 59"},
		{"minute negative", ValidateMinute, "-5", ErrRange, "Minutes can't be negative"},
		{"minute text", ValidateMinute, "m", ErrConversion, "Couldn't convert to number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, tt.fn(tt.raw), tt.wantErr, tt.wantMsg)
		})
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2100, 2, 28},
		{2000, 2, 29},
		{2025, 1, 31},
		{2025, 4, 30},
		{2025, 12, 31},
		{2025, 0, 0},
		{2025, 13, 0},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := ValidateDay("2023", "2", "29")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != Day {
		t.Errorf("Field = %v, want day", verr.Field)
	}
	if verr.Kind != KindCalendar {
		t.Errorf("Kind = %v, want calendar", verr.Kind)
	}
}

func checkValidation(t *testing.T, err, wantErr error, wantMsg string) {
	t.Helper()
	if wantErr == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want kind %v", err, wantErr)
	}
	if err.Error() != wantMsg {
		t.Errorf("message = %q, want %q", err.Error(), wantMsg)
	}
}
