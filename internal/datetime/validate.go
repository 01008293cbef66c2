package datetime

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	MinYear = 1000
	MaxYear = 2999
)

// Kind classifies a validation failure.
type Kind int

const (
	KindConversion Kind = iota + 1
	KindRange
	KindCalendar
)

var (
	ErrConversion = errors.New("conversion error")
	ErrRange      = errors.New("range error")
	ErrCalendar   = errors.New("calendar error")
)

// ValidationError is the field-level error reported for a rejected value.
// Its Error text is meant for display next to the field.
type ValidationError struct {
	Field   Field
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindConversion:
		return ErrConversion
	case KindRange:
		return ErrRange
	case KindCalendar:
		return ErrCalendar
	}
	return nil
}

func conversionErr(f Field, msg string) error {
	return &ValidationError{Field: f, Kind: KindConversion, Message: msg}
}

func rangeErr(f Field, msg string) error {
	return &ValidationError{Field: f, Kind: KindRange, Message: msg}
}

const (
	msgNotANumber      = "Couldn't convert to a number."
	msgNotANumberShort = "Couldn't convert to number."
)

func atoi(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	return n, err == nil
}

func ValidateYear(raw string) error {
	year, ok := atoi(raw)
	if !ok {
		return conversionErr(Year, msgNotANumber)
	}
	if year < MinYear {
		return rangeErr(Year, "Year too small.")
	}
	if year > MaxYear {
		return rangeErr(Year, "Year too big.")
	}
	return nil
}

func ValidateMonth(raw string) error {
	month, ok := atoi(raw)
	if !ok {
		return conversionErr(Month, msgNotANumber)
	}
	if month < 1 || month > 12 {
		return rangeErr(Month, "Month should be between 1 and 12 inclusive.")
	}
	return nil
}

// ValidateDay checks rawDay against the raw year and month it belongs to.
// A year or month that does not convert fails as a conversion error.
func ValidateDay(rawYear, rawMonth, rawDay string) error {
	day, ok := atoi(rawDay)
	if !ok {
		return conversionErr(Day, msgNotANumber)
	}
	month, ok := atoi(rawMonth)
	if !ok {
		return conversionErr(Day, msgNotANumber)
	}
	year, ok := atoi(rawYear)
	if !ok {
		return conversionErr(Day, msgNotANumber)
	}
	if day < 1 {
		return rangeErr(Day, "Day can't be lower than 1.")
	}
	if day > 31 {
		return rangeErr(Day, "Day can't be higher than 31.")
	}
	if !IsRealDate(year, month, day) {
		return &ValidationError{Field: Day, Kind: KindCalendar, Message: "The specific date does not exist."}
	}
	return nil
}

func ValidateHour(raw string) error {
	hour, ok := atoi(raw)
	if !ok {
		return conversionErr(Hour, msgNotANumberShort)
	}
	if hour < 0 {
		return rangeErr(Hour, "Hour can't be negative")
	}
	if hour > 23 {
		return rangeErr(Hour, "Hour can't be higher than 23")
	}
	return nil
}

func ValidateMinute(raw string) error {
	minute, ok := atoi(raw)
	if !ok {
		return conversionErr(Minute, msgNotANumberShort)
	}
	if minute < 0 {
		return rangeErr(Minute, "Minutes can't be negative")
	}
	if minute > 59 {
		return rangeErr(Minute, "Minutes can't be higher than 59")
	}
	return nil
}

// DaysIn returns the number of days in month of year, or 0 for a month
// outside 1..12.
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear follows the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsRealDate reports whether year-month-day exists in the Gregorian calendar.
func IsRealDate(year, month, day int) bool {
	return year >= 1 && day >= 1 && day <= DaysIn(year, month)
}
