package datetime

import (
	"fmt"
	"strings"
)

// Field identifies one of the five inputs of a date/time entry. The order of
// the constants is the cascade order.
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
)

const fieldCount = 5

var fieldNames = [fieldCount]string{"year", "month", "day", "hour", "minute"}

// Fields returns every field in cascade order.
func Fields() []Field {
	return []Field{Year, Month, Day, Hour, Minute}
}

func (f Field) String() string {
	if f < Year || f > Minute {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Next returns the field after f and false when f is the last one.
func (f Field) Next() (Field, bool) {
	if f >= Minute {
		return f, false
	}
	return f + 1, true
}

// Prev returns the field before f and false when f is the first one.
func (f Field) Prev() (Field, bool) {
	if f <= Year {
		return f, false
	}
	return f - 1, true
}

// MaxLength is the number of characters the field accepts.
func (f Field) MaxLength() int {
	if f == Year {
		return 4
	}
	return 2
}

// Placeholder is the hint shown in an empty field.
func (f Field) Placeholder() string {
	switch f {
	case Year:
		return "YYYY"
	case Month:
		return "MM"
	case Day:
		return "DD"
	case Hour:
		return "hh"
	case Minute:
		return "mm"
	}
	return ""
}

// ParseField resolves a field by name. "mins" is accepted for Minute.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "year":
		return Year, nil
	case "month":
		return Month, nil
	case "day":
		return Day, nil
	case "hour":
		return Hour, nil
	case "minute", "mins":
		return Minute, nil
	}
	return 0, fmt.Errorf("unknown date field: %q", name)
}

func (f Field) valid() bool {
	return f >= Year && f <= Minute
}
