package datetime

import "time"

// PartialDate is a progressively completed date and time. A nil part is
// absent. Only a prefix in cascade order is meaningful: Day without Month is
// never produced by an Input.
type PartialDate struct {
	Year   *int `json:"year,omitempty"`
	Month  *int `json:"month,omitempty"`
	Day    *int `json:"day,omitempty"`
	Hour   *int `json:"hour,omitempty"`
	Minute *int `json:"minute,omitempty"`
}

// NewPartialDate builds a PartialDate from values in cascade order. Extra
// values beyond Minute are ignored.
//
//	NewPartialDate(2025, 3, 14) // March 14, 2025
func NewPartialDate(parts ...int) PartialDate {
	var p PartialDate
	for i, v := range parts {
		if i >= fieldCount {
			break
		}
		p.set(Field(i), v)
	}
	return p
}

// Get returns the value of f and whether it is present.
func (p PartialDate) Get(f Field) (int, bool) {
	ptr := p.ptr(f)
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

// Len returns the length of the present prefix: 0 for an empty date, 5 when
// every part down to the minute is set.
func (p PartialDate) Len() int {
	n := 0
	for _, f := range Fields() {
		if p.ptr(f) == nil {
			break
		}
		n++
	}
	return n
}

// Prefix returns p with everything after the first absent part dropped.
func (p PartialDate) Prefix() PartialDate {
	var out PartialDate
	for _, f := range Fields()[:p.Len()] {
		v, _ := p.Get(f)
		out.set(f, v)
	}
	return out
}

func (p PartialDate) IsEmpty() bool {
	return p.Year == nil
}

// HasTime reports whether a time of day is part of the date.
func (p PartialDate) HasTime() bool {
	return p.Len() > int(Hour)
}

func (p PartialDate) Equal(o PartialDate) bool {
	for _, f := range Fields() {
		a, aok := p.Get(f)
		b, bok := o.Get(f)
		if aok != bok || a != b {
			return false
		}
	}
	return true
}

// Time converts the present prefix to a time.Time in loc. Missing parts take
// their first value (January, the 1st, midnight). The zero time is returned
// for an empty date.
func (p PartialDate) Time(loc *time.Location) time.Time {
	if p.IsEmpty() {
		return time.Time{}
	}
	if loc == nil {
		loc = time.Local
	}
	vals := [fieldCount]int{0, 1, 1, 0, 0}
	for _, f := range Fields()[:p.Len()] {
		vals[f], _ = p.Get(f)
	}
	return time.Date(vals[Year], time.Month(vals[Month]), vals[Day], vals[Hour], vals[Minute], 0, 0, loc)
}

func (p PartialDate) String() string {
	return FormatDate(p)
}

func (p *PartialDate) set(f Field, v int) {
	val := v
	switch f {
	case Year:
		p.Year = &val
	case Month:
		p.Month = &val
	case Day:
		p.Day = &val
	case Hour:
		p.Hour = &val
	case Minute:
		p.Minute = &val
	}
}

func (p PartialDate) ptr(f Field) *int {
	switch f {
	case Year:
		return p.Year
	case Month:
		return p.Month
	case Day:
		return p.Day
	case Hour:
		return p.Hour
	case Minute:
		return p.Minute
	}
	return nil
}
