package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	NoDate = "No date"
	// InvalidMonth is rendered for a month outside 1..12. An Input never
	// produces one; stored rows can.
	InvalidMonth = "Invalid_Month"
)

// MonthName returns the full English month name for 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return InvalidMonth
	}
	return time.Month(month).String()
}

// FormatDate renders the present prefix of p:
//
//	No date
//	2025
//	March 2025
//	March 14, 2025
//	March 14, 2025 | 9h00
//	March 14, 2025 | 9h30
func FormatDate(p PartialDate) string {
	year, ok := p.Get(Year)
	if !ok {
		return NoDate
	}

	var b strings.Builder
	if month, ok := p.Get(Month); ok {
		b.WriteString(MonthName(month))
		b.WriteByte(' ')
		if day, ok := p.Get(Day); ok {
			b.WriteString(strconv.Itoa(day))
			b.WriteString(", ")
		}
	}
	b.WriteString(strconv.Itoa(year))

	if p.Day != nil && p.Month != nil {
		if hour, ok := p.Get(Hour); ok {
			minute, _ := p.Get(Minute)
			fmt.Fprintf(&b, " | %s", FormatTime(hour, minute))
		}
	}
	return b.String()
}

// FormatTime renders a time of day as "9h05".
func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%dh%02d", hour, minute)
}
