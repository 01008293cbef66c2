package datetime

import (
	"fmt"
	"strings"
)

// Parse reads a partial date written as YYYY, YYYY-MM, YYYY-MM-DD,
// YYYY-MM-DD HH or YYYY-MM-DD HH:MM ("T" may separate date and time). Each
// part is entered into an Input in order, so the same rules apply as for
// typed values. An empty string parses to an empty PartialDate.
func Parse(s string) (PartialDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PartialDate{}, nil
	}

	datePart, timePart, hasTime := strings.Cut(strings.Replace(s, "T", " ", 1), " ")
	parts := strings.Split(datePart, "-")
	if len(parts) > 3 {
		return PartialDate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	if hasTime {
		if len(parts) != 3 {
			return PartialDate{}, fmt.Errorf("invalid date %q: a time needs a full date", s)
		}
		timeParts := strings.Split(strings.TrimSpace(timePart), ":")
		if len(timeParts) > 2 {
			return PartialDate{}, fmt.Errorf("invalid time in %q: expected HH:MM", s)
		}
		parts = append(parts, timeParts...)
	}

	in := NewInput()
	for i, raw := range parts {
		f := Field(i)
		if strings.TrimSpace(raw) == "" {
			return PartialDate{}, fmt.Errorf("invalid date %q: empty %s", s, f)
		}
		in.HandleFieldChange(f, raw)
		if err := in.Err(f); err != nil {
			return PartialDate{}, fmt.Errorf("invalid %s in %q: %w", f, s, err)
		}
	}
	return in.CurrentValue(), nil
}
