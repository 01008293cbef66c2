package datetime

import (
	"strconv"
	"testing"
)

func enter(in *Input, values ...string) {
	for i, v := range values {
		in.HandleFieldChange(Field(i), v)
	}
}

func TestNewInputOnlyYearEnabled(t *testing.T) {
	in := NewInput()
	for _, f := range Fields() {
		want := f == Year
		if got := in.Enabled(f); got != want {
			t.Errorf("Enabled(%s) = %v, want %v", f, got, want)
		}
		if in.Valid(f) {
			t.Errorf("Valid(%s) = true on empty input", f)
		}
	}
	if !in.CurrentValue().IsEmpty() {
		t.Errorf("CurrentValue() = %v, want empty", in.CurrentValue())
	}
	if got := in.DisplayText(); got != "No date" {
		t.Errorf("DisplayText() = %q, want %q", got, "No date")
	}
}

func TestHandleFieldChangeEnablesNext(t *testing.T) {
	in := NewInput()

	in.HandleFieldChange(Year, "2025")
	if !in.Valid(Year) || !in.Enabled(Month) {
		t.Fatalf("valid year should enable month")
	}
	if in.Enabled(Day) {
		t.Fatalf("day must stay disabled until month is valid")
	}

	in.HandleFieldChange(Month, "3")
	if !in.Enabled(Day) || in.Enabled(Hour) {
		t.Fatalf("valid month should enable day only")
	}

	in.HandleFieldChange(Day, "14")
	in.HandleFieldChange(Hour, "9")
	if !in.Enabled(Minute) {
		t.Fatalf("valid hour should enable minute")
	}
}

func TestDisabledFieldIgnoresChanges(t *testing.T) {
	in := NewInput()
	in.HandleFieldChange(Month, "3")
	if got := in.Raw(Month); got != "" {
		t.Errorf("Raw(month) = %q, want empty while disabled", got)
	}
	in.HandleFieldChange(Field(42), "1")
	if got := in.State(Field(42)); got != (FieldState{}) {
		t.Errorf("State(unknown) = %+v, want zero", got)
	}
}

func TestValidChainProducesPartialDate(t *testing.T) {
	years := []int{1000, 1900, 2000, 2023, 2024, 2999}
	for _, y := range years {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= DaysIn(y, m); d++ {
				in := NewInput()
				enter(in, strconv.Itoa(y), strconv.Itoa(m), strconv.Itoa(d))
				for _, f := range []Field{Year, Month, Day} {
					if !in.Valid(f) {
						t.Fatalf("%d-%d-%d: %s invalid: %v", y, m, d, f, in.Err(f))
					}
				}
				want := NewPartialDate(y, m, d)
				if got := in.CurrentValue(); !got.Equal(want) {
					t.Fatalf("%d-%d-%d: CurrentValue() = %+v", y, m, d, got)
				}
				if got := in.CurrentValue(); got.Hour != nil || got.Minute != nil {
					t.Fatalf("%d-%d-%d: unexpected time in %v", y, m, d, got)
				}
			}
		}
	}
}

func TestInvalidYearClearsDownstream(t *testing.T) {
	in := NewInput()
	enter(in, "2025", "3", "14", "9", "30")
	if got := in.CurrentValue().Len(); got != 5 {
		t.Fatalf("expected full chain, got prefix of %d", got)
	}

	in.HandleFieldChange(Year, "50")

	if in.Valid(Year) {
		t.Fatalf("year 50 must be invalid")
	}
	if err := in.Err(Year); err == nil || err.Error() != "Year too small." {
		t.Errorf("Err(year) = %v, want %q", err, "Year too small.")
	}
	for _, f := range []Field{Month, Day, Hour, Minute} {
		st := in.State(f)
		if st.Enabled || st.Valid || st.Raw != "" {
			t.Errorf("%s = %+v, want disabled and cleared", f, st)
		}
	}
	if !in.CurrentValue().IsEmpty() {
		t.Errorf("CurrentValue() = %+v, want empty", in.CurrentValue())
	}

	// Fixing the year re-enables only the month, which stays empty.
	in.HandleFieldChange(Year, "2025")
	if !in.Enabled(Month) || in.Raw(Month) != "" || in.Enabled(Day) {
		t.Errorf("after fixing year: month=%+v day=%+v", in.State(Month), in.State(Day))
	}
}

func TestClearingFieldDisablesDownstream(t *testing.T) {
	in := NewInput()
	enter(in, "2025", "3", "14", "9", "30")

	in.HandleFieldChange(Day, "")

	if in.Valid(Day) || !in.Enabled(Day) {
		t.Errorf("cleared day should be enabled and invalid: %+v", in.State(Day))
	}
	if in.Err(Day) != nil {
		t.Errorf("empty field should not report an error, got %v", in.Err(Day))
	}
	if in.Enabled(Hour) || in.Enabled(Minute) || in.Raw(Hour) != "" || in.Raw(Minute) != "" {
		t.Errorf("hour/minute should be disabled and cleared")
	}
	if got, want := in.CurrentValue(), NewPartialDate(2025, 3); !got.Equal(want) {
		t.Errorf("CurrentValue() = %+v, want %+v", got, want)
	}
}

func TestYearEditRevalidatesDay(t *testing.T) {
	in := NewInput()
	enter(in, "2024", "2", "29", "10")
	if !in.Valid(Day) || !in.Valid(Hour) {
		t.Fatalf("2024-02-29 10h should be valid")
	}

	in.HandleFieldChange(Year, "2023")

	if in.Valid(Day) {
		t.Fatalf("Feb 29 2023 must be rejected")
	}
	if got := in.Raw(Day); got != "29" {
		t.Errorf("day keeps its text while enabled, got %q", got)
	}
	if err := in.Err(Day); err == nil || err.Error() != "The specific date does not exist." {
		t.Errorf("Err(day) = %v", err)
	}
	if in.Enabled(Hour) || in.Raw(Hour) != "" {
		t.Errorf("hour should be disabled and cleared")
	}
	if got, want := in.CurrentValue(), NewPartialDate(2023, 2); !got.Equal(want) {
		t.Errorf("CurrentValue() = %+v, want %+v", got, want)
	}
}

func TestCurrentValueStopsAtFirstInvalid(t *testing.T) {
	in := NewInput()
	enter(in, "2025", "13")
	if got, want := in.CurrentValue(), NewPartialDate(2025); !got.Equal(want) {
		t.Errorf("CurrentValue() = %+v, want %+v", got, want)
	}
	f, err := in.FirstError()
	if err == nil || f != Month {
		t.Errorf("FirstError() = %s, %v; want month error", f, err)
	}
}

func TestDisplayTextProgression(t *testing.T) {
	in := NewInput()
	steps := []struct {
		field Field
		raw   string
		want  string
	}{
		{Year, "2025", "2025"},
		{Month, "3", "March 2025"},
		{Day, "14", "March 14, 2025"},
		{Hour, "9", "March 14, 2025 | 9h00"},
		{Minute, "30", "March 14, 2025 | 9h30"},
		{Minute, "5", "March 14, 2025 | 9h05"},
		{Minute, "61", "March 14, 2025 | 9h00"},
		{Month, "0", "2025"},
	}
	for _, s := range steps {
		in.HandleFieldChange(s.field, s.raw)
		if got := in.DisplayText(); got != s.want {
			t.Errorf("after %s=%q: DisplayText() = %q, want %q", s.field, s.raw, got, s.want)
		}
	}
}

func TestPopulateYearOnly(t *testing.T) {
	in := NewInput()
	in.Populate(NewPartialDate(2030))

	if got := in.Raw(Year); got != "2030" {
		t.Errorf("Raw(year) = %q, want 2030", got)
	}
	if !in.Enabled(Month) {
		t.Errorf("month should be enabled after a valid year")
	}
	for _, f := range []Field{Month, Day, Hour, Minute} {
		if in.Raw(f) != "" {
			t.Errorf("Raw(%s) = %q, want empty", f, in.Raw(f))
		}
	}
	for _, f := range []Field{Day, Hour, Minute} {
		if in.Enabled(f) {
			t.Errorf("%s should be disabled", f)
		}
	}
}

func TestPopulateStopsAtFirstAbsent(t *testing.T) {
	day := 14
	hour := 9
	p := NewPartialDate(2025)
	p.Day = &day
	p.Hour = &hour

	in := NewInput()
	in.Populate(p)

	if in.Raw(Day) != "" || in.Raw(Hour) != "" {
		t.Errorf("fields after a missing month must not be populated")
	}
	if got, want := in.CurrentValue(), NewPartialDate(2025); !got.Equal(want) {
		t.Errorf("CurrentValue() = %+v, want %+v", got, want)
	}
}

func TestPopulateEmptyResets(t *testing.T) {
	in := NewInput()
	enter(in, "2025", "3")
	in.Populate(PartialDate{})

	if in.Raw(Year) != "" || in.Enabled(Month) {
		t.Errorf("populate with no year should leave the input collapsed")
	}
	if got := in.DisplayText(); got != NoDate {
		t.Errorf("DisplayText() = %q", got)
	}
}

func TestPopulateValidatesValues(t *testing.T) {
	in := NewInput()
	in.Populate(NewPartialDate(2025, 13, 1))

	if in.Valid(Month) {
		t.Fatalf("month 13 must not validate")
	}
	if in.Raw(Day) != "" || in.Enabled(Day) {
		t.Errorf("day after an invalid month must stay disabled")
	}
	if got := in.DisplayText(); got != "2025" {
		t.Errorf("DisplayText() = %q, want 2025", got)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]string{
		{},
		{"2025"},
		{"2025", "3"},
		{"2024", "2", "29"},
		{"2025", "3", "14", "0"},
		{"2025", "12", "31", "23", "59"},
		{"2025", "3", "14", "9", "abc"},
	}
	for _, values := range inputs {
		in := NewInput()
		enter(in, values...)
		first := in.CurrentValue()

		replay := NewInput()
		for _, f := range Fields()[:first.Len()] {
			v, _ := first.Get(f)
			replay.HandleFieldChange(f, strconv.Itoa(v))
		}
		if got := replay.CurrentValue(); !got.Equal(first) {
			t.Errorf("%v: replayed %+v, want %+v", values, got, first)
		}

		populated := NewInput()
		populated.Populate(first)
		if got := populated.CurrentValue(); !got.Equal(first) {
			t.Errorf("%v: populated %+v, want %+v", values, got, first)
		}
	}
}

func TestReset(t *testing.T) {
	in := NewInput()
	enter(in, "2025", "3", "14")
	in.Reset()
	if !in.CurrentValue().IsEmpty() || in.Raw(Year) != "" || in.Enabled(Month) {
		t.Errorf("Reset left state behind: %+v", in.State(Year))
	}
}
