package datetime

import "strconv"

// FieldState is a snapshot of one field of an Input.
type FieldState struct {
	Raw     string
	Valid   bool
	Enabled bool
	// Err is the reason a non-empty field is invalid. It is nil for valid
	// fields and for empty ones.
	Err error
}

// Input is the progressive date/time entry: five raw text fields where each
// field only accepts edits once every field before it holds a valid value.
//
// An Input is not safe for concurrent use. Changes must be applied in the
// order the user made them because day validity reads the live year and
// month text.
type Input struct {
	fields [fieldCount]FieldState
}

// NewInput returns an empty Input: year enabled, everything else disabled.
func NewInput() *Input {
	in := &Input{}
	in.recompute()
	return in
}

// HandleFieldChange records new raw text for f and re-evaluates the chain.
// Edits to a disabled field are dropped.
func (in *Input) HandleFieldChange(f Field, raw string) {
	if !f.valid() || !in.fields[f].Enabled {
		return
	}
	in.fields[f].Raw = raw
	in.recompute()
}

// recompute derives validity and enablement for the whole chain from the raw
// text. A field is enabled iff all predecessors are valid; a disabled field
// loses its text.
func (in *Input) recompute() {
	prevValid := true
	for _, f := range Fields() {
		st := &in.fields[f]
		st.Enabled = prevValid
		st.Valid = false
		st.Err = nil
		if !st.Enabled {
			st.Raw = ""
		} else if st.Raw != "" {
			st.Err = in.validate(f)
			st.Valid = st.Err == nil
		}
		prevValid = st.Valid
	}
}

func (in *Input) validate(f Field) error {
	raw := in.fields[f].Raw
	switch f {
	case Year:
		return ValidateYear(raw)
	case Month:
		return ValidateMonth(raw)
	case Day:
		return ValidateDay(in.fields[Year].Raw, in.fields[Month].Raw, raw)
	case Hour:
		return ValidateHour(raw)
	case Minute:
		return ValidateMinute(raw)
	}
	return nil
}

// CurrentValue returns the longest valid prefix of the input.
func (in *Input) CurrentValue() PartialDate {
	var p PartialDate
	for _, f := range Fields() {
		st := in.fields[f]
		if !st.Valid {
			break
		}
		v, ok := atoi(st.Raw)
		if !ok {
			break
		}
		p.set(f, v)
	}
	return p
}

// Populate loads p into the input, field by field in cascade order, stopping
// at the first absent part. Values go through the same validation as typed
// ones, so an out of range part leaves everything after it disabled.
func (in *Input) Populate(p PartialDate) {
	in.Reset()
	for _, f := range Fields() {
		v, ok := p.Get(f)
		if !ok {
			return
		}
		in.HandleFieldChange(f, strconv.Itoa(v))
	}
}

// Reset clears every field.
func (in *Input) Reset() {
	in.fields = [fieldCount]FieldState{}
	in.recompute()
}

// DisplayText summarises the current value, e.g. "March 14, 2025 | 9h30".
func (in *Input) DisplayText() string {
	return FormatDate(in.CurrentValue())
}

func (in *Input) State(f Field) FieldState {
	if !f.valid() {
		return FieldState{}
	}
	return in.fields[f]
}

func (in *Input) Raw(f Field) string { return in.State(f).Raw }

func (in *Input) Enabled(f Field) bool { return in.State(f).Enabled }

func (in *Input) Valid(f Field) bool { return in.State(f).Valid }

func (in *Input) Err(f Field) error { return in.State(f).Err }

// FirstError returns the earliest field currently reporting an error, or a
// nil error when every field is valid or empty.
func (in *Input) FirstError() (Field, error) {
	for _, f := range Fields() {
		if err := in.fields[f].Err; err != nil {
			return f, err
		}
	}
	return Year, nil
}
