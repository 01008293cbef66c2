package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/chromatic/internal/constants"
	"github.com/julianstephens/chromatic/internal/datetime"
)

// ScheduleColumns splits a schedule into the nullable year, month and day
// columns plus an HH:MM time of day. An hour without minutes is stored on
// the hour.
func ScheduleColumns(p datetime.PartialDate) (year, month, day sql.NullInt64, timeOfDay sql.NullString) {
	p = p.Prefix()
	if v, ok := p.Get(datetime.Year); ok {
		year = sql.NullInt64{Int64: int64(v), Valid: true}
	}
	if v, ok := p.Get(datetime.Month); ok {
		month = sql.NullInt64{Int64: int64(v), Valid: true}
	}
	if v, ok := p.Get(datetime.Day); ok {
		day = sql.NullInt64{Int64: int64(v), Valid: true}
	}
	if h, ok := p.Get(datetime.Hour); ok {
		m, _ := p.Get(datetime.Minute)
		timeOfDay = sql.NullString{String: fmt.Sprintf("%02d:%02d", h, m), Valid: true}
	}
	return year, month, day, timeOfDay
}

// ScheduleFromColumns is the inverse of ScheduleColumns. Columns after the
// first NULL are ignored.
func ScheduleFromColumns(year, month, day sql.NullInt64, timeOfDay sql.NullString) (datetime.PartialDate, error) {
	var parts []int
	for _, c := range []sql.NullInt64{year, month, day} {
		if !c.Valid {
			return datetime.NewPartialDate(parts...), nil
		}
		parts = append(parts, int(c.Int64))
	}
	if timeOfDay.Valid && timeOfDay.String != "" {
		tod, err := time.Parse(constants.TimeFormat, timeOfDay.String)
		if err != nil {
			return datetime.PartialDate{}, fmt.Errorf("invalid time_scheduled %q: %w", timeOfDay.String, err)
		}
		parts = append(parts, tod.Hour(), tod.Minute())
	}
	return datetime.NewPartialDate(parts...), nil
}
