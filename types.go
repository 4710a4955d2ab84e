package main

import (
	"fmt"
	"time"
)

const (
	ScaleMin = 0
	ScaleMax = 5
)

// Entry is one self-rated Altman scale record. Date and Time are kept as
// the user entered them; Summary is derived from the scale values at
// commit time and never edited directly.
type Entry struct {
	ID         int64
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Sleep      int
	Speech     int
	Activity   int
	Cheer      int
	Confidence int
	Summary    int
}

// ScaleField names one of the five rating fields and knows how to read and
// write it on an Entry. The set is fixed; form, table and CLI all iterate
// the same list.
type ScaleField struct {
	Name string
	Get  func(*Entry) int
	Set  func(*Entry, int)
}

var ScaleFields = []ScaleField{
	{"sleep", func(e *Entry) int { return e.Sleep }, func(e *Entry, v int) { e.Sleep = v }},
	{"speech", func(e *Entry) int { return e.Speech }, func(e *Entry, v int) { e.Speech = v }},
	{"activity", func(e *Entry) int { return e.Activity }, func(e *Entry, v int) { e.Activity = v }},
	{"cheer", func(e *Entry) int { return e.Cheer }, func(e *Entry, v int) { e.Cheer = v }},
	{"confidence", func(e *Entry) int { return e.Confidence }, func(e *Entry, v int) { e.Confidence = v }},
}

// SummaryOf sums the values that are strictly greater than zero.
func SummaryOf(values ...int) int {
	sum := 0
	for _, v := range values {
		if v > 0 {
			sum += v
		}
	}
	return sum
}

// ScaleValues returns the five ratings in field order.
func (e *Entry) ScaleValues() []int {
	values := make([]int, len(ScaleFields))
	for i, f := range ScaleFields {
		values[i] = f.Get(e)
	}
	return values
}

// DeriveSummary recomputes Summary from the current scale values.
func (e *Entry) DeriveSummary() {
	e.Summary = SummaryOf(e.ScaleValues()...)
}

// Validate checks the ratings against the scale bounds and the date and
// time against the given layouts.
func (e *Entry) Validate(dateFormat, timeFormat string) error {
	for _, f := range ScaleFields {
		if v := f.Get(e); v < ScaleMin || v > ScaleMax {
			return fmt.Errorf("%s must be between %d and %d, got %d", f.Name, ScaleMin, ScaleMax, v)
		}
	}
	if _, err := time.Parse(dateFormat, e.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", e.Date, err)
	}
	if _, err := time.Parse(timeFormat, e.Time); err != nil {
		return fmt.Errorf("invalid time %q: %w", e.Time, err)
	}
	return nil
}
