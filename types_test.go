package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryOf(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"mixed zeros", []int{5, 0, 3, 0, 2}, 10},
		{"all zero", []int{0, 0, 0, 0, 0}, 0},
		{"all max", []int{5, 5, 5, 5, 5}, 25},
		{"single", []int{1, 0, 0, 0, 0}, 1},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummaryOf(tt.values...))
		})
	}
}

func TestDeriveSummary(t *testing.T) {
	e := Entry{Sleep: 5, Activity: 3, Confidence: 2}
	e.DeriveSummary()
	assert.Equal(t, 10, e.Summary)

	e.Sleep = 0
	e.DeriveSummary()
	assert.Equal(t, 5, e.Summary)
}

func TestScaleFieldsRoundTrip(t *testing.T) {
	var e Entry
	for i, f := range ScaleFields {
		f.Set(&e, i+1)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, e.ScaleValues())
	assert.Equal(t, 1, e.Sleep)
	assert.Equal(t, 5, e.Confidence)
}

func TestValidate(t *testing.T) {
	valid := Entry{Date: "2026-08-30", Time: "09:30", Sleep: 2}
	assert.NoError(t, valid.Validate("2006-01-02", "15:04"))

	tooHigh := valid
	tooHigh.Cheer = 6
	assert.Error(t, tooHigh.Validate("2006-01-02", "15:04"))

	negative := valid
	negative.Speech = -1
	assert.Error(t, negative.Validate("2006-01-02", "15:04"))

	badDate := valid
	badDate.Date = "30/08/2026"
	assert.Error(t, badDate.Validate("2006-01-02", "15:04"))

	badTime := valid
	badTime.Time = "9pm"
	assert.Error(t, badTime.Validate("2006-01-02", "15:04"))
}
