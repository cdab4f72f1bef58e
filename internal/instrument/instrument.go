// Package instrument defines the fixed-form questionnaires scored by the
// engine. Definitions are immutable, versioned data: nothing in this package
// computes a score.
package instrument

import (
	"errors"
	"fmt"
)

// Section tags group questions for the per-section breakdown.
const (
	SectionMood        = "mood"
	SectionStress      = "stress"
	SectionFunctioning = "functioning"
)

// Question is one weighted item of an instrument.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	// Category is display metadata only; scoring ignores it.
	Category string `json:"category,omitempty"`
	// Section, when set, places the question in a scored sub-group.
	Section  string  `json:"section,omitempty"`
	Weight   float64 `json:"weight"`
	MaxValue int     `json:"maxValue"`
	// Reverse marks items phrased positively: MaxValue - v is scored.
	Reverse bool `json:"reverse,omitempty"`
	// SafetyCritical items raise the crisis flag on a high raw answer
	// regardless of the aggregate score.
	SafetyCritical bool `json:"safetyCritical,omitempty"`
}

// Answer is the value a respondent chose for one question.
type Answer struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

// Option is one label on the answer scale shown to the respondent.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Definition is a versioned instrument.
type Definition struct {
	ID      string `json:"id"`
	Version string `json:"version"`
	Title   string `json:"title"`
	// MediumLabel is the text this instrument uses for the middle band.
	MediumLabel string     `json:"-"`
	Options     []Option   `json:"options"`
	Questions   []Question `json:"questions"`
}

// HasSections reports whether any question declares a section.
func (d Definition) HasSections() bool {
	for _, q := range d.Questions {
		if q.Section != "" {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of the definition: question ids
// are non-empty and unique, weights are positive and every MaxValue is at
// least 1. Call it once at startup, not on every request.
func (d Definition) Validate() error {
	var errs []error
	seen := make(map[string]struct{}, len(d.Questions))
	for i, q := range d.Questions {
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("question[%d]: empty id", i))
		} else if _, dup := seen[q.ID]; dup {
			errs = append(errs, fmt.Errorf("question %q: duplicate id", q.ID))
		}
		seen[q.ID] = struct{}{}

		if !(q.Weight > 0) {
			errs = append(errs, fmt.Errorf("question %q: weight %v must be > 0", q.ID, q.Weight))
		}
		if q.MaxValue < 1 {
			errs = append(errs, fmt.Errorf("question %q: maxValue %d must be >= 1", q.ID, q.MaxValue))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("instrument %s/%s: %w", d.ID, d.Version, err)
	}
	return nil
}
