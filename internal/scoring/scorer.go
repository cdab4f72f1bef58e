// Package scoring implements the weighted fixed-form instrument scorer shared
// by the check-in and the wellbeing instrument. It performs no I/O and keeps
// no state: Score is safe to call from any number of goroutines.
package scoring

import (
	"math"

	"github.com/nyashahama/wellbeing-risk-engine/internal/instrument"
	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// Result is the outcome of scoring one set of answers. It is built fresh on
// every call and never mutated afterwards.
type Result struct {
	// TotalScore is the weighted score normalized to [0,1], rounded to four
	// decimal places.
	TotalScore float64
	Level      risk.Level
	// Sections holds per-section normalized scores; nil when the instrument
	// declares no sections.
	Sections map[string]float64
	// CrisisFlag is set when any safety-critical question has a raw answer at
	// or above SafetyCriticalThreshold.
	CrisisFlag bool
}

// LevelLabel returns the text def uses for r.Level.
func (r Result) LevelLabel(def instrument.Definition) string {
	if r.Level == risk.Medium && def.MediumLabel != "" {
		return def.MediumLabel
	}
	return r.Level.String()
}

type sums struct {
	weighted float64
	max      float64
}

func (s sums) normalized() float64 {
	if s.max == 0 {
		return 0
	}
	return round4(s.weighted / s.max)
}

// Score computes the weighted normalized score of answers against def.
//
// Unanswered questions count as 0 (see FillMissingWithZero). Values outside
// [0, MaxValue] are clamped, not rejected: the answer domain is small and
// fully controlled by the UI, so a stray value must never produce an
// out-of-range score. Reverse-scored questions contribute MaxValue - v, but
// the crisis flag always looks at the raw value.
func Score(def instrument.Definition, answers []instrument.Answer) Result {
	values := FillMissingWithZero(def, answers)

	var (
		total      sums
		bySection  map[string]*sums
		crisisFlag bool
	)
	if def.HasSections() {
		bySection = make(map[string]*sums)
	}

	for _, q := range def.Questions {
		raw := clamp(values[q.ID], 0, q.MaxValue)

		v := raw
		if q.Reverse {
			v = q.MaxValue - raw
		}

		weighted := q.Weight * float64(v)
		ceiling := q.Weight * float64(q.MaxValue)
		total.weighted += weighted
		total.max += ceiling

		if bySection != nil && q.Section != "" {
			s, ok := bySection[q.Section]
			if !ok {
				s = &sums{}
				bySection[q.Section] = s
			}
			s.weighted += weighted
			s.max += ceiling
		}

		if q.SafetyCritical && raw >= SafetyCriticalThreshold {
			crisisFlag = true
		}
	}

	res := Result{
		TotalScore: total.normalized(),
		CrisisFlag: crisisFlag,
	}
	res.Level = BandFor(res.TotalScore)

	if bySection != nil {
		res.Sections = make(map[string]float64, len(bySection))
		for name, s := range bySection {
			res.Sections[name] = s.normalized()
		}
	}
	return res
}

// FillMissingWithZero resolves answers into exactly one value per question of
// def. Questions without an answer get 0, answers for ids that are not part
// of the instrument are dropped, and when an id is answered twice the first
// answer wins. Values are returned unclamped.
func FillMissingWithZero(def instrument.Definition, answers []instrument.Answer) map[string]int {
	given := make(map[string]int, len(answers))
	for _, a := range answers {
		if _, dup := given[a.ID]; !dup {
			given[a.ID] = a.Value
		}
	}

	values := make(map[string]int, len(def.Questions))
	for _, q := range def.Questions {
		values[q.ID] = given[q.ID] // zero when absent
	}
	return values
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
