// Package risk holds the shared risk taxonomy and the composite risk
// predictor. Like the rest of the core it is free of I/O: every function is a
// pure computation over its arguments.
package risk

import (
	"fmt"
	"strings"
)

// Level is the ordinal risk taxonomy shared by the instrument scorer, the
// composite predictor and the chat crisis detector. The zero value is Low.
// Comparisons between levels are integer comparisons, never floating point.
type Level int

const (
	Low Level = iota
	Medium
	High
	Crisis
)

var levelNames = [...]string{"low", "medium", "high", "crisis"}

func (l Level) String() string {
	if l < Low || l > Crisis {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool { return l >= Low && l <= Crisis }

// ParseLevel accepts the canonical names plus "moderate", which the wellbeing
// instrument and the inference service use for the medium band.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium", "moderate":
		return Medium, nil
	case "high":
		return High, nil
	case "crisis":
		return Crisis, nil
	default:
		return Low, fmt.Errorf("risk: unknown level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("risk: cannot marshal invalid level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(b []byte) error {
	parsed, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Max returns the more severe of a and b.
func Max(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}
