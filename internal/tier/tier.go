// Package tier defines the five ordered difficulty tiers of a round.
package tier

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTier is returned by Parse for names that match no tier.
var ErrUnknownTier = errors.New("unknown tier")

// Tier is a difficulty level. Tiers are totally ordered; PhD is the last.
type Tier int

const (
	Elementary Tier = iota
	JuniorHigh
	HighSchool
	University
	PhD
)

// All returns every tier in ascending order.
func All() []Tier {
	return []Tier{Elementary, JuniorHigh, HighSchool, University, PhD}
}

// Valid reports whether t is one of the five tiers.
func (t Tier) Valid() bool {
	return t >= Elementary && t <= PhD
}

// Next returns the successor tier. PhD has no successor.
func (t Tier) Next() (Tier, bool) {
	if !t.Valid() || t == PhD {
		return t, false
	}
	return t + 1, true
}

// IsLast reports whether t is the final tier.
func (t Tier) IsLast() bool {
	return t == PhD
}

// String returns the tier name used in progress text, e.g. "JuniorHigh".
func (t Tier) String() string {
	switch t {
	case Elementary:
		return "Elementary"
	case JuniorHigh:
		return "JuniorHigh"
	case HighSchool:
		return "HighSchool"
	case University:
		return "University"
	case PhD:
		return "PhD"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// DisplayName returns a human-readable name, e.g. "Junior High".
func (t Tier) DisplayName() string {
	switch t {
	case JuniorHigh:
		return "Junior High"
	case HighSchool:
		return "High School"
	default:
		return t.String()
	}
}

// Key returns the lower-case kebab name used in config files and flags.
func (t Tier) Key() string {
	switch t {
	case Elementary:
		return "elementary"
	case JuniorHigh:
		return "junior-high"
	case HighSchool:
		return "high-school"
	case University:
		return "university"
	case PhD:
		return "phd"
	default:
		return ""
	}
}

// Parse resolves a tier from its key, name or display name. Matching
// ignores case, spaces, dashes and underscores.
func Parse(s string) (Tier, error) {
	norm := normalize(s)
	for _, t := range All() {
		if norm == normalize(t.String()) {
			return t, nil
		}
	}
	return Elementary, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func normalize(s string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// MarshalText implements encoding.TextMarshaler so tiers can key YAML maps.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(t.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
