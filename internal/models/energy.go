// ABOUTME: EnergyLevel enum shared by check-ins and task energy costs.
// ABOUTME: Defines the ordinal scale, labels, and per-level guidance.
package models

import "fmt"

// EnergyLevel is the ordinal energy scale used by check-ins and task costs.
type EnergyLevel string

const (
	EnergyVeryLow  EnergyLevel = "very-low"
	EnergyLow      EnergyLevel = "low"
	EnergyModerate EnergyLevel = "moderate"
	EnergyHigh     EnergyLevel = "high"
)

// AllEnergyLevels lists the scale from lowest to highest.
var AllEnergyLevels = []EnergyLevel{EnergyVeryLow, EnergyLow, EnergyModerate, EnergyHigh}

var energyLabels = map[EnergyLevel]string{
	EnergyVeryLow:  "Very Low",
	EnergyLow:      "Low",
	EnergyModerate: "Moderate",
	EnergyHigh:     "High",
}

var energyMessages = map[EnergyLevel]string{
	EnergyVeryLow:  "Rest is productive. You're doing what you need to do.",
	EnergyLow:      "Rest counts. You're doing enough today.",
	EnergyModerate: "Progress looks different every day.",
	EnergyHigh:     "You're allowed to go at your own pace.",
}

// NoCheckInMessage is shown when no energy has been logged yet.
const NoCheckInMessage = "How are you feeling today?"

// Ordinal returns the 1-based position on the scale, or 0 for unknown values.
func (e EnergyLevel) Ordinal() int {
	for i, lvl := range AllEnergyLevels {
		if lvl == e {
			return i + 1
		}
	}
	return 0
}

// IsValid reports whether e is a member of the scale.
func (e EnergyLevel) IsValid() bool {
	return e.Ordinal() > 0
}

// Label returns the display label.
func (e EnergyLevel) Label() string {
	if l, ok := energyLabels[e]; ok {
		return l
	}
	return string(e)
}

// Message returns an encouraging line for the level.
func (e EnergyLevel) Message() string {
	if m, ok := energyMessages[e]; ok {
		return m
	}
	return NoCheckInMessage
}

// SuggestedBucket maps an energy level onto the bucket a new task most
// likely belongs to.
func (e EnergyLevel) SuggestedBucket() Bucket {
	switch e {
	case EnergyVeryLow, EnergyLow:
		return BucketAdminMode
	case EnergyHigh:
		return BucketHeavyEnergy
	default:
		return BucketMediumEnergy
	}
}

// EnergyFromOrdinal returns the level at a 1-based position.
func EnergyFromOrdinal(n int) (EnergyLevel, bool) {
	if n < 1 || n > len(AllEnergyLevels) {
		return "", false
	}
	return AllEnergyLevels[n-1], true
}

// ParseEnergyLevel validates s against the scale.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	e := EnergyLevel(s)
	if !e.IsValid() {
		return "", fmt.Errorf("unknown energy level: %s (valid: very-low, low, moderate, high)", s)
	}
	return e, nil
}
