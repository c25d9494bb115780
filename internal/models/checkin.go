// ABOUTME: Daily check-in model with symptom and mood enums.
// ABOUTME: One check-in per calendar day, keyed by its ISO date.
package models

import "fmt"

// Symptom is a predefined symptom tag.
type Symptom string

const (
	SymptomFatigue             Symptom = "fatigue"
	SymptomPain                Symptom = "pain"
	SymptomBrainFog            Symptom = "brain-fog"
	SymptomDizziness           Symptom = "dizziness"
	SymptomAnxiety             Symptom = "anxiety"
	SymptomNausea              Symptom = "nausea"
	SymptomSensorySensitivity  Symptom = "sensory-sensitivity"
	SymptomOverwhelm           Symptom = "overwhelm"
	SymptomEmotionalExhaustion Symptom = "emotional-exhaustion"
	SymptomIrritability        Symptom = "irritability"
)

// AllSymptoms returns all valid symptoms in display order.
var AllSymptoms = []Symptom{
	SymptomFatigue, SymptomPain, SymptomBrainFog, SymptomDizziness, SymptomAnxiety,
	SymptomNausea, SymptomSensorySensitivity, SymptomOverwhelm,
	SymptomEmotionalExhaustion, SymptomIrritability,
}

// IsValid reports whether s is a known symptom.
func (s Symptom) IsValid() bool {
	for _, v := range AllSymptoms {
		if v == s {
			return true
		}
	}
	return false
}

// Mood is the single mood recorded with a check-in.
type Mood string

const (
	MoodCalm        Mood = "calm"
	MoodOverwhelmed Mood = "overwhelmed"
	MoodHopeful     Mood = "hopeful"
	MoodTired       Mood = "tired"
	MoodAnxious     Mood = "anxious"
	MoodContent     Mood = "content"
)

// AllMoods returns all valid moods in display order.
var AllMoods = []Mood{MoodCalm, MoodOverwhelmed, MoodHopeful, MoodTired, MoodAnxious, MoodContent}

// IsValid reports whether m is a known mood.
func (m Mood) IsValid() bool {
	for _, v := range AllMoods {
		if v == m {
			return true
		}
	}
	return false
}

// ParseMood validates s against the mood set.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown mood: %s", s)
	}
	return m, nil
}

// ParseSymptom validates s against the symptom set.
func ParseSymptom(s string) (Symptom, error) {
	sym := Symptom(s)
	if !sym.IsValid() {
		return "", fmt.Errorf("unknown symptom: %s", s)
	}
	return sym, nil
}

// CheckIn is a single daily self-report. Date doubles as the natural key and ID.
type CheckIn struct {
	ID          string      `json:"id" yaml:"id" validate:"required"`
	Date        string      `json:"date" yaml:"date" validate:"required,isodate"`
	EnergyLevel EnergyLevel `json:"energyLevel" yaml:"energy_level" validate:"energy"`
	Symptoms    []Symptom   `json:"symptoms" yaml:"symptoms" validate:"dive,symptom"`
	Mood        Mood        `json:"mood" yaml:"mood" validate:"mood"`
}

// NewCheckIn creates a check-in for date. Symptoms defaults to an empty set.
func NewCheckIn(date string, energy EnergyLevel, mood Mood, symptoms ...Symptom) *CheckIn {
	if symptoms == nil {
		symptoms = []Symptom{}
	}
	return &CheckIn{
		ID:          date,
		Date:        date,
		EnergyLevel: energy,
		Symptoms:    symptoms,
		Mood:        mood,
	}
}

// HasSymptom reports whether s was logged.
func (c *CheckIn) HasSymptom(s Symptom) bool {
	for _, v := range c.Symptoms {
		if v == s {
			return true
		}
	}
	return false
}

// ToggleSymptom adds s if absent and removes it if present.
func (c *CheckIn) ToggleSymptom(s Symptom) *CheckIn {
	if !c.HasSymptom(s) {
		c.Symptoms = append(c.Symptoms, s)
		return c
	}
	kept := make([]Symptom, 0, len(c.Symptoms))
	for _, v := range c.Symptoms {
		if v != s {
			kept = append(kept, v)
		}
	}
	c.Symptoms = kept
	return c
}
