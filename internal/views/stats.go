// ABOUTME: Weekly aggregates: completion rate, average energy, completed totals.
// ABOUTME: Averages skip days without a check-in.
package views

import (
	"math"

	"github.com/harperreed/spoons/internal/models"
)

// NoData is the average-energy label when no check-ins are present.
const NoData = "No data"

// CompletionRate returns the rounded percentage of completed tasks, 0 for an empty list.
func CompletionRate(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

// AverageEnergy averages the ordinals of the check-ins and maps the mean back
// onto the scale with cut points halfway between levels. Check-ins with an
// unknown level are skipped. ok is false when nothing was averaged.
func AverageEnergy(checkIns []models.CheckIn) (level models.EnergyLevel, ok bool) {
	sum, n := 0, 0
	for _, c := range checkIns {
		if o := c.EnergyLevel.Ordinal(); o > 0 {
			sum += o
			n++
		}
	}
	if n == 0 {
		return "", false
	}

	mean := float64(sum) / float64(n)
	levels := len(models.AllEnergyLevels)
	for k := 1; k < levels; k++ {
		if mean <= float64(k)+0.5 {
			return models.EnergyFromOrdinal(k)
		}
	}
	return models.EnergyFromOrdinal(levels)
}

// AverageEnergyLabel returns the display label of AverageEnergy, or NoData.
func AverageEnergyLabel(checkIns []models.CheckIn) string {
	level, ok := AverageEnergy(checkIns)
	if !ok {
		return NoData
	}
	return level.Label()
}

// CheckInsOf collects the check-ins present in a week series.
func CheckInsOf(week []Day) []models.CheckIn {
	var out []models.CheckIn
	for _, d := range week {
		if d.CheckIn != nil {
			out = append(out, *d.CheckIn)
		}
	}
	return out
}

// TotalCompleted sums completed tasks across the week.
func TotalCompleted(week []Day) int {
	total := 0
	for _, d := range week {
		total += d.CompletedCount()
	}
	return total
}

// DaySummary is one row of a week summary.
type DaySummary struct {
	Date      string             `json:"date"`
	Weekday   string             `json:"weekday"`
	Energy    models.EnergyLevel `json:"energy,omitempty"`
	Mood      models.Mood        `json:"mood,omitempty"`
	Completed int                `json:"completed"`
	Total     int                `json:"total"`
}

// WeekSummary aggregates a week series.
type WeekSummary struct {
	Start              string             `json:"start"`
	End                string             `json:"end"`
	AverageEnergy      models.EnergyLevel `json:"averageEnergy,omitempty"`
	AverageEnergyLabel string             `json:"averageEnergyLabel"`
	CheckIns           int                `json:"checkIns"`
	TotalCompleted     int                `json:"totalCompleted"`
	TotalTasks         int                `json:"totalTasks"`
	CompletionRate     int                `json:"completionRate"`
	Days               []DaySummary       `json:"days"`
}

// Summarize aggregates a week series into a single summary.
func Summarize(week []Day) WeekSummary {
	checkIns := CheckInsOf(week)
	var all []models.Task

	s := WeekSummary{
		AverageEnergyLabel: AverageEnergyLabel(checkIns),
		CheckIns:           len(checkIns),
		TotalCompleted:     TotalCompleted(week),
		Days:               make([]DaySummary, 0, len(week)),
	}
	if level, ok := AverageEnergy(checkIns); ok {
		s.AverageEnergy = level
	}
	if len(week) > 0 {
		s.Start = week[0].Date
		s.End = week[len(week)-1].Date
	}

	for _, d := range week {
		ds := DaySummary{
			Date:      d.Date,
			Weekday:   d.Weekday.String(),
			Completed: d.CompletedCount(),
			Total:     len(d.Tasks),
		}
		if d.CheckIn != nil {
			ds.Energy = d.CheckIn.EnergyLevel
			ds.Mood = d.CheckIn.Mood
		}
		s.Days = append(s.Days, ds)
		all = append(all, d.Tasks...)
	}
	s.TotalTasks = len(all)
	s.CompletionRate = CompletionRate(all)
	return s
}
