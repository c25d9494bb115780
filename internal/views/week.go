// ABOUTME: Sunday-to-Saturday week series pairing each day with its check-in and tasks.
// ABOUTME: The reference date is injected by the caller.
package views

import (
	"time"

	"github.com/harperreed/spoons/internal/models"
)

// Day is one entry of a week series.
type Day struct {
	Date    string
	Weekday time.Weekday
	CheckIn *models.CheckIn
	Tasks   []models.Task
}

// CompletedCount returns how many of the day's tasks are done.
func (d Day) CompletedCount() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// WeekStart returns midnight on the Sunday of ref's week, in ref's location.
func WeekStart(ref time.Time) time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// BuildWeek returns seven days, Sunday through Saturday, of the week
// containing ref. Tasks are matched on their assigned date.
func BuildWeek(ref time.Time, checkIns []models.CheckIn, tasks []models.Task) []Day {
	byDate := make(map[string]models.CheckIn, len(checkIns))
	for _, c := range checkIns {
		byDate[c.Date] = c
	}

	start := WeekStart(ref)
	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		date := models.FormatDate(d)
		day := Day{
			Date:    date,
			Weekday: d.Weekday(),
			Tasks:   FilterByDate(tasks, date),
		}
		if c, ok := byDate[date]; ok {
			day.CheckIn = &c
		}
		days = append(days, day)
	}
	return days
}
