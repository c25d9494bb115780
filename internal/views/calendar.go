// ABOUTME: Month grid layout for the due-date calendar.
// ABOUTME: Days are aligned under weekday columns starting on Sunday.
package views

import (
	"time"

	"github.com/harperreed/spoons/internal/models"
)

// Cell is one populated day in the month grid.
type Cell struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	IsToday    bool   `json:"isToday"`
	IsSelected bool   `json:"isSelected"`
	HasTasks   bool   `json:"hasTasks"`
}

// Calendar is a month laid out as week rows.
// The first row is preceded by LeadingBlanks empty columns.
type Calendar struct {
	Year          int
	Month         time.Month
	DaysInMonth   int
	FirstWeekday  time.Weekday
	LeadingBlanks int
	Weeks         [][]Cell
}

// DaysIn returns the number of days in month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildCalendar lays out a month. today and selected are ISO dates; a cell
// has tasks when any task's due date falls on it.
func BuildCalendar(year int, month time.Month, today, selected string, tasks []models.Task) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Normalize overflowed months like 13 or 0.
	year, month = first.Year(), first.Month()

	due := make(map[string]bool)
	for _, t := range tasks {
		if t.HasDueDate() {
			due[t.DueDate] = true
		}
	}

	n := DaysIn(year, month)
	start := int(first.Weekday())
	cal := Calendar{
		Year:          year,
		Month:         month,
		DaysInMonth:   n,
		FirstWeekday:  first.Weekday(),
		LeadingBlanks: start,
	}

	var row []Cell
	for day := 1; day <= n; day++ {
		date := models.FormatDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		row = append(row, Cell{
			Day:        day,
			Date:       date,
			IsToday:    date == today,
			IsSelected: date == selected,
			HasTasks:   due[date],
		})
		if (start+day)%7 == 0 || day == n {
			cal.Weeks = append(cal.Weeks, row)
			row = nil
		}
	}
	return cal
}

// Cells returns every populated cell in day order.
func (c Calendar) Cells() []Cell {
	out := make([]Cell, 0, c.DaysInMonth)
	for _, w := range c.Weeks {
		out = append(out, w...)
	}
	return out
}

// Title returns the month heading, e.g. "February 2024".
func (c Calendar) Title() string {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Shift returns the year and month n months away from c.
func (c Calendar) Shift(n int) (int, time.Month) {
	t := time.Date(c.Year, c.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
