// ABOUTME: Check-in operations: one record per calendar day, keyed by date.
// ABOUTME: Saving for an existing date replaces that day's record in place.
package gateway

import (
	"time"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/storage"
)

// CheckIns returns every stored check-in.
func (g *Gateway) CheckIns() []models.CheckIn {
	return LoadAll[models.CheckIn](g, storage.KeyCheckIns)
}

// SaveCheckIn stores c, replacing any check-in with the same date.
// The ID is forced to the date.
func (g *Gateway) SaveCheckIn(c models.CheckIn) error {
	c.ID = c.Date
	if c.Symptoms == nil {
		c.Symptoms = []models.Symptom{}
	}
	return UpsertByKey(g, storage.KeyCheckIns, c, func(existing models.CheckIn) bool {
		return existing.Date == c.Date
	})
}

// CheckInFor returns the check-in logged for date, or nil.
func (g *Gateway) CheckInFor(date string) *models.CheckIn {
	for _, c := range g.CheckIns() {
		if c.Date == date {
			return &c
		}
	}
	return nil
}

// TodayCheckIn returns the check-in for the day containing now, or nil.
func (g *Gateway) TodayCheckIn(now time.Time) *models.CheckIn {
	return g.CheckInFor(models.FormatDate(now))
}

// DeleteCheckIn removes the check-in for date. A missing date is a no-op.
func (g *Gateway) DeleteCheckIn(date string) error {
	return g.DeleteByID(storage.KeyCheckIns, date)
}
