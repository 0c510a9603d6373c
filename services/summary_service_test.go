package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecostep/impact"
	"ecostep/models"
)

func day(offset int) time.Time {
	return time.Date(2025, time.June, 1+offset, 0, 0, 0, 0, time.UTC)
}

func carLog(offset int, distance float64) models.ActivityLog {
	return models.ActivityLog{
		Activity: impact.Activity{
			TransportMode:  impact.TransportCar,
			Distance:       distance,
			FuelEfficiency: 10,
			Energy:         300,
			Waste:          2,
			Water:          150,
			Food:           1,
		},
		Date: day(offset),
	}
}

func TestBuildSummaryEmptyHistory(t *testing.T) {
	s := BuildSummary(nil)
	assert.False(t, s.HasData)
	assert.Empty(t, s.Progress)
	require.Len(t, s.Milestones, 4)
	for _, m := range s.Milestones {
		assert.False(t, m.Achieved, "milestone %s should not be achieved with no history", m.ID)
	}
	assert.Zero(t, s.Daily.Total)
	assert.Zero(t, s.Savings)
}

func TestBuildSummaryUsesLatestLog(t *testing.T) {
	history := []models.ActivityLog{carLog(0, 100), carLog(1, 20)}
	s := BuildSummary(history)

	require.True(t, s.HasData)
	// Figures come from the second (latest) log, the 20 km commute.
	assert.Equal(t, float64(5), s.Daily.Transport)
	assert.Equal(t, float64(13), s.Daily.Total)
	assert.Equal(t, float64(383), s.Monthly.Total)
	assert.Len(t, s.Progress, 2)
	assert.Equal(t, day(1), s.Progress[1].Date)
}

func TestMilestoneImpactReducer(t *testing.T) {
	history := []models.ActivityLog{carLog(0, 100), carLog(1, 20)}
	s := BuildSummary(history)

	byID := map[string]Milestone{}
	for _, m := range s.Milestones {
		byID[m.ID] = m
	}
	assert.True(t, byID["first-steps"].Achieved)
	assert.True(t, byID["impact-reducer"].Achieved, "20 km beats the earlier 100 km month")
	assert.False(t, byID["green-commuter"].Achieved, "driving saves nothing")
	assert.True(t, byID["eco-hero"].Achieved, "monthly total 383 is below 500")
}

func TestMilestoneGreenCommuter(t *testing.T) {
	bike := models.ActivityLog{
		Activity: impact.Activity{
			TransportMode: impact.TransportCycling,
			Distance:      25,
			OwnsVehicle:   true,
		},
		Date: day(0),
	}
	s := BuildSummary([]models.ActivityLog{bike})

	assert.Equal(t, 5, s.Savings)
	var green Milestone
	for _, m := range s.Milestones {
		if m.ID == "green-commuter" {
			green = m
		}
	}
	assert.True(t, green.Achieved)
}

func TestSingleLogDoesNotClaimReduction(t *testing.T) {
	s := BuildSummary([]models.ActivityLog{carLog(0, 20)})
	for _, m := range s.Milestones {
		if m.ID == "impact-reducer" {
			assert.False(t, m.Achieved, "one log has nothing to compare against")
		}
	}
}
