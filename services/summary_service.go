package services

import (
	"time"

	"ecostep/impact"
	"ecostep/models"
)

// ProgressPoint is one chart sample: the daily total for a single log.
type ProgressPoint struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// Milestone is a dashboard achievement derived from the activity history.
type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Achieved    bool   `json:"achieved"`
}

// Summary is everything the dashboard needs from the activity history.
// HasData distinguishes the empty zero state from a transient failure: an
// account with no logs gets HasData=false and zeroed figures, never an error.
type Summary struct {
	HasData  bool            `json:"hasData"`
	Daily    impact.Estimate `json:"daily"`
	Weekly   impact.Estimate `json:"weekly"`
	Monthly  impact.Estimate `json:"monthly"`
	Savings  int             `json:"savings"`
	Progress []ProgressPoint `json:"progress"`

	Milestones []Milestone `json:"milestones"`
}

// BuildSummary derives display-ready impact figures from a date-ascending
// activity history. Read-only and pure: estimates are produced fresh on
// every call and never persisted.
func BuildSummary(activities []models.ActivityLog) Summary {
	milestones := []Milestone{
		{ID: "first-steps", Title: "First Steps", Description: "Logged your first activity."},
		{ID: "impact-reducer", Title: "Impact Reducer", Description: "Reduced your monthly footprint compared to the previous entry."},
		{ID: "green-commuter", Title: "Green Commuter", Description: "Saved CO2e by choosing sustainable transport."},
		{ID: "eco-hero", Title: "Eco-Hero", Description: "Achieved a total monthly footprint below 500 kg CO2e."},
	}

	if len(activities) == 0 {
		return Summary{HasData: false, Progress: []ProgressPoint{}, Milestones: milestones}
	}

	latest := activities[len(activities)-1].Activity

	progress := make([]ProgressPoint, 0, len(activities))
	for _, a := range activities {
		progress = append(progress, ProgressPoint{Date: a.Date, Total: impact.Daily(a.Activity).Total})
	}

	latestMonthly := impact.Monthly(latest)
	savings := impact.Savings(latest)

	milestones[0].Achieved = true
	if len(activities) > 1 {
		previousMonthly := impact.Monthly(activities[len(activities)-2].Activity)
		milestones[1].Achieved = latestMonthly.Total < previousMonthly.Total
	}
	milestones[2].Achieved = savings > 0
	milestones[3].Achieved = latestMonthly.Total < 500

	return Summary{
		HasData:    true,
		Daily:      impact.Daily(latest),
		Weekly:     impact.Weekly(latest),
		Monthly:    latestMonthly,
		Savings:    savings,
		Progress:   progress,
		Milestones: milestones,
	}
}
