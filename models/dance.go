package models

import "time"

// PlacementDisqualified marks a dance performance that was disqualified
// rather than ranked.
const PlacementDisqualified = 0

// DancePerformance is one team's dance presentation and its placement.
// Placement 0 means disqualified, 1..12 is the awarded rank. Only
// placements 1-4 score points in the general ranking.
type DancePerformance struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	TeamID       int       `json:"team_id" db:"team_id"`
	Date         time.Time `json:"date" db:"date"`
	StartTime    *string   `json:"start_time,omitempty" db:"start_time"`
	Placement    int       `json:"placement" db:"placement"`

	Team *Team `json:"team,omitempty" db:"-"`
}
