package models

import "time"

// ExtraKind matches the occurrence ENUM in the DB.
type ExtraKind string

const (
	ExtraDonation ExtraKind = "donation"
	ExtraPenalty  ExtraKind = "penalty"
)

// Extra is a bonus/penalty point entry recorded by staff. Points is
// always a positive magnitude; the kind decides the sign when the
// entry is aggregated into the ranking. CreatedAt is set on insert and
// never updated.
type Extra struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	TeamID       int       `json:"team_id" db:"team_id"`
	Kind         ExtraKind `json:"kind" db:"kind"`
	Points       int       `json:"points" db:"points"`
	Note         string    `json:"note" db:"note"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	Team *Team `json:"team,omitempty" db:"-"`
}
