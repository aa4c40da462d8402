package models

import "time"

// Stage of the single-elimination bracket, matching the stage ENUM in
// the DB.
type Stage string

const (
	StageQuarterFinal Stage = "quarterfinal"
	StageSemiFinal    Stage = "semifinal"
	StageThirdPlace   Stage = "third_place"
	StageFinal        Stage = "final"
)

// Slot is a fixed position in the bracket. Slots 1-8 form the 8-team
// bracket, slots 9-12 the 4-team one. (Tournament, Modality, Slot) is
// unique, so a slot alone identifies a match within one modality.
type Slot int

const (
	SlotQuarter1 Slot = 1
	SlotQuarter2 Slot = 2
	SlotQuarter3 Slot = 3
	SlotQuarter4 Slot = 4
	SlotSemi1    Slot = 5
	SlotSemi2    Slot = 6
	SlotThird    Slot = 7
	SlotFinal    Slot = 8

	SlotSmallSemi1 Slot = 9
	SlotSmallSemi2 Slot = 10
	SlotSmallThird Slot = 11
	SlotSmallFinal Slot = 12
)

// Match is one bracket contest. Team slots are nullable until filled
// by propagation or manual entry. Winner is set if and only if the
// match is closed with a resolvable winner.
type Match struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	ModalityID   int       `json:"modality_id" db:"modality_id"`
	Stage        Stage     `json:"stage" db:"stage"`
	Slot         Slot      `json:"slot" db:"slot"`
	Date         time.Time `json:"date" db:"date"`
	StartTime    *string   `json:"start_time,omitempty" db:"start_time"`

	TeamAID *int `json:"team_a_id,omitempty" db:"team_a_id"`
	TeamBID *int `json:"team_b_id,omitempty" db:"team_b_id"`

	Started        bool  `json:"started" db:"started"`
	Walkover       *bool `json:"walkover,omitempty" db:"walkover"`
	WalkoverTeamID *int  `json:"walkover_team_id,omitempty" db:"walkover_team_id"`

	ScoreA *int `json:"score_a,omitempty" db:"score_a"`
	ScoreB *int `json:"score_b,omitempty" db:"score_b"`

	Set1A *int `json:"set1_a,omitempty" db:"set1_a"`
	Set1B *int `json:"set1_b,omitempty" db:"set1_b"`
	Set2A *int `json:"set2_a,omitempty" db:"set2_a"`
	Set2B *int `json:"set2_b,omitempty" db:"set2_b"`
	Set3A *int `json:"set3_a,omitempty" db:"set3_a"`
	Set3B *int `json:"set3_b,omitempty" db:"set3_b"`

	Tied      *bool `json:"tied,omitempty" db:"tied"`
	TiebreakA *int  `json:"tiebreak_a,omitempty" db:"tiebreak_a"`
	TiebreakB *int  `json:"tiebreak_b,omitempty" db:"tiebreak_b"`

	Closed   bool `json:"closed" db:"closed"`
	WinnerID *int `json:"winner_id,omitempty" db:"winner_id"`

	// Optional joined entities, populated by the service layer.
	TeamA    *Team     `json:"team_a,omitempty" db:"-"`
	TeamB    *Team     `json:"team_b,omitempty" db:"-"`
	Modality *Modality `json:"modality,omitempty" db:"-"`
}

// SetScores returns the three set pairs in order. Nil entries mean the
// set was not played or the modality has no sets.
func (m *Match) SetScores() [3][2]*int {
	return [3][2]*int{
		{m.Set1A, m.Set1B},
		{m.Set2A, m.Set2B},
		{m.Set3A, m.Set3B},
	}
}

// HasAnyScore reports whether any score, set or tiebreak field is
// populated.
func (m *Match) HasAnyScore() bool {
	for _, p := range []*int{
		m.ScoreA, m.ScoreB,
		m.Set1A, m.Set1B, m.Set2A, m.Set2B, m.Set3A, m.Set3B,
		m.TiebreakA, m.TiebreakB,
	} {
		if p != nil {
			return true
		}
	}
	return false
}

// IsWalkover reports whether the walkover flag is set and true.
func (m *Match) IsWalkover() bool {
	return m.Walkover != nil && *m.Walkover
}
