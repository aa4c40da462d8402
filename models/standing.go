package models

// TeamStanding is one row of a computed ranking. Standings are never
// persisted; they are derived on demand from matches, dances and
// extras.
type TeamStanding struct {
	Team   Team `json:"team"`
	Points int  `json:"points"`
}

// MatchResult is one line of a team's score breakdown: a closed match
// the team took part in, with the placement points it earned there.
type MatchResult struct {
	Match    Match  `json:"match"`
	Opponent *Team  `json:"opponent,omitempty"`
	Won      bool   `json:"won"`
	Points   int    `json:"points"`
	Outcome  string `json:"outcome"`
}

// ScoreBreakdown is the per-team view combining match results and
// extra entries.
type ScoreBreakdown struct {
	Team           Team          `json:"team"`
	Results        []MatchResult `json:"results"`
	DonationPoints int           `json:"donation_points"`
	PenaltyPoints  int           `json:"penalty_points"`
	TotalPoints    int           `json:"total_points"`
}
