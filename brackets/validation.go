package brackets

import "github.com/placarjuarez/placar-api/models"

// FieldError attributes one validation failure to a match field. Field
// names use the JSON names of the match payload so the form layer can
// attach messages directly.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the accumulated result of validating a match.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "match is valid"
	}
	msg := v[0].Field + ": " + v[0].Message
	for _, fe := range v[1:] {
		msg += "; " + fe.Field + ": " + fe.Message
	}
	return msg
}

// Map renders the errors as field→message, last message winning per
// field.
func (v ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(v))
	for _, fe := range v {
		m[fe.Field] = fe.Message
	}
	return m
}

// Validate checks a candidate match state against its modality
// configuration. It is pure, accumulates every applicable error, and
// must pass before any persistence write. Slot uniqueness is the one
// rule it cannot see; the persistence layer surfaces that as an error
// attributed to "slot".
func Validate(m *models.Match, mod *models.Modality) ValidationErrors {
	var errs ValidationErrors
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if m.TournamentID == 0 {
		add("tournament_id", "tournament is required")
	}
	if m.Stage == "" {
		add("stage", "stage is required")
	}
	if m.ModalityID == 0 || mod == nil {
		add("modality_id", "modality is required")
	}
	if m.Slot == 0 {
		add("slot", "slot is required")
	}
	if m.Date.IsZero() {
		add("date", "date is required")
	}

	if m.TeamAID != nil && m.TeamBID != nil && *m.TeamAID == *m.TeamBID {
		add("team_b_id", "teams must differ")
	}

	if m.Started && (m.TeamAID == nil || m.TeamBID == nil) {
		add("started", "both teams must be assigned before the match starts")
	}

	if mod == nil {
		return errs
	}

	if m.IsWalkover() {
		if !isParticipant(m.WalkoverTeamID, m) {
			add("walkover_team_id", "walkover team must be one of the match teams")
		}
		if mod.HasScore && m.HasAnyScore() {
			add("score_a", "walkover match must not carry a score")
		}
	}

	if mod.HasScore {
		if !mod.HasSets && hasAnySet(m) {
			add("set1_a", "modality does not use sets")
		}
		if m.Closed && !m.IsWalkover() {
			validateScoredClose(m, add)
		}
	} else {
		if m.HasAnyScore() {
			add("score_a", "modality does not use scores")
		}
		if m.Closed && !m.IsWalkover() {
			if m.WinnerID == nil {
				add("winner_id", "winner required to close")
			} else if !isParticipant(m.WinnerID, m) {
				add("winner_id", "winner must be one of the match teams")
			}
		}
	}

	return errs
}

func validateScoredClose(m *models.Match, add func(field, message string)) {
	if m.ScoreA == nil || m.ScoreB == nil {
		add("score_a", "both scores required to close")
		return
	}
	if *m.ScoreA != *m.ScoreB {
		if m.Tied != nil && *m.Tied {
			add("tied", "tie flag requires equal scores")
		}
		return
	}
	if m.Tied == nil || !*m.Tied {
		add("tied", "equal score requires tie flag")
		return
	}
	if m.TiebreakA == nil || m.TiebreakB == nil {
		add("tiebreak_a", "both tiebreak scores required")
		return
	}
	if *m.TiebreakA == *m.TiebreakB {
		add("tiebreak_b", "tiebreak scores must differ")
	}
}

func isParticipant(teamID *int, m *models.Match) bool {
	if teamID == nil {
		return false
	}
	if m.TeamAID != nil && *m.TeamAID == *teamID {
		return true
	}
	if m.TeamBID != nil && *m.TeamBID == *teamID {
		return true
	}
	return false
}

func hasAnySet(m *models.Match) bool {
	for _, pair := range m.SetScores() {
		if pair[0] != nil || pair[1] != nil {
			return true
		}
	}
	return false
}
