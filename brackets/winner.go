package brackets

import "github.com/placarjuarez/placar-api/models"

// ResolveWinner computes the winning team of a match that already
// passed Validate for its current field combination. It is total and
// deterministic over valid states and returns nil only when the match
// is not actually closeable (insufficient fields).
//
// Walkover wins beat everything: the non-forfeiting team wins no
// matter what else is set. Modalities without scores rely on the
// explicitly selected winner. Scored matches compare the main score,
// or the tiebreak when the tie flag is set (validation guarantees the
// tiebreak differs).
func ResolveWinner(m *models.Match, mod *models.Modality) *int {
	if m.IsWalkover() {
		if m.WalkoverTeamID == nil {
			return nil
		}
		if m.TeamAID != nil && *m.WalkoverTeamID == *m.TeamAID {
			return m.TeamBID
		}
		if m.TeamBID != nil && *m.WalkoverTeamID == *m.TeamBID {
			return m.TeamAID
		}
		return nil
	}

	if mod == nil || !mod.HasScore {
		return m.WinnerID
	}

	if m.ScoreA == nil || m.ScoreB == nil {
		return nil
	}

	if m.Tied != nil && *m.Tied {
		if m.TiebreakA == nil || m.TiebreakB == nil {
			return nil
		}
		if *m.TiebreakA > *m.TiebreakB {
			return m.TeamAID
		}
		return m.TeamBID
	}

	switch {
	case *m.ScoreA > *m.ScoreB:
		return m.TeamAID
	case *m.ScoreB > *m.ScoreA:
		return m.TeamBID
	default:
		// Equal score without the tie flag is rejected by Validate.
		return nil
	}
}
