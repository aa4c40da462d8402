package services

import (
	"errors"

	"github.com/placarjuarez/placar-api/brackets"
)

// Shared errors used across services and HTTP mapping.
var (
	// Validation and business rules
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrTournamentYearInvalid  = errors.New("tournament year must be positive")
	ErrModalityNameRequired   = errors.New("modality name is required")
	ErrModalityCategoryBad    = errors.New("invalid modality category")
	ErrModalitySetsNeedScore  = errors.New("modality cannot have sets without a score")
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrTeamYearInvalid        = errors.New("team year must be positive")
	ErrDancePlacementInvalid  = errors.New("dance placement must be 0 (disqualified) or between 1 and 12")
	ErrExtraKindInvalid       = errors.New("point entry kind must be donation or penalty")
	ErrExtraPointsInvalid     = errors.New("point entry points must be a positive magnitude")

	// Conflicts
	ErrTeamNameConflict = errors.New("a team with this name already exists for this year")

	// Entity-specific lookups
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrModalityNotFound   = errors.New("modality not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrDanceNotFound      = errors.New("dance performance not found")
	ErrExtraNotFound      = errors.New("point entry not found")
)

// MatchValidationError carries the accumulated field errors of a
// rejected match write. The write is refused but nothing else failed;
// handlers render it as a 422 with the field map.
type MatchValidationError struct {
	Fields brackets.ValidationErrors
}

func (e *MatchValidationError) Error() string {
	return "match validation failed: " + e.Fields.Error()
}
