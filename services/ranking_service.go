package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

// placementPoints maps a final placement (1st through 4th) to the
// points it awards in the general ranking. Placements outside the
// table, including disqualification, award nothing.
var placementPoints = map[int]int{
	1: 1000,
	2: 800,
	3: 600,
	4: 400,
}

type RankingService interface {
	// Standings computes the general tournament ranking: placement
	// points from closed finals and third-place matches, dance
	// placements, and extra point entries, over every team of the
	// tournament's year.
	Standings(ctx context.Context, tournamentID int) ([]models.TeamStanding, error)
	// ModalityStandings ranks the teams of one modality by their
	// accumulated per-match score across closed matches.
	ModalityStandings(ctx context.Context, tournamentID, modalityID int) ([]models.TeamStanding, error)
	// TeamBreakdown explains one team's total: each closed match it
	// played with the points earned, plus donations and penalties.
	TeamBreakdown(ctx context.Context, tournamentID, teamID int) (*models.ScoreBreakdown, error)
}

type rankingService struct {
	matchRepo repositories.MatchRepository
	danceRepo repositories.DanceRepository
	extraRepo repositories.ExtraRepository
	teamRepo  repositories.TeamRepository
	tourRepo  repositories.TournamentRepository
}

func NewRankingService(
	matchRepo repositories.MatchRepository,
	danceRepo repositories.DanceRepository,
	extraRepo repositories.ExtraRepository,
	teamRepo repositories.TeamRepository,
	tourRepo repositories.TournamentRepository,
) RankingService {
	return &rankingService{
		matchRepo: matchRepo,
		danceRepo: danceRepo,
		extraRepo: extraRepo,
		teamRepo:  teamRepo,
		tourRepo:  tourRepo,
	}
}

func (s *rankingService) Standings(ctx context.Context, tournamentID int) ([]models.TeamStanding, error) {
	tournament, err := s.tourRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}

	var (
		teams   []*models.Team
		matches []*models.Match
		dances  []*models.DancePerformance
		extras  []*models.Extra
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.List(gctx, &tournament.Year)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListClosedByStages(gctx, tournamentID,
			[]models.Stage{models.StageFinal, models.StageThirdPlace})
		return err
	})
	g.Go(func() error {
		var err error
		dances, err = s.danceRepo.ListByTournament(gctx, tournamentID, nil, nil)
		return err
	})
	g.Go(func() error {
		var err error
		extras, err = s.extraRepo.ListByTournament(gctx, tournamentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate standings for tournament %d: %w", tournamentID, err)
	}

	// Every team of the tournament's year starts at zero so teams
	// without any result still appear in the ranking.
	points := make(map[int]int, len(teams))
	byID := make(map[int]models.Team, len(teams))
	for _, t := range teams {
		points[t.ID] = 0
		byID[t.ID] = *t
	}

	for _, m := range matches {
		winner, loser := matchPlacements(m)
		if winner != nil {
			points[*winner] += placementForStage(m.Stage, true)
		}
		if loser != nil {
			points[*loser] += placementForStage(m.Stage, false)
		}
	}

	for _, d := range dances {
		points[d.TeamID] += placementPoints[d.Placement]
	}

	for _, e := range extras {
		switch e.Kind {
		case models.ExtraDonation:
			points[e.TeamID] += e.Points
		case models.ExtraPenalty:
			points[e.TeamID] -= e.Points
		}
	}

	return sortedStandings(points, byID), nil
}

func (s *rankingService) ModalityStandings(ctx context.Context, tournamentID, modalityID int) ([]models.TeamStanding, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, &modalityID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for modality %d: %w", modalityID, err)
	}

	points := make(map[int]int)
	for _, m := range matches {
		if !m.Closed {
			continue
		}
		a, b := matchScores(m)
		if m.TeamAID != nil {
			points[*m.TeamAID] += a
		}
		if m.TeamBID != nil {
			points[*m.TeamBID] += b
		}
	}
	if len(points) == 0 {
		return []models.TeamStanding{}, nil
	}

	teams, err := s.teamRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	byID := make(map[int]models.Team, len(teams))
	for _, t := range teams {
		if _, ok := points[t.ID]; ok {
			byID[t.ID] = *t
		}
	}

	return sortedStandings(points, byID), nil
}

func (s *rankingService) TeamBreakdown(ctx context.Context, tournamentID, teamID int) (*models.ScoreBreakdown, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team %d: %w", teamID, err)
	}

	matches, err := s.matchRepo.ListClosedByTeam(ctx, tournamentID, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for team %d: %w", teamID, err)
	}
	extras, err := s.extraRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list point entries: %w", err)
	}

	breakdown := &models.ScoreBreakdown{Team: *team, Results: make([]models.MatchResult, 0, len(matches))}

	for _, m := range matches {
		won := m.WinnerID != nil && *m.WinnerID == teamID
		result := models.MatchResult{
			Match:   *m,
			Won:     won,
			Outcome: matchOutcome(m, teamID),
		}
		if opponentID := opponentOf(m, teamID); opponentID != nil {
			if opponent, err := s.teamRepo.GetByID(ctx, *opponentID); err == nil {
				result.Opponent = opponent
			}
		}
		if m.Stage == models.StageFinal || m.Stage == models.StageThirdPlace {
			if m.WinnerID != nil {
				result.Points = placementForStage(m.Stage, won)
			}
		}
		breakdown.Results = append(breakdown.Results, result)
	}

	for _, e := range extras {
		if e.TeamID != teamID {
			continue
		}
		switch e.Kind {
		case models.ExtraDonation:
			breakdown.DonationPoints += e.Points
		case models.ExtraPenalty:
			breakdown.PenaltyPoints += e.Points
		}
	}

	for _, r := range breakdown.Results {
		breakdown.TotalPoints += r.Points
	}
	breakdown.TotalPoints += breakdown.DonationPoints - breakdown.PenaltyPoints

	return breakdown, nil
}

// matchPlacements returns the winner and loser team IDs of a closed
// match, nil when a side is unresolved.
func matchPlacements(m *models.Match) (winner, loser *int) {
	if m.WinnerID == nil {
		return nil, nil
	}
	winner = m.WinnerID
	if m.TeamAID != nil && *m.TeamAID == *winner {
		loser = m.TeamBID
	} else if m.TeamBID != nil && *m.TeamBID == *winner {
		loser = m.TeamAID
	}
	return winner, loser
}

func placementForStage(stage models.Stage, won bool) int {
	switch stage {
	case models.StageFinal:
		if won {
			return placementPoints[1]
		}
		return placementPoints[2]
	case models.StageThirdPlace:
		if won {
			return placementPoints[3]
		}
		return placementPoints[4]
	}
	return 0
}

// matchScores derives each side's per-match score for the modality
// standings: the recorded score plus one bonus point for the winner.
// Walkovers count for nothing on either side.
func matchScores(m *models.Match) (a, b int) {
	if m.IsWalkover() {
		return 0, 0
	}
	if m.ScoreA != nil {
		a = *m.ScoreA
	}
	if m.ScoreB != nil {
		b = *m.ScoreB
	}
	if m.WinnerID != nil {
		if m.TeamAID != nil && *m.TeamAID == *m.WinnerID {
			a++
		} else if m.TeamBID != nil && *m.TeamBID == *m.WinnerID {
			b++
		}
	}
	return a, b
}

func matchOutcome(m *models.Match, teamID int) string {
	switch {
	case m.IsWalkover():
		if m.WalkoverTeamID != nil && *m.WalkoverTeamID == teamID {
			return "walkover_forfeit"
		}
		return "walkover_win"
	case m.WinnerID == nil:
		return "undecided"
	case *m.WinnerID == teamID:
		return "won"
	default:
		return "lost"
	}
}

func opponentOf(m *models.Match, teamID int) *int {
	if m.TeamAID != nil && *m.TeamAID == teamID {
		return m.TeamBID
	}
	if m.TeamBID != nil && *m.TeamBID == teamID {
		return m.TeamAID
	}
	return nil
}

func sortedStandings(points map[int]int, teams map[int]models.Team) []models.TeamStanding {
	standings := make([]models.TeamStanding, 0, len(points))
	for teamID, pts := range points {
		team, ok := teams[teamID]
		if !ok {
			continue
		}
		standings = append(standings, models.TeamStanding{Team: team, Points: pts})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].Team.Name < standings[j].Team.Name
	})
	return standings
}
