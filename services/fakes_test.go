package services

import (
	"context"
	"sort"

	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

// fakeTxRunner satisfies db.TxRunner without a database; the callback
// runs against a nil executor, which the fake repositories ignore.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(tx repositories.SQLExecutor) error) error {
	return fn(nil)
}

type fakeMatchRepo struct {
	nextID  int
	matches map[int]*models.Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{nextID: 1, matches: make(map[int]*models.Match)}
}

func (r *fakeMatchRepo) put(m *models.Match) *models.Match {
	cp := *m
	if cp.ID == 0 {
		cp.ID = r.nextID
		r.nextID++
	}
	r.matches[cp.ID] = &cp
	return &cp
}

func (r *fakeMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	for _, m := range r.matches {
		if m.TournamentID == match.TournamentID && m.ModalityID == match.ModalityID && m.Slot == match.Slot {
			return repositories.ErrMatchSlotTaken
		}
	}
	match.ID = r.nextID
	r.nextID++
	cp := *match
	r.matches[cp.ID] = &cp
	return nil
}

func (r *fakeMatchRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMatchRepo) GetByIDForUpdate(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Match, error) {
	return r.GetByID(ctx, exec, id)
}

func (r *fakeMatchRepo) GetBySlotForUpdate(ctx context.Context, exec repositories.SQLExecutor, tournamentID, modalityID int, slot models.Slot) (*models.Match, error) {
	for _, m := range r.matches {
		if m.TournamentID == tournamentID && m.ModalityID == modalityID && m.Slot == slot {
			cp := *m
			return &cp, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) Update(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	if _, ok := r.matches[match.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	for _, m := range r.matches {
		if m.ID != match.ID && m.TournamentID == match.TournamentID &&
			m.ModalityID == match.ModalityID && m.Slot == match.Slot {
			return repositories.ErrMatchSlotTaken
		}
	}
	cp := *match
	r.matches[cp.ID] = &cp
	return nil
}

func (r *fakeMatchRepo) UpdateTeams(ctx context.Context, exec repositories.SQLExecutor, id int, teamAID, teamBID *int) error {
	m, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.TeamAID = teamAID
	m.TeamBID = teamBID
	return nil
}

func (r *fakeMatchRepo) ListByTournament(ctx context.Context, tournamentID int, modalityID *int, stage *models.Stage) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.TournamentID != tournamentID {
			continue
		}
		if modalityID != nil && m.ModalityID != *modalityID {
			continue
		}
		if stage != nil && m.Stage != *stage {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out, nil
}

func (r *fakeMatchRepo) ListClosedByStages(ctx context.Context, tournamentID int, stages []models.Stage) ([]*models.Match, error) {
	wanted := make(map[models.Stage]bool, len(stages))
	for _, s := range stages {
		wanted[s] = true
	}
	var out []*models.Match
	for _, m := range r.matches {
		if m.TournamentID == tournamentID && m.Closed && wanted[m.Stage] {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) ListClosedByTeam(ctx context.Context, tournamentID, teamID int) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.TournamentID != tournamentID || !m.Closed {
			continue
		}
		if (m.TeamAID != nil && *m.TeamAID == teamID) || (m.TeamBID != nil && *m.TeamBID == teamID) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMatchRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

type fakeModalityRepo struct {
	modalities map[int]*models.Modality
}

func newFakeModalityRepo(mods ...*models.Modality) *fakeModalityRepo {
	r := &fakeModalityRepo{modalities: make(map[int]*models.Modality)}
	for _, m := range mods {
		r.modalities[m.ID] = m
	}
	return r
}

func (r *fakeModalityRepo) Create(ctx context.Context, m *models.Modality) error {
	r.modalities[m.ID] = m
	return nil
}

func (r *fakeModalityRepo) GetByID(ctx context.Context, id int) (*models.Modality, error) {
	m, ok := r.modalities[id]
	if !ok {
		return nil, repositories.ErrModalityNotFound
	}
	return m, nil
}

func (r *fakeModalityRepo) List(ctx context.Context) ([]*models.Modality, error) {
	var out []*models.Modality
	for _, m := range r.modalities {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeModalityRepo) Update(ctx context.Context, m *models.Modality) error {
	r.modalities[m.ID] = m
	return nil
}

func (r *fakeModalityRepo) Delete(ctx context.Context, id int) error {
	delete(r.modalities, id)
	return nil
}

type fakeTeamRepo struct {
	teams map[int]*models.Team
}

func newFakeTeamRepo(teams ...*models.Team) *fakeTeamRepo {
	r := &fakeTeamRepo{teams: make(map[int]*models.Team)}
	for _, t := range teams {
		r.teams[t.ID] = t
	}
	return r
}

func (r *fakeTeamRepo) Create(ctx context.Context, t *models.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *fakeTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return t, nil
}

func (r *fakeTeamRepo) List(ctx context.Context, year *int) ([]*models.Team, error) {
	var out []*models.Team
	for _, t := range r.teams {
		if year == nil || t.Year == *year {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTeamRepo) Update(ctx context.Context, t *models.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, id int) error {
	delete(r.teams, id)
	return nil
}

type fakeTournamentRepo struct {
	tournaments map[int]*models.Tournament
}

func newFakeTournamentRepo(ts ...*models.Tournament) *fakeTournamentRepo {
	r := &fakeTournamentRepo{tournaments: make(map[int]*models.Tournament)}
	for _, t := range ts {
		r.tournaments[t.ID] = t
	}
	return r
}

func (r *fakeTournamentRepo) Create(ctx context.Context, t *models.Tournament) error {
	r.tournaments[t.ID] = t
	return nil
}

func (r *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return t, nil
}

func (r *fakeTournamentRepo) List(ctx context.Context) ([]*models.Tournament, error) {
	var out []*models.Tournament
	for _, t := range r.tournaments {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTournamentRepo) Update(ctx context.Context, t *models.Tournament) error {
	r.tournaments[t.ID] = t
	return nil
}

func (r *fakeTournamentRepo) Delete(ctx context.Context, id int) error {
	delete(r.tournaments, id)
	return nil
}

type fakeDanceRepo struct {
	dances map[int]*models.DancePerformance
}

func newFakeDanceRepo(ds ...*models.DancePerformance) *fakeDanceRepo {
	r := &fakeDanceRepo{dances: make(map[int]*models.DancePerformance)}
	for _, d := range ds {
		r.dances[d.ID] = d
	}
	return r
}

func (r *fakeDanceRepo) Create(ctx context.Context, d *models.DancePerformance) error {
	r.dances[d.ID] = d
	return nil
}

func (r *fakeDanceRepo) GetByID(ctx context.Context, id int) (*models.DancePerformance, error) {
	d, ok := r.dances[id]
	if !ok {
		return nil, repositories.ErrDanceNotFound
	}
	return d, nil
}

func (r *fakeDanceRepo) ListByTournament(ctx context.Context, tournamentID int, minPlacement, maxPlacement *int) ([]*models.DancePerformance, error) {
	var out []*models.DancePerformance
	for _, d := range r.dances {
		if d.TournamentID != tournamentID {
			continue
		}
		if minPlacement != nil && d.Placement < *minPlacement {
			continue
		}
		if maxPlacement != nil && d.Placement > *maxPlacement {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDanceRepo) Update(ctx context.Context, d *models.DancePerformance) error {
	if _, ok := r.dances[d.ID]; !ok {
		return repositories.ErrDanceNotFound
	}
	r.dances[d.ID] = d
	return nil
}

func (r *fakeDanceRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.dances[id]; !ok {
		return repositories.ErrDanceNotFound
	}
	delete(r.dances, id)
	return nil
}

type fakeExtraRepo struct {
	nextID int
	extras map[int]*models.Extra
}

func newFakeExtraRepo(es ...*models.Extra) *fakeExtraRepo {
	r := &fakeExtraRepo{nextID: 1000, extras: make(map[int]*models.Extra)}
	for _, e := range es {
		r.extras[e.ID] = e
	}
	return r
}

func (r *fakeExtraRepo) Create(ctx context.Context, e *models.Extra) error {
	if e.ID == 0 {
		e.ID = r.nextID
		r.nextID++
	}
	cp := *e
	r.extras[cp.ID] = &cp
	return nil
}

func (r *fakeExtraRepo) GetByID(ctx context.Context, id int) (*models.Extra, error) {
	e, ok := r.extras[id]
	if !ok {
		return nil, repositories.ErrExtraNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExtraRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Extra, error) {
	var out []*models.Extra
	for _, e := range r.extras {
		if e.TournamentID == tournamentID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeExtraRepo) Update(ctx context.Context, e *models.Extra) error {
	if _, ok := r.extras[e.ID]; !ok {
		return repositories.ErrExtraNotFound
	}
	cp := *e
	r.extras[cp.ID] = &cp
	return nil
}

func (r *fakeExtraRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.extras[id]; !ok {
		return repositories.ErrExtraNotFound
	}
	delete(r.extras, id)
	return nil
}
