package brackets

import "github.com/placarjuarez/placar-api/models"

// TeamSide identifies the destination field of a downstream match.
type TeamSide string

const (
	SideTeamA TeamSide = "team_a"
	SideTeamB TeamSide = "team_b"
)

// Branch routes one outcome of a match into a slot of a downstream
// match.
type Branch struct {
	Slot models.Slot
	Side TeamSide
}

// Route describes where a match's winner (and, for semifinals, its
// loser) go. Terminal slots have no route.
type Route struct {
	Winner Branch
	// Loser is set only for slots that also feed the third-place
	// match.
	Loser *Branch
}

// Topology is the immutable slot→route table of a bracket layout. It
// is data, not code: alternate bracket sizes only need another table.
type Topology map[models.Slot]Route

// Route looks up the downstream routing for a slot. ok is false for
// terminal slots (final, third place) and unknown slots.
func (t Topology) Route(slot models.Slot) (Route, bool) {
	r, ok := t[slot]
	return r, ok
}

// DefaultTopology covers the two bracket sizes in use. Slots are
// globally unique across the two layouts, so one table serves both:
// whichever slots a modality's matches occupy determine its bracket
// size.
func DefaultTopology() Topology {
	return Topology{
		// 8-team bracket: quarterfinals feed the semifinals pairwise.
		models.SlotQuarter1: {Winner: Branch{Slot: models.SlotSemi1, Side: SideTeamA}},
		models.SlotQuarter2: {Winner: Branch{Slot: models.SlotSemi1, Side: SideTeamB}},
		models.SlotQuarter3: {Winner: Branch{Slot: models.SlotSemi2, Side: SideTeamA}},
		models.SlotQuarter4: {Winner: Branch{Slot: models.SlotSemi2, Side: SideTeamB}},

		// Semifinals fan out: winner to the final, loser to the
		// third-place match.
		models.SlotSemi1: {
			Winner: Branch{Slot: models.SlotFinal, Side: SideTeamA},
			Loser:  &Branch{Slot: models.SlotThird, Side: SideTeamA},
		},
		models.SlotSemi2: {
			Winner: Branch{Slot: models.SlotFinal, Side: SideTeamB},
			Loser:  &Branch{Slot: models.SlotThird, Side: SideTeamB},
		},

		// 4-team bracket.
		models.SlotSmallSemi1: {
			Winner: Branch{Slot: models.SlotSmallFinal, Side: SideTeamA},
			Loser:  &Branch{Slot: models.SlotSmallThird, Side: SideTeamA},
		},
		models.SlotSmallSemi2: {
			Winner: Branch{Slot: models.SlotSmallFinal, Side: SideTeamB},
			Loser:  &Branch{Slot: models.SlotSmallThird, Side: SideTeamB},
		},
	}
}
