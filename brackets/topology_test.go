package brackets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placarjuarez/placar-api/models"
)

func TestDefaultTopologyQuarterfinals(t *testing.T) {
	topo := DefaultTopology()

	route, ok := topo.Route(models.SlotQuarter1)
	require.True(t, ok)
	require.Equal(t, models.SlotSemi1, route.Winner.Slot)
	require.Equal(t, SideTeamA, route.Winner.Side)
	require.Nil(t, route.Loser)

	route, ok = topo.Route(models.SlotQuarter4)
	require.True(t, ok)
	require.Equal(t, models.SlotSemi2, route.Winner.Slot)
	require.Equal(t, SideTeamB, route.Winner.Side)
}

func TestDefaultTopologySemifinalsFanOut(t *testing.T) {
	topo := DefaultTopology()

	for _, slot := range []models.Slot{models.SlotSemi1, models.SlotSemi2, models.SlotSmallSemi1, models.SlotSmallSemi2} {
		route, ok := topo.Route(slot)
		require.True(t, ok, "slot %d", slot)
		require.NotNil(t, route.Loser, "slot %d must feed the third-place match", slot)
		require.Equal(t, route.Winner.Side, route.Loser.Side,
			"winner and loser of slot %d land on the same side", slot)
	}
}

func TestDefaultTopologyTerminalSlots(t *testing.T) {
	topo := DefaultTopology()

	for _, slot := range []models.Slot{models.SlotThird, models.SlotFinal, models.SlotSmallThird, models.SlotSmallFinal} {
		_, ok := topo.Route(slot)
		require.False(t, ok, "slot %d must be terminal", slot)
	}
}

func TestDefaultTopologyNoSharedDestinationField(t *testing.T) {
	// Two different source slots may feed the same downstream match,
	// but never the same field of it.
	topo := DefaultTopology()
	seen := make(map[Branch]models.Slot)

	for slot, route := range topo {
		branches := []Branch{route.Winner}
		if route.Loser != nil {
			branches = append(branches, *route.Loser)
		}
		for _, b := range branches {
			prev, dup := seen[b]
			require.False(t, dup, "slots %d and %d both write %s of slot %d", prev, slot, b.Side, b.Slot)
			seen[b] = slot
		}
	}
}
