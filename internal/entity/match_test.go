package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/catanview/internal/entity"
	"github.com/rocketscienceinc/catanview/testing/fixture"
)

func TestMatch_At(t *testing.T) {
	match := fixture.Match(7, 3)

	t.Run("Index inside the history", func(t *testing.T) {
		snapshot, index := match.At(1)

		assert.Equal(t, 1, index)
		assert.Equal(t, 1, snapshot.ActionID)
	})

	t.Run("Index past the end is clamped to the last snapshot", func(t *testing.T) {
		snapshot, index := match.At(10)

		assert.Equal(t, 2, index)
		assert.Equal(t, 2, snapshot.ActionID)
	})

	t.Run("Negative index is clamped to the first snapshot", func(t *testing.T) {
		_, index := match.At(-4)

		assert.Equal(t, 0, index)
	})

	t.Run("Empty match has no snapshot", func(t *testing.T) {
		empty := &entity.Match{ID: 1}

		snapshot, index := empty.At(0)

		assert.Nil(t, snapshot)
		assert.Equal(t, 0, index)
		assert.False(t, empty.HasNext(0))
		assert.False(t, empty.HasPrevious(0))
	})

	t.Run("Paging bounds", func(t *testing.T) {
		assert.False(t, match.HasPrevious(0))
		assert.True(t, match.HasNext(0))
		assert.True(t, match.HasPrevious(2))
		assert.False(t, match.HasNext(2))
		assert.Equal(t, 3, match.Len())
	})
}

func TestActionName(t *testing.T) {
	assert.Equal(t, "New Game", entity.ActionName(0))
	assert.Equal(t, "Move Robber", entity.ActionName(12))
	assert.Equal(t, "Roll Dice", entity.ActionName(15))
	assert.Equal(t, "Unknown", entity.ActionName(16))
	assert.Equal(t, "Unknown", entity.ActionName(-1))
}

func TestSnapshot_Players(t *testing.T) {
	// Given: the fixture board where player 1 is on turn
	snapshot := fixture.Snapshot()

	// When: reading all players
	players := snapshot.Players()

	// Then: four players in id order with their cards
	assert.Len(t, players, entity.PlayerCount)
	assert.Equal(t, 1, players[0].ID)
	assert.True(t, players[0].IsCurrentTurn)
	assert.Equal(t, entity.Resources{Wool: 1, Lumber: 1, Brick: 1}, players[0].Resources)
	assert.Equal(t, 1, players[1].DevelopmentCards.Knight)
	assert.Equal(t, 1, players[3].DevelopmentCards.VictoryPoint)
	assert.Equal(t, 13, players[2].RoadsLeft)

	// And: a player without server rows reads as zero
	snapshot.PlayerMetadata = nil
	assert.Equal(t, 0, snapshot.Player(4).VictoryPoints)
}
