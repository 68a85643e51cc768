package entity

import (
	"fmt"

	"github.com/rocketscienceinc/catanview/internal/apperror"
	"github.com/rocketscienceinc/catanview/internal/board"
)

const (
	TerrainDesert = iota
	TerrainForest
	TerrainPasture
	TerrainField
	TerrainHill
	TerrainMountain

	TerrainKinds = TerrainMountain + 1
)

const (
	BuildingNone = iota
	BuildingSettlement
	BuildingCity
)

const (
	NoPlayer    = 0
	PlayerCount = 4
)

// Snapshot - one recorded game state, as served by the Catan AI server.
// It is read-only once decoded.
type Snapshot struct {
	ID     int64 `json:"id,omitempty"`
	GameID int64 `json:"game_id,omitempty"`

	// Tiles - terrain kind and number chit per tile.
	Tiles [][]int `json:"tiles"`
	// Nodes - owning player and building code per vertex.
	Nodes [][]int `json:"nodes"`
	// Edges - owning player per edge.
	Edges []int `json:"edges"`

	RobberIndex   *int `json:"robberIndex,omitempty"`
	LastRoll      int  `json:"lastRoll"`
	CurrentPlayer int  `json:"currentPlayer"`
	ActionID      int  `json:"actionID"`

	Banks []int `json:"banks,omitempty"`
	Ports []int `json:"ports,omitempty"`

	PlayerMetadata                 [][]int `json:"playerMetadata,omitempty"`
	PlayerFullResourceCards        [][]int `json:"playerFullResourceCards,omitempty"`
	PlayerPerspectiveResourceCards [][]int `json:"playerPerspectiveResourceCards,omitempty"`
	PlayerDevelopmentCards         [][]int `json:"playerDevelopmentCards,omitempty"`
}

type Tile struct {
	Terrain int
	Chit    int
}

func (that Tile) IsDesert() bool {
	return that.Terrain == TerrainDesert
}

// IsHotNumber - 6 and 8 are the most likely rolls after 7.
func IsHotNumber(chit int) bool {
	return chit == 6 || chit == 8
}

// IsLoaded - false while the snapshot has no board data yet.
func (that *Snapshot) IsLoaded() bool {
	return that != nil && that.Tiles != nil
}

func (that *Snapshot) Tile(index int) Tile {
	tile := that.Tiles[index]

	return Tile{Terrain: valueAt(tile, 0), Chit: valueAt(tile, 1)}
}

func (that *Snapshot) NodeOwner(index int) int {
	if index >= len(that.Nodes) {
		return NoPlayer
	}

	return valueAt(that.Nodes[index], 0)
}

func (that *Snapshot) NodeBuilding(index int) int {
	if index >= len(that.Nodes) {
		return BuildingNone
	}

	return valueAt(that.Nodes[index], 1)
}

// EdgeOwners - owning player per edge, indexed like the board topology.
func (that *Snapshot) EdgeOwners() []int {
	return that.Edges
}

// Robber - tile index holding the robber, if the server sent one.
func (that *Snapshot) Robber() (int, bool) {
	if that.RobberIndex == nil {
		return 0, false
	}

	return *that.RobberIndex, true
}

func (that *Snapshot) ActionName() string {
	return ActionName(that.ActionID)
}

// Validate - checks array shapes and value ranges. A snapshot without tiles is
// treated as not loaded yet and passes.
func (that *Snapshot) Validate() error {
	if !that.IsLoaded() {
		return nil
	}

	if len(that.Tiles) != board.TileCount {
		return fmt.Errorf("%w: %d tiles", apperror.ErrMalformedSnapshot, len(that.Tiles))
	}

	for i, tile := range that.Tiles {
		if len(tile) < 2 {
			return fmt.Errorf("%w: tile %d has %d values", apperror.ErrMalformedSnapshot, i, len(tile))
		}

		if tile[0] < 0 || tile[0] >= TerrainKinds {
			return fmt.Errorf("%w: tile %d terrain %d", apperror.ErrMalformedSnapshot, i, tile[0])
		}

		if tile[1] != 0 && (tile[1] < 2 || tile[1] > 12) {
			return fmt.Errorf("%w: tile %d chit %d", apperror.ErrMalformedSnapshot, i, tile[1])
		}
	}

	if that.Nodes != nil && len(that.Nodes) != board.VertexCount {
		return fmt.Errorf("%w: %d nodes", apperror.ErrMalformedSnapshot, len(that.Nodes))
	}

	for i := range that.Nodes {
		if owner := that.NodeOwner(i); !validOwner(owner) {
			return fmt.Errorf("%w: node %d owner %d", apperror.ErrMalformedSnapshot, i, owner)
		}

		if building := that.NodeBuilding(i); building < BuildingNone || building > BuildingCity {
			return fmt.Errorf("%w: node %d building %d", apperror.ErrMalformedSnapshot, i, building)
		}
	}

	if that.Edges != nil && len(that.Edges) != board.EdgeCount {
		return fmt.Errorf("%w: %d edges", apperror.ErrMalformedSnapshot, len(that.Edges))
	}

	for i, owner := range that.Edges {
		if !validOwner(owner) {
			return fmt.Errorf("%w: edge %d owner %d", apperror.ErrMalformedSnapshot, i, owner)
		}
	}

	if robber, ok := that.Robber(); ok && (robber < 0 || robber >= board.TileCount) {
		return fmt.Errorf("%w: robber on tile %d", apperror.ErrMalformedSnapshot, robber)
	}

	return nil
}

func validOwner(owner int) bool {
	return owner >= NoPlayer && owner <= PlayerCount
}

func valueAt(values []int, index int) int {
	if index >= len(values) {
		return 0
	}

	return values[index]
}
