package fixture

import (
	"github.com/rocketscienceinc/catanview/internal/board"
	"github.com/rocketscienceinc/catanview/internal/entity"
)

// standard beginner board, row-major: terrain kind and number chit.
var beginnerTiles = [board.TileCount][2]int{
	{entity.TerrainMountain, 10}, {entity.TerrainPasture, 2}, {entity.TerrainForest, 9},
	{entity.TerrainField, 12}, {entity.TerrainHill, 6}, {entity.TerrainPasture, 4}, {entity.TerrainHill, 10},
	{entity.TerrainField, 9}, {entity.TerrainForest, 11}, {entity.TerrainDesert, 0}, {entity.TerrainForest, 3}, {entity.TerrainMountain, 8},
	{entity.TerrainForest, 8}, {entity.TerrainMountain, 3}, {entity.TerrainField, 4}, {entity.TerrainPasture, 5},
	{entity.TerrainHill, 5}, {entity.TerrainField, 6}, {entity.TerrainPasture, 11},
}

// Snapshot - a valid, empty board with the robber on the desert.
func Snapshot() *entity.Snapshot {
	tiles := make([][]int, 0, board.TileCount)
	for _, tile := range beginnerTiles {
		tiles = append(tiles, []int{tile[0], tile[1]})
	}

	nodes := make([][]int, board.VertexCount)
	for i := range nodes {
		nodes[i] = []int{entity.NoPlayer, entity.BuildingNone}
	}

	robber := 9

	return &entity.Snapshot{
		Tiles:         tiles,
		Nodes:         nodes,
		Edges:         make([]int, board.EdgeCount),
		RobberIndex:   &robber,
		CurrentPlayer: 1,
		PlayerMetadata: [][]int{
			{2, 0, 0, 3, 4, 13, 0, 0},
			{2, 0, 0, 3, 4, 13, 0, 0},
			{2, 0, 0, 3, 4, 13, 0, 0},
			{2, 0, 0, 3, 4, 13, 0, 0},
		},
		PlayerFullResourceCards: [][]int{
			{1, 0, 1, 0, 1},
			{0, 2, 0, 1, 0},
			{1, 1, 1, 1, 1},
			{0, 0, 0, 0, 0},
		},
		PlayerDevelopmentCards: [][]int{
			{0, 0, 0, 0, 0},
			{1, 0, 0, 0, 0},
			{0, 0, 1, 0, 0},
			{0, 0, 0, 0, 1},
		},
	}
}

// Match - a match with count snapshots; snapshot i has ActionID i%16 and LastRoll 2+i%11.
func Match(id, count int) *entity.Match {
	match := &entity.Match{ID: id}
	for i := range count {
		snapshot := Snapshot()
		snapshot.ActionID = i % 16
		snapshot.LastRoll = 2 + i%11
		match.Snapshots = append(match.Snapshots, *snapshot)
	}

	return match
}
