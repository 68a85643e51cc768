package render

import (
	"strconv"

	"github.com/rocketscienceinc/catanview/internal/board"
	"github.com/rocketscienceinc/catanview/internal/entity"
)

const (
	DefaultCanvasSize = 850
	DefaultTileSize   = 70
)

// sizes at DefaultTileSize; they scale with the tile size.
const (
	outlineWidth     = 5.0
	roadWidth        = 5.0
	settlementRadius = 10.0
	cityRadius       = 15.0
	cityMarkRadius   = 5.0
	chitRadius       = 25.0
	robberRadius     = 13.0
	numberSize       = 20.0
)

type Options struct {
	CanvasWidth  float64
	CanvasHeight float64
	TileSize     float64
}

func DefaultOptions() Options {
	return Options{
		CanvasWidth:  DefaultCanvasSize,
		CanvasHeight: DefaultCanvasSize,
		TileSize:     DefaultTileSize,
	}
}

// Renderer - draws whole snapshots onto a surface. It holds only its options
// and is safe to reuse across snapshots and goroutines.
type Renderer struct {
	opts  Options
	scale float64
}

func New(opts Options) *Renderer {
	return &Renderer{
		opts:  opts,
		scale: opts.TileSize / DefaultTileSize,
	}
}

func (that *Renderer) Options() Options {
	return that.opts
}

// Layout - board coordinates centered on the canvas.
func (that *Renderer) Layout() *board.Layout {
	return board.NewLayout(that.opts.CanvasWidth/2, that.opts.CanvasHeight/2, that.opts.TileSize)
}

// RenderBoard - draws snapshot with the default options.
func RenderBoard(surface Surface, snapshot *entity.Snapshot) {
	New(DefaultOptions()).Render(surface, snapshot)
}

// Render - clears the surface and redraws the whole board. A snapshot that is
// not loaded draws nothing. Terrain or player values outside the palettes panic.
func (that *Renderer) Render(surface Surface, snapshot *entity.Snapshot) {
	if !snapshot.IsLoaded() {
		return
	}

	layout := that.Layout()

	surface.Fill(that.opts.CanvasWidth, that.opts.CanvasHeight, colorBackground)

	that.drawTiles(surface, layout, snapshot)
	that.drawBuildings(surface, layout, snapshot)
	that.drawRoads(surface, layout, snapshot)
	that.drawChits(surface, layout, snapshot)
}

func (that *Renderer) drawTiles(surface Surface, layout *board.Layout, snapshot *entity.Snapshot) {
	for i, center := range layout.Tiles {
		tile := snapshot.Tile(i)
		surface.Polygon(
			board.HexCorners(center, layout.TileSize),
			TerrainColors[tile.Terrain],
			colorOutline,
			outlineWidth*that.scale,
		)
	}
}

func (that *Renderer) drawBuildings(surface Surface, layout *board.Layout, snapshot *entity.Snapshot) {
	for i, point := range layout.Vertices {
		owner := snapshot.NodeOwner(i)
		if owner == entity.NoPlayer {
			continue
		}

		if snapshot.NodeBuilding(i) == entity.BuildingCity {
			surface.Disc(point, cityRadius*that.scale, PlayerColors[owner])
			surface.Disc(point, cityMarkRadius*that.scale, colorOutline)

			continue
		}

		surface.Disc(point, settlementRadius*that.scale, PlayerColors[owner])
	}
}

func (that *Renderer) drawRoads(surface Surface, layout *board.Layout, snapshot *entity.Snapshot) {
	owners := snapshot.EdgeOwners()

	// map order is random; draw in edge order so output is stable.
	segments := board.EdgeEndpoints(layout.Vertices, owners)
	for edge := range owners {
		segment, ok := segments[edge]
		if !ok {
			continue
		}

		surface.Line(segment.From, segment.To, PlayerColors[owners[edge]], roadWidth*that.scale)
	}
}

func (that *Renderer) drawChits(surface Surface, layout *board.Layout, snapshot *entity.Snapshot) {
	robber, hasRobber := snapshot.Robber()

	for i, center := range layout.Tiles {
		surface.Disc(center, chitRadius*that.scale, colorChit)

		if hasRobber && robber == i {
			surface.Disc(center, robberRadius*that.scale, colorRobber)
		}

		tile := snapshot.Tile(i)
		if tile.IsDesert() {
			continue
		}

		color := colorNumber
		if entity.IsHotNumber(tile.Chit) {
			color = colorHotNumber
		}

		surface.Text(center, strconv.Itoa(tile.Chit), color, numberSize*that.scale)
	}
}
