package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/catanview/internal/board"
	"github.com/rocketscienceinc/catanview/internal/entity"
	"github.com/rocketscienceinc/catanview/testing/fixture"
)

type op struct {
	kind   string
	points []board.Point
	radius float64
	color  string
	text   string
}

type recorder struct {
	ops []op
}

func (that *recorder) Fill(_, _ float64, color string) {
	that.ops = append(that.ops, op{kind: "fill", color: color})
}

func (that *recorder) Polygon(points []board.Point, fill, _ string, _ float64) {
	that.ops = append(that.ops, op{kind: "polygon", points: points, color: fill})
}

func (that *recorder) Disc(center board.Point, radius float64, color string) {
	that.ops = append(that.ops, op{kind: "disc", points: []board.Point{center}, radius: radius, color: color})
}

func (that *recorder) Line(from, to board.Point, color string, _ float64) {
	that.ops = append(that.ops, op{kind: "line", points: []board.Point{from, to}, color: color})
}

func (that *recorder) Text(at board.Point, text, color string, _ float64) {
	that.ops = append(that.ops, op{kind: "text", points: []board.Point{at}, color: color, text: text})
}

func (that *recorder) filter(pred func(op) bool) []op {
	var out []op
	for _, o := range that.ops {
		if pred(o) {
			out = append(out, o)
		}
	}

	return out
}

func (that *recorder) kind(kind string) []op {
	return that.filter(func(o op) bool { return o.kind == kind })
}

func (that *recorder) discs(radius float64) []op {
	return that.filter(func(o op) bool { return o.kind == "disc" && o.radius == radius })
}

func TestRenderBoard_NotLoaded(t *testing.T) {
	t.Run("Nil snapshot draws nothing", func(t *testing.T) {
		surface := &recorder{}

		RenderBoard(surface, nil)

		assert.Empty(t, surface.ops)
	})

	t.Run("Snapshot without tiles draws nothing", func(t *testing.T) {
		surface := &recorder{}

		RenderBoard(surface, &entity.Snapshot{Edges: make([]int, board.EdgeCount)})

		assert.Empty(t, surface.ops)
	})
}

func TestRenderBoard_EmptyBoard(t *testing.T) {
	// Given: a snapshot where nobody owns anything
	surface := &recorder{}
	snapshot := fixture.Snapshot()

	// When: rendering it
	RenderBoard(surface, snapshot)

	// Then: background, 19 tiles and 19 chits, but no buildings or roads
	require.NotEmpty(t, surface.ops)
	assert.Equal(t, op{kind: "fill", color: colorBackground}, surface.ops[0])
	assert.Len(t, surface.kind("polygon"), board.TileCount)
	assert.Len(t, surface.kind("line"), 0)
	assert.Len(t, surface.discs(settlementRadius), 0)
	assert.Len(t, surface.discs(cityRadius), 0)
	assert.Len(t, surface.discs(chitRadius), board.TileCount)

	// And: one number per non-desert tile
	assert.Len(t, surface.kind("text"), board.TileCount-1)
}

func TestRenderBoard_TerrainColors(t *testing.T) {
	surface := &recorder{}
	snapshot := fixture.Snapshot()

	RenderBoard(surface, snapshot)

	polygons := surface.kind("polygon")
	require.Len(t, polygons, board.TileCount)
	for i, polygon := range polygons {
		assert.Equal(t, TerrainColors[snapshot.Tile(i).Terrain], polygon.color, "tile %d", i)
		assert.Len(t, polygon.points, 6)
	}
}

func TestRenderBoard_Ownership(t *testing.T) {
	// Given: a settlement, a city and two roads
	snapshot := fixture.Snapshot()
	snapshot.Nodes[0] = []int{1, entity.BuildingSettlement}
	snapshot.Nodes[20] = []int{3, entity.BuildingCity}
	snapshot.Edges[0] = 2
	snapshot.Edges[71] = 4

	surface := &recorder{}
	layout := New(DefaultOptions()).Layout()

	// When: rendering it
	RenderBoard(surface, snapshot)

	// Then: buildings sit on their vertices in their owner's color
	settlements := surface.discs(settlementRadius)
	require.Len(t, settlements, 1)
	assert.Equal(t, layout.Vertices[0], settlements[0].points[0])
	assert.Equal(t, PlayerColors[1], settlements[0].color)

	cities := surface.discs(cityRadius)
	require.Len(t, cities, 1)
	assert.Equal(t, layout.Vertices[20], cities[0].points[0])
	assert.Equal(t, PlayerColors[3], cities[0].color)

	// And: roads join their topology vertices in edge order
	lines := surface.kind("line")
	require.Len(t, lines, 2)
	assert.Equal(t, []board.Point{layout.Vertices[0], layout.Vertices[3]}, lines[0].points)
	assert.Equal(t, PlayerColors[2], lines[0].color)
	assert.Equal(t, []board.Point{layout.Vertices[50], layout.Vertices[53]}, lines[1].points)
	assert.Equal(t, PlayerColors[4], lines[1].color)
}

func TestRenderBoard_DrawOrder(t *testing.T) {
	snapshot := fixture.Snapshot()
	snapshot.Nodes[5] = []int{2, entity.BuildingSettlement}
	snapshot.Edges[10] = 2

	surface := &recorder{}
	RenderBoard(surface, snapshot)

	order := map[string]int{"fill": 0, "polygon": 1, "building": 2, "line": 3, "chit": 4}
	last := -1
	for _, o := range surface.ops {
		kind := o.kind
		switch {
		case kind == "disc" && o.radius == settlementRadius:
			kind = "building"
		case kind == "disc", kind == "text":
			kind = "chit"
		}

		assert.GreaterOrEqual(t, order[kind], last, "%s drawn out of order", kind)
		last = order[kind]
	}
}

func TestRenderBoard_DesertWithRobber(t *testing.T) {
	// Given: tile 4 is a desert holding the robber
	snapshot := fixture.Snapshot()
	snapshot.Tiles[4] = []int{entity.TerrainDesert, 0}
	snapshot.Tiles[9] = []int{entity.TerrainHill, 6}
	robber := 4
	snapshot.RobberIndex = &robber

	surface := &recorder{}
	layout := New(DefaultOptions()).Layout()

	// When: rendering it
	RenderBoard(surface, snapshot)

	// Then: the robber disc sits on tile 4's chit
	robbers := surface.discs(robberRadius)
	require.Len(t, robbers, 1)
	assert.Equal(t, layout.Tiles[4], robbers[0].points[0])
	assert.Equal(t, colorRobber, robbers[0].color)

	// And: tile 4 has no number while the former desert does
	for _, text := range surface.kind("text") {
		assert.NotEqual(t, layout.Tiles[4], text.points[0])
	}

	texts := surface.filter(func(o op) bool { return o.kind == "text" && o.points[0] == layout.Tiles[9] })
	require.Len(t, texts, 1)
	assert.Equal(t, "6", texts[0].text)
}

func TestRenderBoard_NumberColors(t *testing.T) {
	surface := &recorder{}
	snapshot := fixture.Snapshot()

	RenderBoard(surface, snapshot)

	for _, text := range surface.kind("text") {
		if text.text == "6" || text.text == "8" {
			assert.Equal(t, colorHotNumber, text.color, text.text)
		} else {
			assert.Equal(t, colorNumber, text.color, text.text)
		}
	}
}

func TestRenderBoard_NoRobber(t *testing.T) {
	snapshot := fixture.Snapshot()
	snapshot.RobberIndex = nil

	surface := &recorder{}
	RenderBoard(surface, snapshot)

	assert.Empty(t, surface.discs(robberRadius))
}

func TestRenderBoard_Idempotent(t *testing.T) {
	snapshot := fixture.Snapshot()
	snapshot.Edges[30] = 1

	first, second := &recorder{}, &recorder{}
	RenderBoard(first, snapshot)
	RenderBoard(second, snapshot)

	assert.Equal(t, first.ops, second.ops)
}

func TestRenderBoard_OutOfPaletteTerrainPanics(t *testing.T) {
	snapshot := fixture.Snapshot()
	snapshot.Tiles[2] = []int{9, 5}

	assert.Panics(t, func() {
		RenderBoard(&recorder{}, snapshot)
	})
}

func TestRenderer_ScaledOptions(t *testing.T) {
	renderer := New(Options{CanvasWidth: 425, CanvasHeight: 425, TileSize: 35})
	snapshot := fixture.Snapshot()

	surface := &recorder{}
	renderer.Render(surface, snapshot)

	chits := surface.discs(chitRadius / 2)
	require.Len(t, chits, board.TileCount)
	assert.InDelta(t, 212.5, chits[9].points[0].X, 1e-9)
	assert.InDelta(t, 212.5, chits[9].points[0].Y, 1e-9)
}

func TestRenderer_WriteSVG(t *testing.T) {
	snapshot := fixture.Snapshot()
	snapshot.Nodes[0] = []int{1, entity.BuildingSettlement}

	var buf bytes.Buffer
	New(DefaultOptions()).WriteSVG(&buf, snapshot)

	document := buf.String()
	assert.Contains(t, document, "<svg")
	assert.Contains(t, document, "</svg>")
	assert.Equal(t, board.TileCount, strings.Count(document, "<polygon"))
	assert.Contains(t, document, "fill:"+PlayerColors[1])
}

func TestRenderer_WritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(DefaultOptions()).WritePNG(&buf, fixture.Snapshot()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultCanvasSize, img.Bounds().Dx())
	assert.Equal(t, DefaultCanvasSize, img.Bounds().Dy())

	// corner pixel is background
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0x00), r>>8)
	assert.Equal(t, uint32(0x48), g>>8)
	assert.Equal(t, uint32(0xf0), b>>8)
}
