package board

import "math"

var (
	sin60 = math.Sin(math.Pi / 3)
	cos60 = math.Cos(math.Pi / 3)
)

const vertexRings = 12

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment - a road between two vertex points.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Layout - screen coordinates of one board, computed per redraw.
type Layout struct {
	TileSize float64
	Tiles    []Point
	Vertices []Point
}

func NewLayout(centerX, centerY, tileSize float64) *Layout {
	return &Layout{
		TileSize: tileSize,
		Tiles:    TileCenters(centerX, centerY, tileSize),
		Vertices: VertexPoints(centerX, centerY, tileSize),
	}
}

// TileCenters - centers of the 19 tiles in row-major order, which is the canonical tile index.
func TileCenters(centerX, centerY, tileSize float64) []Point {
	startX := centerX - 2*tileSize*sin60
	startY := centerY - 2*tileSize - 2*tileSize*cos60

	tiles := make([]Point, 0, TileCount)
	x, y := startX, startY

	for row, width := range RowTileCounts {
		for range width {
			tiles = append(tiles, Point{X: x, Y: y})
			x += 2 * tileSize * sin60
		}

		next := width
		if row+1 < len(RowTileCounts) {
			next = RowTileCounts[row+1]
		}

		y += 3 * tileSize * cos60
		x = startX - float64(next-3)*tileSize*sin60
	}

	return tiles
}

// VertexPoints - the 54 vertex points, ring by ring from the top, in canonical vertex order.
//
// Rings alternate between a short step down that changes the ring width and
// a full tileSize step that keeps it, giving the two vertex rows of every hex row.
func VertexPoints(centerX, centerY, tileSize float64) []Point {
	x := centerX - 2*tileSize*sin60
	y := centerY - 3*tileSize - 2*tileSize*cos60
	width := 3
	widening := false

	vertices := make([]Point, 0, VertexCount)

	for ring := range vertexRings {
		for range width {
			vertices = append(vertices, Point{X: x, Y: y})
			x += 2 * tileSize * sin60
		}

		if widening {
			y += tileSize
		} else {
			y += tileSize * cos60
			if ring < vertexRings/2 {
				width++
			} else {
				width--
			}
		}

		x = centerX - float64(width-1)*tileSize*sin60
		widening = !widening
	}

	return vertices
}

// HexCorners - outline of a pointy-top hexagon, starting at the lower-right corner.
func HexCorners(center Point, tileSize float64) []Point {
	corners := make([]Point, 0, 6)

	for i := 1; i <= 6; i++ {
		angle := float64(i) * math.Pi / 3
		corners = append(corners, Point{
			X: center.X + math.Sin(angle)*tileSize,
			Y: center.Y + math.Cos(angle)*tileSize,
		})
	}

	return corners
}

// EdgeEndpoints - segments of every owned edge, keyed by edge index. Unowned edges are absent.
func EdgeEndpoints(vertexPoints []Point, edgeOwnership []int) map[int]Segment {
	endpoints := make(map[int][]int)

	for vertex := range vertexPoints {
		if vertex >= len(vertexEdges) {
			break
		}

		for _, edge := range vertexEdges[vertex] {
			if edge >= len(edgeOwnership) || edgeOwnership[edge] == 0 {
				continue
			}

			endpoints[edge] = append(endpoints[edge], vertex)
		}
	}

	segments := make(map[int]Segment, len(endpoints))
	for edge, vertices := range endpoints {
		if len(vertices) != 2 {
			continue
		}

		segments[edge] = Segment{
			From: vertexPoints[vertices[0]],
			To:   vertexPoints[vertices[1]],
		}
	}

	return segments
}
