package board

const (
	TileCount   = 19
	VertexCount = 54
	EdgeCount   = 72
)

// RowTileCounts - tiles per row, top to bottom.
var RowTileCounts = [...]int{3, 4, 5, 4, 3}

// vertexEdgesAuthored - edges incident to each vertex, 1-based, in vertex generation order.
var vertexEdgesAuthored = [][]int{
	{1, 2},
	{3, 4},
	{5, 6},
	{1, 7},
	{2, 3, 8},
	{4, 5, 9},
	{6, 10},
	{7, 11, 12},
	{8, 13, 14},
	{9, 15, 16},
	{10, 17, 18},
	{11, 19},
	{12, 13, 20},
	{14, 15, 21},
	{16, 17, 22},
	{18, 23},
	{19, 24, 25},
	{20, 26, 27},
	{21, 28, 29},
	{22, 30, 31},
	{23, 32, 33},
	{24, 34},
	{25, 26, 35},
	{27, 28, 36},
	{29, 30, 37},
	{31, 32, 38},
	{33, 39},
	{34, 40},
	{35, 41, 42},
	{36, 43, 44},
	{37, 45, 46},
	{38, 47, 48},
	{39, 49},
	{40, 41, 50},
	{42, 43, 51},
	{44, 45, 52},
	{46, 47, 53},
	{48, 49, 54},
	{50, 55},
	{51, 56, 57},
	{52, 58, 59},
	{53, 60, 61},
	{54, 62},
	{55, 56, 63},
	{57, 58, 64},
	{59, 60, 65},
	{61, 62, 66},
	{63, 67},
	{64, 68, 69},
	{65, 70, 71},
	{66, 72},
	{67, 68},
	{69, 70},
	{71, 72},
}

var (
	vertexEdges  = Normalize(vertexEdgesAuthored)
	edgeVertices = invert(vertexEdges)
)

// Normalize - converts 1-based index lists to 0-based ones. The input is left untouched.
func Normalize(lists [][]int) [][]int {
	out := make([][]int, len(lists))
	for i, list := range lists {
		out[i] = make([]int, len(list))
		for j, idx := range list {
			out[i][j] = idx - 1
		}
	}

	return out
}

func invert(vertexEdges [][]int) [EdgeCount][2]int {
	var (
		out  [EdgeCount][2]int
		seen [EdgeCount]int
	)

	for vertex, edges := range vertexEdges {
		for _, edge := range edges {
			out[edge][seen[edge]] = vertex
			seen[edge]++
		}
	}

	return out
}

// VertexEdges - 0-based edges incident to the vertex.
func VertexEdges(vertex int) []int {
	return vertexEdges[vertex]
}

// EdgeVertices - the two 0-based vertices joined by the edge, lower index first.
func EdgeVertices(edge int) [2]int {
	return edgeVertices[edge]
}
