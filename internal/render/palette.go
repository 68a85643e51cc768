package render

const (
	colorBackground = "#0048f0"
	colorOutline    = "#000000"
	colorChit       = "#b5b5b5"
	colorRobber     = "#555555"
	colorHotNumber  = "#ff0000"
	colorNumber     = "#000000"
)

// PlayerColors - indexed by player id; slot 0 is unowned and never drawn.
var PlayerColors = [...]string{
	"",
	"#ff0000", // red
	"#1e04c9", // blue
	"#fff700", // yellow
	"#ffffff", // white
}

// TerrainColors - indexed by terrain kind.
var TerrainColors = [...]string{
	"#CEA24A", // desert
	"#147800", // forest
	"#9FC25C", // pasture
	"#d19302", // field
	"#c9280c", // hill
	"#616A79", // mountain
}
