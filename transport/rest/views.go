package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/rocketscienceinc/catanview/internal/entity"
	"github.com/rocketscienceinc/catanview/internal/render"
	"github.com/rocketscienceinc/catanview/internal/usecase"
)

// MatchPageData holds data for the match viewer page.
type MatchPageData struct {
	MatchID      int
	Index        int
	Total        int
	LastRoll     int
	Action       string
	CurrentTurn  int
	HasPrevious  bool
	HasNext      bool
	BoardURL     string
	PreviousURL  string
	NextURL      string
	BoardSize    int
	Players      []PlayerPanel
	RobberOnTile int
	HasRobber    bool
}

// PlayerPanel holds one player's dashboard card.
type PlayerPanel struct {
	entity.PlayerStats
	Color string
}

func newMatchPageData(id int, frame *usecase.Frame, boardSize int) MatchPageData {
	snapshot := frame.Snapshot
	robber, hasRobber := snapshot.Robber()

	data := MatchPageData{
		MatchID:      id,
		Index:        frame.Index,
		Total:        frame.Match.Len(),
		LastRoll:     snapshot.LastRoll,
		Action:       snapshot.ActionName(),
		CurrentTurn:  snapshot.CurrentPlayer,
		HasPrevious:  frame.HasPrevious(),
		HasNext:      frame.HasNext(),
		BoardURL:     fmt.Sprintf("/matches/%d/board.svg?state=%d", id, frame.Index),
		PreviousURL:  matchURL(id, frame.Index-1),
		NextURL:      matchURL(id, frame.Index+1),
		BoardSize:    boardSize,
		RobberOnTile: robber,
		HasRobber:    hasRobber,
	}

	for _, player := range snapshot.Players() {
		data.Players = append(data.Players, PlayerPanel{
			PlayerStats: player,
			Color:       render.PlayerColors[player.ID],
		})
	}

	return data
}

const pageStyle = `body{font-family:sans-serif;background:#f2f2f2;margin:0;padding:16px}
.layout{display:flex;gap:16px;align-items:flex-start}
.panel{background:#fff;border-radius:6px;padding:8px 12px;margin-bottom:8px;border-left:8px solid #ccc}
.panel.current{box-shadow:0 0 0 3px #222}
.meta span{margin-right:16px}
nav a,nav span{margin-right:12px}`

func HomePage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		pageHeader(&b, "Catan match viewer")
		b.WriteString(`<h1>Catan match viewer</h1>`)
		b.WriteString(`<form method="get" action="/matches">`)
		b.WriteString(`<label>Match id <input type="number" name="id" min="1" required></label> `)
		b.WriteString(`<button type="submit">Open</button></form>`)
		pageFooter(&b)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func MatchPage(data MatchPageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		pageHeader(&b, fmt.Sprintf("Match %d", data.MatchID))

		fmt.Fprintf(&b, `<h1>Match %d</h1>`, data.MatchID)
		writeMeta(&b, data)
		writeNav(&b, data)

		b.WriteString(`<div class="layout">`)
		fmt.Fprintf(&b, `<img id="board" src="%s" width="%d" height="%d" alt="board">`,
			templ.EscapeString(data.BoardURL), data.BoardSize, data.BoardSize)
		b.WriteString(`<div class="players">`)
		for _, player := range data.Players {
			writePlayer(&b, player)
		}
		b.WriteString(`</div></div>`)

		writeKeyboardScript(&b, data)
		pageFooter(&b)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func pageHeader(b *strings.Builder, title string) {
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	fmt.Fprintf(b, `<title>%s</title><style>%s</style></head><body>`, templ.EscapeString(title), pageStyle)
}

func pageFooter(b *strings.Builder) {
	b.WriteString(`</body></html>`)
}

func writeMeta(b *strings.Builder, data MatchPageData) {
	b.WriteString(`<div class="meta">`)
	fmt.Fprintf(b, `<span>State %d of %d</span>`, data.Index+1, data.Total)
	fmt.Fprintf(b, `<span>Last roll: %d</span>`, data.LastRoll)
	fmt.Fprintf(b, `<span>Action: %s</span>`, templ.EscapeString(data.Action))
	fmt.Fprintf(b, `<span>Current player: %d</span>`, data.CurrentTurn)
	if data.HasRobber {
		fmt.Fprintf(b, `<span>Robber on tile %d</span>`, data.RobberOnTile)
	}
	b.WriteString(`</div>`)
}

func writeNav(b *strings.Builder, data MatchPageData) {
	b.WriteString(`<nav>`)
	if data.HasPrevious {
		fmt.Fprintf(b, `<a id="prev" href="%s">&larr; Previous</a>`, templ.EscapeString(data.PreviousURL))
	} else {
		b.WriteString(`<span>&larr; Previous</span>`)
	}
	if data.HasNext {
		fmt.Fprintf(b, `<a id="next" href="%s">Next &rarr;</a>`, templ.EscapeString(data.NextURL))
	} else {
		b.WriteString(`<span>Next &rarr;</span>`)
	}
	fmt.Fprintf(b, `<form method="post" action="/matches/%d/refresh" style="display:inline">`, data.MatchID)
	b.WriteString(`<button type="submit">Reload</button></form>`)
	b.WriteString(`</nav>`)
}

func writePlayer(b *strings.Builder, player PlayerPanel) {
	class := "panel"
	if player.IsCurrentTurn {
		class += " current"
	}

	fmt.Fprintf(b, `<div class="%s" style="border-left-color:%s">`, class, player.Color)
	fmt.Fprintf(b, `<strong>Player %d</strong> &middot; %d VP`, player.ID, player.VictoryPoints)
	if player.LargestArmy {
		b.WriteString(` &middot; Largest army`)
	}
	if player.LongestRoad {
		b.WriteString(` &middot; Longest road`)
	}

	res := player.Resources
	fmt.Fprintf(b, `<div>Wool %d, Grain %d, Lumber %d, Ore %d, Brick %d</div>`,
		res.Wool, res.Grain, res.Lumber, res.Ore, res.Brick)

	dev := player.DevelopmentCards
	fmt.Fprintf(b, `<div>Knight %d, Road building %d, Year of plenty %d, Monopoly %d, Victory point %d</div>`,
		dev.Knight, dev.RoadBuilding, dev.YearOfPlenty, dev.Monopoly, dev.VictoryPoint)

	fmt.Fprintf(b, `<div>Left: %d settlements, %d cities, %d roads &middot; Knights played %d</div>`,
		player.SettlementsLeft, player.CitiesLeft, player.RoadsLeft, player.KnightsPlayed)
	b.WriteString(`</div>`)
}

// writeKeyboardScript - left and right arrows page through the history.
func writeKeyboardScript(b *strings.Builder, data MatchPageData) {
	b.WriteString(`<script>document.addEventListener("keydown",function(e){`)
	if data.HasPrevious {
		fmt.Fprintf(b, `if(e.key==="ArrowLeft"){window.location=%q;}`, data.PreviousURL)
	}
	if data.HasNext {
		fmt.Fprintf(b, `if(e.key==="ArrowRight"){window.location=%q;}`, data.NextURL)
	}
	b.WriteString(`});</script>`)
}

func writeHTML(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}
