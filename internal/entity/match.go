package entity

// Match - the ordered snapshot history of one recorded game.
type Match struct {
	ID        int        `json:"id"`
	Snapshots []Snapshot `json:"snapshots"`
}

func (that *Match) Len() int {
	return len(that.Snapshots)
}

// At - snapshot at index, clamped to the history bounds. The returned index is
// the one actually used. An empty match gives a nil snapshot.
func (that *Match) At(index int) (*Snapshot, int) {
	if len(that.Snapshots) == 0 {
		return nil, 0
	}

	index = max(0, min(index, len(that.Snapshots)-1))

	return &that.Snapshots[index], index
}

// HasPrevious and HasNext - whether paging from index can move.
func (that *Match) HasPrevious(index int) bool {
	return index > 0 && len(that.Snapshots) > 0
}

func (that *Match) HasNext(index int) bool {
	return index < len(that.Snapshots)-1
}
