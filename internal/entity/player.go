package entity

// Resources - resource cards in hand, in the server's card order.
type Resources struct {
	Wool   int `json:"wool"`
	Grain  int `json:"grain"`
	Lumber int `json:"lumber"`
	Ore    int `json:"ore"`
	Brick  int `json:"brick"`
}

type DevelopmentCards struct {
	Knight       int `json:"knight"`
	RoadBuilding int `json:"road_building"`
	YearOfPlenty int `json:"year_of_plenty"`
	Monopoly     int `json:"monopoly"`
	VictoryPoint int `json:"victory_point"`
}

// PlayerStats - everything the dashboard shows for one player.
type PlayerStats struct {
	ID            int  `json:"id"`
	IsCurrentTurn bool `json:"is_current_turn"`

	VictoryPoints   int  `json:"victory_points"`
	LargestArmy     bool `json:"largest_army"`
	LongestRoad     bool `json:"longest_road"`
	SettlementsLeft int  `json:"settlements_left"`
	CitiesLeft      int  `json:"cities_left"`
	RoadsLeft       int  `json:"roads_left"`
	KnightsPlayed   int  `json:"knights_played"`
	DevCardsInHand  int  `json:"dev_cards_in_hand"`

	Resources        Resources        `json:"resources"`
	DevelopmentCards DevelopmentCards `json:"development_cards"`
}

// Player - stats of player id (1..4). Missing arrays read as zero.
func (that *Snapshot) Player(id int) PlayerStats {
	row := id - 1

	metadata := rowAt(that.PlayerMetadata, row)
	resources := rowAt(that.PlayerFullResourceCards, row)
	devCards := rowAt(that.PlayerDevelopmentCards, row)

	return PlayerStats{
		ID:            id,
		IsCurrentTurn: that.CurrentPlayer == id,

		VictoryPoints:   valueAt(metadata, 0),
		LargestArmy:     valueAt(metadata, 1) == 1,
		LongestRoad:     valueAt(metadata, 2) == 1,
		SettlementsLeft: valueAt(metadata, 3),
		CitiesLeft:      valueAt(metadata, 4),
		RoadsLeft:       valueAt(metadata, 5),
		KnightsPlayed:   valueAt(metadata, 6),
		DevCardsInHand:  valueAt(metadata, 7),

		Resources: Resources{
			Wool:   valueAt(resources, 0),
			Grain:  valueAt(resources, 1),
			Lumber: valueAt(resources, 2),
			Ore:    valueAt(resources, 3),
			Brick:  valueAt(resources, 4),
		},
		DevelopmentCards: DevelopmentCards{
			Knight:       valueAt(devCards, 0),
			RoadBuilding: valueAt(devCards, 1),
			YearOfPlenty: valueAt(devCards, 2),
			Monopoly:     valueAt(devCards, 3),
			VictoryPoint: valueAt(devCards, 4),
		},
	}
}

func (that *Snapshot) Players() []PlayerStats {
	players := make([]PlayerStats, 0, PlayerCount)
	for id := 1; id <= PlayerCount; id++ {
		players = append(players, that.Player(id))
	}

	return players
}

func rowAt(rows [][]int, index int) []int {
	if index < 0 || index >= len(rows) {
		return nil
	}

	return rows[index]
}
