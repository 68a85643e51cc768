package entity

var actionNames = [...]string{
	"New Game",
	"Play Road",
	"Play Settlement",
	"Play City",
	"Play Knight",
	"Play Road Building",
	"Play Year of Plenty",
	"Play Monopoly",
	"Draw Development Card",
	"Offer Trade",
	"Accept Trade",
	"Decline Trade",
	"Move Robber",
	"Discard",
	"End Turn",
	"Roll Dice",
}

const unknownAction = "Unknown"

func ActionName(actionID int) string {
	if actionID < 0 || actionID >= len(actionNames) {
		return unknownAction
	}

	return actionNames[actionID]
}
