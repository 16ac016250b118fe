package msg

import (
	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/card/color"
)

// Message writes the human-readable entries appended to a game's log.
var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) RoundStarted(firstPlayerName string) string {
	return Sprintf("Game started! %s's turn.", firstPlayerName)
}

func (m MessageWriter) PlayerTurn(playerName string) string {
	return Sprintf("%s's turn.", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, played card.Card) string {
	return Sprintf("%s played a %s.", playerName, played)
}

func (m MessageWriter) PlayerPlayedWild(playerName string) string {
	return Sprintf("%s played a wild card and is choosing a color.", playerName)
}

func (m MessageWriter) PlayerChoseColor(playerName string, chosen color.Color) string {
	return Sprintf("%s chose %s.", playerName, chosen)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return Sprintf("%s drew a card.", playerName)
	}
	return Sprintf("%s drew %d cards.", playerName, amount)
}

func (m MessageWriter) PlayerSkipped(playerName string) string {
	return Sprintf("%s was skipped!", playerName)
}

func (m MessageWriter) DirectionReversed(direction string) string {
	return Sprintf("Play direction is now %s.", direction)
}

func (m MessageWriter) PendingDraw(playerName string, amount int) string {
	return Sprintf("%s must draw %d cards or accept a dare.", playerName, amount)
}

func (m MessageWriter) DareAccepted(playerName, dare string) string {
	return Sprintf("%s accepted a dare instead of drawing: %s", playerName, dare)
}

func (m MessageWriter) PileReshuffled() string {
	return Sprint("Draw pile replenished from the discard pile.")
}

func (m MessageWriter) Uno(playerName string) string {
	return Sprintf("UNO! %s has one card left!", playerName)
}

func (m MessageWriter) PlayerWins(playerName string) string {
	return Sprintf("%s wins!", playerName)
}
