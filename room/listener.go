package room

import (
	"github.com/sirupsen/logrus"

	"github.com/uno-dare/server/uno/event"
)

// logListener mirrors game events into the structured log, with cards
// painted for consoles.
type logListener struct {
	log *logrus.Logger
}

// RegisterLogListener attaches a logging listener to every game event
// emitter. Call once at startup.
func RegisterLogListener(log *logrus.Logger) {
	l := &logListener{log: log}
	event.CardPlayed.AddListener(l)
	event.ColorChosen.AddListener(l)
	event.CardsDrawn.AddListener(l)
	event.DareAssigned.AddListener(l)
	event.GameFinished.AddListener(l)
}

func (l *logListener) OnCardPlayed(payload event.CardPlayedPayload) {
	l.log.WithFields(logrus.Fields{
		"game":   payload.GameID,
		"player": payload.PlayerName,
		"card":   payload.Card.String(),
	}).Info(payload.PlayerName + " played " + payload.Card.Pretty())
}

func (l *logListener) OnColorChosen(payload event.ColorChosenPayload) {
	l.log.WithFields(logrus.Fields{
		"game":   payload.GameID,
		"player": payload.PlayerName,
		"color":  payload.Color.String(),
	}).Info(payload.PlayerName + " chose " + payload.Color.Paint(payload.Color.String()))
}

func (l *logListener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	l.log.WithFields(logrus.Fields{
		"game":   payload.GameID,
		"player": payload.PlayerName,
		"amount": payload.Amount,
	}).Info("cards drawn")
}

func (l *logListener) OnDareAssigned(payload event.DareAssignedPayload) {
	l.log.WithFields(logrus.Fields{
		"game":   payload.GameID,
		"player": payload.PlayerName,
		"dare":   payload.Dare,
	}).Info("dare assigned")
}

func (l *logListener) OnGameFinished(payload event.GameFinishedPayload) {
	l.log.WithFields(logrus.Fields{
		"game":   payload.GameID,
		"winner": payload.Winner,
	}).Info("game finished")
}
