package event

import "github.com/uno-dare/server/uno/card/color"

var ColorChosen = &colorChosenEmitter{}

type ColorChosenPayload struct {
	GameID     string
	PlayerName string
	Color      color.Color
}

type ColorChosenListener interface {
	OnColorChosen(ColorChosenPayload)
}

type colorChosenEmitter struct {
	listeners []ColorChosenListener
}

func (e *colorChosenEmitter) AddListener(listener ColorChosenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *colorChosenEmitter) Emit(payload ColorChosenPayload) {
	for _, listener := range e.listeners {
		listener.OnColorChosen(payload)
	}
}
