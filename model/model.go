package model

import (
	"github.com/uno-dare/server/consts"
	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/card/color"
	"github.com/uno-dare/server/uno/game"
)

// Action types accepted from clients and automated players.
const (
	ActionPlayCard       = "playCard"
	ActionDrawCard       = "drawCard"
	ActionChooseColor    = "chooseColor"
	ActionResolvePending = "resolvePending"
	ActionRestart        = "restart"
)

// ActionMessage is one submitted action. Version, when nonzero, is the state
// revision the submitter observed; submissions against a stale revision are
// rejected so the caller re-reads and no-ops.
type ActionMessage struct {
	Type        string      `json:"type"`
	PlayerID    string      `json:"playerId"`
	Card        *card.Card  `json:"card,omitempty"`
	Color       color.Color `json:"color,omitempty"`
	ChoseToDraw bool        `json:"choseToDraw,omitempty"`
	Version     int64       `json:"version,omitempty"`
}

type StateMessage struct {
	Type  string          `json:"type"`
	State *game.GameState `json:"state"`
}

func NewStateMessage(state *game.GameState) StateMessage {
	return StateMessage{Type: "state", State: state}
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

func NewErrorMessage(err error) ErrorMessage {
	m := ErrorMessage{Type: "error", Message: err.Error()}
	if e, ok := err.(consts.Error); ok {
		m.Code = e.Code
	}
	return m
}

// RosterPlayer is the lobby's hand-off shape: everything the engine needs to
// seat a player at round start.
type RosterPlayer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsAI   bool   `json:"isAI"`
	IsHost bool   `json:"isHost"`
}

type CreateGameRequest struct {
	Players []RosterPlayer `json:"players"`
}

type CreateGameResponse struct {
	GameID string `json:"gameId"`
}
