package game

import (
	"github.com/uno-dare/server/uno/card"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counter-clockwise"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

type Player struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Hand        []card.Card `json:"hand"`
	IsAI        bool        `json:"isAI"`
	IsHost      bool        `json:"isHost"`
	CurrentDare string      `json:"currentDare,omitempty"`
}

// PendingAction is the deferred draw-or-dare sub-state created by a draw2 or
// wildDraw4. While set, only PlayerID may act, and only to resolve it.
type PendingAction struct {
	PlayerID  string `json:"playerId"`
	DrawCount int    `json:"drawCount"`
}

// PendingColor marks a wild card that has left its owner's hand but has not
// been committed to the discard pile yet.
type PendingColor struct {
	PlayerID string    `json:"playerId"`
	Card     card.Card `json:"card"`
}

// GameState is one round of the game. It is mutated exclusively through the
// operations in actions.go, each of which clones first; a rejected action
// leaves the input state untouched.
type GameState struct {
	Players         []Player       `json:"players"`
	DrawPile        []card.Card    `json:"drawPile"`
	DiscardPile     []card.Card    `json:"discardPile"`
	CurrentPlayerID string         `json:"currentPlayerId"`
	Direction       Direction      `json:"playDirection"`
	Status          Status         `json:"status"`
	Pending         *PendingAction `json:"pendingAction,omitempty"`
	AwaitingColor   *PendingColor  `json:"awaitingColor,omitempty"`
	Winner          string         `json:"winner,omitempty"`
	Log             []string       `json:"log"`
	ProcessingTurn  bool           `json:"processingTurn"`
	// Version counts accepted mutations; the store's conditional write
	// compares it to reject concurrent submissions against the same turn.
	Version int64 `json:"version"`
}

// Clone deep-copies the state so operations never alias the caller's slices.
func (s *GameState) Clone() *GameState {
	next := *s
	next.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		next.Players[i] = p
		next.Players[i].Hand = append([]card.Card(nil), p.Hand...)
	}
	next.DrawPile = append([]card.Card(nil), s.DrawPile...)
	next.DiscardPile = append([]card.Card(nil), s.DiscardPile...)
	next.Log = append([]string(nil), s.Log...)
	if s.Pending != nil {
		pending := *s.Pending
		next.Pending = &pending
	}
	if s.AwaitingColor != nil {
		awaiting := *s.AwaitingColor
		next.AwaitingColor = &awaiting
	}
	return &next
}

// TopCard returns the active card on the discard pile.
func (s *GameState) TopCard() (card.Card, bool) {
	if len(s.DiscardPile) == 0 {
		return card.Card{}, false
	}
	return s.DiscardPile[len(s.DiscardPile)-1], true
}

func (s *GameState) PlayerIndex(playerID string) int {
	for i := range s.Players {
		if s.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

func (s *GameState) Player(playerID string) *Player {
	if i := s.PlayerIndex(playerID); i >= 0 {
		return &s.Players[i]
	}
	return nil
}

func (s *GameState) CurrentPlayer() *Player {
	return s.Player(s.CurrentPlayerID)
}

// CardCount is the multiset size across both piles and every hand. It stays
// equal to the canonical deck size for the lifetime of a round.
func (s *GameState) CardCount() int {
	total := len(s.DrawPile) + len(s.DiscardPile)
	if s.AwaitingColor != nil {
		total++
	}
	for i := range s.Players {
		total += len(s.Players[i].Hand)
	}
	return total
}

func (s *GameState) appendLog(entry string) {
	s.Log = append(s.Log, entry)
}
