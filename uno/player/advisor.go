package player

import (
	"context"

	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/card/color"
	"github.com/uno-dare/server/uno/game"
)

// Input is everything an automated opponent is shown about the game: its
// own hand plus public state. Hands of other players are reduced to counts.
type Input struct {
	PlayerName    string         `json:"playerName"`
	Hand          []card.Card    `json:"hand"`
	TopCard       card.Card      `json:"topCard"`
	NextPlayer    string         `json:"nextPlayer"`
	PlayDirection game.Direction `json:"playDirection"`
	Players       map[string]int `json:"players"`
}

// Decision is an automated opponent's proposed move. CardToPlay is untrusted
// and must be re-validated against the hand and the legality rules before it
// is applied; anything invalid degrades to a draw.
type Decision struct {
	CardToPlay   *card.Card `json:"cardToPlay,omitempty"`
	Action       string     `json:"action,omitempty"` // "draw" or empty
	SaidUno      bool       `json:"saidUno,omitempty"`
	TargetPlayer string     `json:"targetPlayer,omitempty"`
}

const ActionDraw = "draw"

// Advisor decides an automated player's move. Implementations may be
// long-latency (a model-backed decision); errors and timeouts degrade to a
// draw on the player's behalf.
type Advisor interface {
	Decide(ctx context.Context, in Input) (Decision, error)
}

// PickColor is the deterministic color-choice policy for automated players:
// the color with the highest count among the remaining non-wild cards, ties
// broken by canonical color order, blue when the hand holds no non-wild
// cards.
func PickColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, c := range hand {
		if !c.IsWild() {
			counts[c.Color]++
		}
	}
	chosen := color.Blue
	best := 0
	for _, candidate := range color.Canonical {
		if counts[candidate] > best {
			best = counts[candidate]
			chosen = candidate
		}
	}
	return chosen
}
