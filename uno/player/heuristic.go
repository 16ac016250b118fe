package player

import (
	"context"

	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/game"
)

// Heuristic is the built-in advisor: among the playable cards it keeps the
// one that leaves the most follow-up plays in hand, mirroring how a decent
// human dumps awkward cards early.
type Heuristic struct{}

func NewHeuristic() Advisor {
	return Heuristic{}
}

func (h Heuristic) Decide(ctx context.Context, in Input) (Decision, error) {
	var playable []card.Card
	for _, candidate := range in.Hand {
		if game.Playable(candidate, in.TopCard) {
			playable = append(playable, candidate)
		}
	}
	if len(playable) == 0 {
		return Decision{Action: ActionDraw}, nil
	}

	best := 0
	maxSpare := -1
	for i, candidate := range playable {
		spare := 0
		for _, handCard := range in.Hand {
			if game.Playable(handCard, candidate) {
				spare++
			}
		}
		if spare > maxSpare {
			maxSpare = spare
			best = i
		}
	}

	chosen := playable[best]
	decision := Decision{CardToPlay: &chosen, SaidUno: len(in.Hand) == 2}
	switch chosen.Value {
	case card.Skip, card.DrawTwo, card.WildDrawFour:
		decision.TargetPlayer = in.NextPlayer
	}
	return decision, nil
}
