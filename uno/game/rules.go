package game

import "github.com/uno-dare/server/uno/card"

// Playable reports whether candidate may be played on top. Wild cards are
// always playable; otherwise the candidate must match the top card's active
// color (the chosen color when the top card is a committed wild) or its face
// value. Pure and side-effect-free; also used to re-validate moves proposed
// by untrusted automated opponents.
func Playable(candidate card.Card, top card.Card) bool {
	if candidate.IsWild() {
		return true
	}
	return candidate.Color == top.ActiveColor() || candidate.Value == top.Value
}
