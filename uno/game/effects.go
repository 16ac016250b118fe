package game

import (
	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/msg"
)

// resolveEffect dispatches a committed card's effect. It runs exactly once
// per committed card, after the win check. draw2 and wildDraw4 do not move
// the cursor: the round sits in the pending draw-or-dare sub-state until the
// targeted player resolves it.
func (s *GameState) resolveEffect(played card.Card) {
	switch played.Value {
	case card.Skip:
		skipped := s.Players[s.peek(1)]
		s.appendLog(msg.Message.PlayerSkipped(skipped.Name))
		s.advance(2)
	case card.Reverse:
		s.Direction = s.Direction.Flip()
		s.appendLog(msg.Message.DirectionReversed(string(s.Direction)))
		s.advance(1)
	case card.DrawTwo:
		s.deferDraw(2)
	case card.WildDrawFour:
		s.deferDraw(4)
	default:
		// Plain numbers and committed plain wilds carry no effect.
		s.advance(1)
	}
}

func (s *GameState) deferDraw(amount int) {
	target := s.Players[s.peek(1)]
	s.Pending = &PendingAction{PlayerID: target.ID, DrawCount: amount}
	s.appendLog(msg.Message.PendingDraw(target.Name, amount))
}
