package game

import (
	"github.com/uno-dare/server/consts"
	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/card/color"
	"github.com/uno-dare/server/uno/msg"
)

// NewRound shuffles a fresh deck, deals each roster player a starting hand
// and seeds the discard pile with the first non-wild card of the remainder.
// A wild card may not open a round because no color context exists yet; if
// the remainder is all wild the whole deal is retried a bounded number of
// times.
func NewRound(roster []Player) (*GameState, error) {
	if len(roster) < consts.MinPlayers || len(roster) > consts.MaxPlayers {
		return nil, consts.ErrorsPlayersInvalid
	}
	for attempt := 0; attempt < consts.DealRetryLimit; attempt++ {
		deck := NewDeck()
		Shuffle(deck)

		players := make([]Player, len(roster))
		for i, p := range roster {
			players[i] = p
			players[i].CurrentDare = ""
			players[i].Hand = append([]card.Card(nil), deck[len(deck)-consts.InitialHandSize:]...)
			deck = deck[:len(deck)-consts.InitialHandSize]
		}

		first, remainder, ok := takeFirstNonWild(deck)
		if !ok {
			continue
		}

		s := &GameState{
			Players:         players,
			DrawPile:        remainder,
			DiscardPile:     []card.Card{first},
			CurrentPlayerID: players[0].ID,
			Direction:       Clockwise,
			Status:          StatusActive,
			Version:         1,
		}
		s.appendLog(msg.Message.RoundStarted(players[0].Name))
		return s, nil
	}
	return nil, consts.ErrorsDealFailed
}

// takeFirstNonWild removes the topmost non-wild card from the pile.
func takeFirstNonWild(pile []card.Card) (card.Card, []card.Card, bool) {
	for i := len(pile) - 1; i >= 0; i-- {
		if !pile[i].IsWild() {
			first := pile[i]
			remainder := append([]card.Card(nil), pile[:i]...)
			remainder = append(remainder, pile[i+1:]...)
			return first, remainder, true
		}
	}
	return card.Card{}, nil, false
}

// guardTurn rejects any action that is not the unobstructed move of the
// current player.
func (s *GameState) guardTurn(playerID string) error {
	switch {
	case s.Status == StatusFinished:
		return consts.ErrorsGameFinished
	case s.Status != StatusActive:
		return consts.ErrorsGameNotActive
	case s.Pending != nil:
		return consts.ErrorsPendingAction
	case s.AwaitingColor != nil:
		return consts.ErrorsAwaitingColor
	case playerID != s.CurrentPlayerID:
		return consts.ErrorsNotYourTurn
	}
	return nil
}

// PlayCard removes exactly one card matching played from the acting player's
// hand. A non-wild card is committed to the discard pile immediately; a wild
// enters the awaiting-color sub-state until ChooseColor commits it. The win
// check runs before any effect is resolved.
func PlayCard(s *GameState, playerID string, played card.Card) (*GameState, error) {
	if err := s.guardTurn(playerID); err != nil {
		return nil, err
	}
	top, ok := s.TopCard()
	if !ok {
		return nil, consts.ErrorsGameNotActive
	}
	idx := handIndex(s.CurrentPlayer().Hand, played)
	if idx < 0 {
		return nil, consts.ErrorsCardNotInHand
	}
	if !Playable(played, top) {
		return nil, consts.ErrorsCardNotPlayable
	}

	next := s.Clone()
	player := next.CurrentPlayer()
	removed := player.Hand[idx]
	player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)

	if removed.IsWild() {
		next.AwaitingColor = &PendingColor{PlayerID: playerID, Card: removed}
		next.appendLog(msg.Message.PlayerPlayedWild(player.Name))
		next.Version++
		return next, nil
	}

	next.DiscardPile = append(next.DiscardPile, removed)
	next.appendLog(msg.Message.PlayerPlayedCard(player.Name, removed))
	if next.checkWin(player) {
		next.Version++
		return next, nil
	}
	next.resolveEffect(removed)
	next.Version++
	return next, nil
}

// ChooseColor commits a wild card that is awaiting its color. Only the
// player who played the wild may choose, and exactly once.
func ChooseColor(s *GameState, playerID string, chosen color.Color) (*GameState, error) {
	switch {
	case s.Status == StatusFinished:
		return nil, consts.ErrorsGameFinished
	case s.Status != StatusActive:
		return nil, consts.ErrorsGameNotActive
	case s.AwaitingColor == nil:
		return nil, consts.ErrorsNotAwaitingColor
	case s.AwaitingColor.PlayerID != playerID:
		return nil, consts.ErrorsNotYourTurn
	case !chosen.Chooseable():
		return nil, consts.ErrorsColorInvalid
	}

	next := s.Clone()
	player := next.Player(playerID)
	committed := next.AwaitingColor.Card.WithChosenColor(chosen)
	next.AwaitingColor = nil
	next.DiscardPile = append(next.DiscardPile, committed)
	next.appendLog(msg.Message.PlayerChoseColor(player.Name, chosen))
	if next.checkWin(player) {
		next.Version++
		return next, nil
	}
	next.resolveEffect(committed)
	next.Version++
	return next, nil
}

// DrawCard draws a single card for the current player and passes the turn.
func DrawCard(s *GameState, playerID string) (*GameState, error) {
	if err := s.guardTurn(playerID); err != nil {
		return nil, err
	}
	next := s.Clone()
	player := next.CurrentPlayer()
	if drawn := next.drawTo(next.PlayerIndex(playerID), 1); drawn > 0 {
		next.appendLog(msg.Message.PlayerDrewCards(player.Name, drawn))
	}
	next.advance(1)
	next.Version++
	return next, nil
}

// ResolvePending settles the deferred draw-or-dare sub-state. Drawing costs
// the target their turn; accepting the dare makes the target the current
// player immediately. The dare text is supplied by the caller, chosen
// uniformly from an external list.
func ResolvePending(s *GameState, playerID string, choseToDraw bool, dare string) (*GameState, error) {
	switch {
	case s.Status == StatusFinished:
		return nil, consts.ErrorsGameFinished
	case s.Status != StatusActive:
		return nil, consts.ErrorsGameNotActive
	case s.Pending == nil:
		return nil, consts.ErrorsNoPendingAction
	case s.Pending.PlayerID != playerID:
		return nil, consts.ErrorsNotPendingActor
	}
	if !choseToDraw && dare == "" {
		return nil, consts.ErrorsDaresEmpty
	}

	next := s.Clone()
	target := next.Player(playerID)
	if choseToDraw {
		if drawn := next.drawTo(next.PlayerIndex(playerID), next.Pending.DrawCount); drawn > 0 {
			next.appendLog(msg.Message.PlayerDrewCards(target.Name, drawn))
		}
		next.Pending = nil
		// Two steps from the original actor: the drawing player is
		// skipped entirely.
		next.advance(2)
	} else {
		next.Pending = nil
		next.appendLog(msg.Message.DareAccepted(target.Name, dare))
		next.setCurrent(playerID)
		target.CurrentDare = dare
	}
	next.Version++
	return next, nil
}

// drawTo moves up to amount cards from the draw pile into the hand at
// playerIdx, rebuilding the draw pile from the discard pile when it runs
// out. Returns the number actually drawn; running short when both piles are
// exhausted is a degenerate bound, not an error.
func (s *GameState) drawTo(playerIdx, amount int) int {
	player := &s.Players[playerIdx]
	drawn := 0
	for i := 0; i < amount; i++ {
		if len(s.DrawPile) == 0 {
			if len(s.DiscardPile) <= 1 {
				break
			}
			top := s.DiscardPile[len(s.DiscardPile)-1]
			rest := append([]card.Card(nil), s.DiscardPile[:len(s.DiscardPile)-1]...)
			Shuffle(rest)
			s.DrawPile = rest
			s.DiscardPile = []card.Card{top}
			s.appendLog(msg.Message.PileReshuffled())
		}
		next := s.DrawPile[len(s.DrawPile)-1]
		s.DrawPile = s.DrawPile[:len(s.DrawPile)-1]
		player.Hand = append(player.Hand, next)
		drawn++
	}
	return drawn
}

// checkWin finishes the round when player's hand is empty. It runs after
// every hand mutation and before effect dispatch, so a winning reverse never
// flips the direction. Announces "UNO" at one card left.
func (s *GameState) checkWin(player *Player) bool {
	if len(player.Hand) == 0 {
		s.Status = StatusFinished
		s.Winner = player.Name
		s.appendLog(msg.Message.PlayerWins(player.Name))
		return true
	}
	if len(player.Hand) == 1 {
		s.appendLog(msg.Message.Uno(player.Name))
	}
	return false
}

func handIndex(hand []card.Card, target card.Card) int {
	for i, c := range hand {
		if c.Equal(target) {
			return i
		}
	}
	return -1
}
