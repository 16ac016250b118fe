package game

import "github.com/uno-dare/server/uno/msg"

// peek returns the index of the player `steps` positions away from the
// current player, following the play direction, without moving the cursor.
func (s *GameState) peek(steps int) int {
	count := len(s.Players)
	current := s.PlayerIndex(s.CurrentPlayerID)
	if s.Direction == CounterClockwise {
		steps = -steps
	}
	return ((current+steps)%count + count) % count
}

// NextPlayer is the player who acts after the current one if no effect
// intervenes.
func (s *GameState) NextPlayer() *Player {
	return &s.Players[s.peek(1)]
}

// advance moves the cursor `steps` positions. steps=1 is a normal turn
// handover, steps=2 skips one player. The outgoing player's dare expires
// when their turn ends.
func (s *GameState) advance(steps int) {
	if outgoing := s.CurrentPlayer(); outgoing != nil {
		outgoing.CurrentDare = ""
	}
	next := &s.Players[s.peek(steps)]
	s.CurrentPlayerID = next.ID
	s.appendLog(msg.Message.PlayerTurn(next.Name))
}

// setCurrent hands the turn directly to playerID, used by the forfeit branch
// where the target becomes the current player instead of being skipped.
func (s *GameState) setCurrent(playerID string) {
	if outgoing := s.CurrentPlayer(); outgoing != nil && outgoing.ID != playerID {
		outgoing.CurrentDare = ""
	}
	s.CurrentPlayerID = playerID
	s.appendLog(msg.Message.PlayerTurn(s.Player(playerID).Name))
}
