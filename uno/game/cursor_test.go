package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func threePlayerState() *GameState {
	return &GameState{
		Players: []Player{
			{ID: "a", Name: "A"},
			{ID: "b", Name: "B"},
			{ID: "c", Name: "C"},
		},
		CurrentPlayerID: "a",
		Direction:       Clockwise,
		Status:          StatusActive,
	}
}

func TestPeek(t *testing.T) {
	s := threePlayerState()
	assert.Equal(t, 1, s.peek(1))
	assert.Equal(t, 2, s.peek(2))
	assert.Equal(t, 0, s.peek(3))

	s.Direction = CounterClockwise
	assert.Equal(t, 2, s.peek(1))
	assert.Equal(t, 1, s.peek(2))
}

func TestAdvance(t *testing.T) {
	s := threePlayerState()
	s.advance(1)
	assert.Equal(t, "b", s.CurrentPlayerID)
	s.advance(2)
	assert.Equal(t, "a", s.CurrentPlayerID)

	s.Direction = CounterClockwise
	s.advance(1)
	assert.Equal(t, "c", s.CurrentPlayerID)
}

func TestAdvanceClearsOutgoingDare(t *testing.T) {
	s := threePlayerState()
	s.Players[0].CurrentDare = "sing a song"
	s.advance(1)
	assert.Empty(t, s.Players[0].CurrentDare)
}

func TestNextPlayer(t *testing.T) {
	s := threePlayerState()
	assert.Equal(t, "B", s.NextPlayer().Name)
	s.Direction = CounterClockwise
	assert.Equal(t, "C", s.NextPlayer().Name)
}
