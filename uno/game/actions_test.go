package game_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-dare/server/consts"
	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/card/color"
	"github.com/uno-dare/server/uno/game"
)

func roster(n int) []game.Player {
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	players := make([]game.Player, n)
	for i := 0; i < n; i++ {
		players[i] = game.Player{ID: names[i][:1], Name: names[i]}
	}
	return players
}

// fixture is a controlled three-player mid-round state. Alice to act, red 7
// on top.
func fixture() *game.GameState {
	return &game.GameState{
		Players: []game.Player{
			{ID: "a", Name: "Alice", Hand: []card.Card{
				card.NewNumber(color.Red, 5),
				card.NewNumber(color.Blue, 7),
				card.New(color.Red, card.Skip),
				card.New(color.Red, card.Reverse),
				card.New(color.Red, card.DrawTwo),
				card.NewWild(),
				card.NewWildDrawFour(),
			}},
			{ID: "b", Name: "Bob", Hand: []card.Card{
				card.NewNumber(color.Green, 2),
				card.NewNumber(color.Yellow, 9),
			}},
			{ID: "c", Name: "Carol", Hand: []card.Card{
				card.NewNumber(color.Blue, 1),
			}},
		},
		DrawPile: []card.Card{
			card.NewNumber(color.Green, 4),
			card.NewNumber(color.Yellow, 6),
			card.NewNumber(color.Blue, 3),
			card.NewNumber(color.Green, 8),
			card.NewNumber(color.Yellow, 1),
			card.NewNumber(color.Blue, 9),
		},
		DiscardPile:     []card.Card{card.NewNumber(color.Red, 7)},
		CurrentPlayerID: "a",
		Direction:       game.Clockwise,
		Status:          game.StatusActive,
		Version:         1,
	}
}

func TestNewRound(t *testing.T) {
	s, err := game.NewRound(roster(3))
	require.NoError(t, err)

	assert.Equal(t, game.StatusActive, s.Status)
	assert.Equal(t, game.Clockwise, s.Direction)
	assert.Equal(t, "A", s.CurrentPlayerID)
	assert.EqualValues(t, 1, s.Version)
	for _, p := range s.Players {
		assert.Len(t, p.Hand, consts.InitialHandSize)
	}

	require.Len(t, s.DiscardPile, 1)
	assert.False(t, s.DiscardPile[0].IsWild(), "a wild card may not open a round")
	assert.Len(t, s.DrawPile, consts.DeckSize-3*consts.InitialHandSize-1)
	assert.Equal(t, consts.DeckSize, s.CardCount())
}

func TestNewRoundRosterBounds(t *testing.T) {
	_, err := game.NewRound(roster(1))
	assert.Equal(t, consts.ErrorsPlayersInvalid, err)
	_, err = game.NewRound(append(roster(4), game.Player{ID: "e", Name: "Eve"}))
	assert.Equal(t, consts.ErrorsPlayersInvalid, err)
}

func TestPlayCardRejections(t *testing.T) {
	scenarios := []struct {
		description string
		mutate      func(*game.GameState)
		playerID    string
		played      card.Card
		expected    error
	}{
		{
			description: "wrong_actor",
			playerID:    "b",
			played:      card.NewNumber(color.Green, 2),
			expected:    consts.ErrorsNotYourTurn,
		},
		{
			description: "card_not_in_hand",
			playerID:    "a",
			played:      card.NewNumber(color.Red, 9),
			expected:    consts.ErrorsCardNotInHand,
		},
		{
			description: "pending_action_outstanding",
			mutate: func(s *game.GameState) {
				s.Pending = &game.PendingAction{PlayerID: "b", DrawCount: 2}
			},
			playerID: "a",
			played:   card.NewNumber(color.Red, 5),
			expected: consts.ErrorsPendingAction,
		},
		{
			description: "awaiting_color",
			mutate: func(s *game.GameState) {
				s.AwaitingColor = &game.PendingColor{PlayerID: "a", Card: card.NewWild()}
			},
			playerID: "a",
			played:   card.NewNumber(color.Red, 5),
			expected: consts.ErrorsAwaitingColor,
		},
		{
			description: "game_finished",
			mutate: func(s *game.GameState) {
				s.Status = game.StatusFinished
			},
			playerID: "a",
			played:   card.NewNumber(color.Red, 5),
			expected: consts.ErrorsGameFinished,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			s := fixture()
			if scenario.mutate != nil {
				scenario.mutate(s)
			}
			before := s.Clone()
			next, err := game.PlayCard(s, scenario.playerID, scenario.played)
			assert.Equal(t, scenario.expected, err)
			assert.Nil(t, next)
			assert.Equal(t, before, s, "rejected action must leave state unchanged")
		})
	}
}

func TestPlayCardUnplayableIsRejected(t *testing.T) {
	s := fixture()
	s.Players[0].Hand = append(s.Players[0].Hand, card.NewNumber(color.Yellow, 3))
	before := s.Clone()
	next, err := game.PlayCard(s, "a", card.NewNumber(color.Yellow, 3))
	assert.Equal(t, consts.ErrorsCardNotPlayable, err)
	assert.Nil(t, next)
	assert.Equal(t, before, s)
}

func TestPlayNumberCard(t *testing.T) {
	s := fixture()
	next, err := game.PlayCard(s, "a", card.NewNumber(color.Red, 5))
	require.NoError(t, err)

	top, _ := next.TopCard()
	assert.Equal(t, card.NewNumber(color.Red, 5), top)
	assert.Len(t, next.Players[0].Hand, 6)
	assert.Equal(t, "b", next.CurrentPlayerID)
	assert.EqualValues(t, 2, next.Version)
	assert.Equal(t, s.CardCount(), next.CardCount())
	assert.Contains(t, strings.Join(next.Log, "\n"), "Alice played a red 5.")

	// input state untouched
	assert.EqualValues(t, 1, s.Version)
	assert.Len(t, s.Players[0].Hand, 7)
}

func TestPlaySkip(t *testing.T) {
	s := fixture()
	next, err := game.PlayCard(s, "a", card.New(color.Red, card.Skip))
	require.NoError(t, err)
	assert.Equal(t, "c", next.CurrentPlayerID, "skip advances two positions")
	assert.Contains(t, strings.Join(next.Log, "\n"), "Bob was skipped!")
}

func TestPlayReverse(t *testing.T) {
	s := fixture()
	next, err := game.PlayCard(s, "a", card.New(color.Red, card.Reverse))
	require.NoError(t, err)
	assert.Equal(t, game.CounterClockwise, next.Direction)
	assert.Equal(t, "c", next.CurrentPlayerID, "reverse still consumes the normal one-step advance")
}

func TestPlayDrawTwoDefersTurn(t *testing.T) {
	s := fixture()
	next, err := game.PlayCard(s, "a", card.New(color.Red, card.DrawTwo))
	require.NoError(t, err)

	require.NotNil(t, next.Pending)
	assert.Equal(t, "b", next.Pending.PlayerID)
	assert.Equal(t, 2, next.Pending.DrawCount)
	assert.Equal(t, "a", next.CurrentPlayerID, "cursor waits on the pending resolution")
}

func TestWildColorCommitmentTwoStep(t *testing.T) {
	s := fixture()

	step1, err := game.PlayCard(s, "a", card.NewWild())
	require.NoError(t, err)
	require.NotNil(t, step1.AwaitingColor)
	assert.Equal(t, "a", step1.AwaitingColor.PlayerID)
	assert.Len(t, step1.Players[0].Hand, 6, "wild leaves the hand immediately")
	assert.Len(t, step1.DiscardPile, 1, "wild is not on the pile until its color is chosen")
	assert.Equal(t, s.CardCount(), step1.CardCount(), "the uncommitted wild still counts")

	// everything but the color choice is rejected meanwhile
	_, err = game.DrawCard(step1, "a")
	assert.Equal(t, consts.ErrorsAwaitingColor, err)
	_, err = game.ChooseColor(step1, "b", color.Green)
	assert.Equal(t, consts.ErrorsNotYourTurn, err)
	_, err = game.ChooseColor(step1, "a", color.Wild)
	assert.Equal(t, consts.ErrorsColorInvalid, err)

	step2, err := game.ChooseColor(step1, "a", color.Green)
	require.NoError(t, err)
	assert.Nil(t, step2.AwaitingColor)
	top, _ := step2.TopCard()
	assert.Equal(t, color.Green, top.ChosenColor)
	assert.Equal(t, color.Green, top.ActiveColor())
	assert.Equal(t, "b", step2.CurrentPlayerID, "plain wild carries no further effect")
}

func TestWildDrawFourDefersUntilResolved(t *testing.T) {
	s := fixture()
	step1, err := game.PlayCard(s, "a", card.NewWildDrawFour())
	require.NoError(t, err)
	step2, err := game.ChooseColor(step1, "a", color.Blue)
	require.NoError(t, err)

	require.NotNil(t, step2.Pending)
	assert.Equal(t, "b", step2.Pending.PlayerID)
	assert.Equal(t, 4, step2.Pending.DrawCount)
	assert.Equal(t, "a", step2.CurrentPlayerID, "turn does not advance until the target resolves")
}

func TestResolvePendingDraw(t *testing.T) {
	s := fixture()
	s.Pending = &game.PendingAction{PlayerID: "b", DrawCount: 4}

	_, err := game.ResolvePending(s, "a", true, "")
	assert.Equal(t, consts.ErrorsNotPendingActor, err)

	next, err := game.ResolvePending(s, "b", true, "")
	require.NoError(t, err)
	assert.Nil(t, next.Pending)
	assert.Len(t, next.Players[1].Hand, 6, "hand grows by exactly four")
	assert.Equal(t, "c", next.CurrentPlayerID, "the drawing player is skipped entirely")
	assert.Equal(t, s.CardCount(), next.CardCount())
}

func TestResolvePendingForfeit(t *testing.T) {
	s := fixture()
	s.Pending = &game.PendingAction{PlayerID: "b", DrawCount: 2}

	next, err := game.ResolvePending(s, "b", false, "sing a song")
	require.NoError(t, err)
	assert.Nil(t, next.Pending)
	assert.Len(t, next.Players[1].Hand, 2, "hand unchanged")
	assert.Equal(t, "sing a song", next.Players[1].CurrentDare)
	assert.Equal(t, "b", next.CurrentPlayerID, "the target gets a full turn instead")

	// the dare expires when the dared player's turn ends
	after, err := game.PlayCard(next, "b", card.NewNumber(color.Yellow, 9))
	require.NoError(t, err)
	assert.Empty(t, after.Players[1].CurrentDare)
}

func TestResolvePendingRequiresDareText(t *testing.T) {
	s := fixture()
	s.Pending = &game.PendingAction{PlayerID: "b", DrawCount: 2}
	_, err := game.ResolvePending(s, "b", false, "")
	assert.Equal(t, consts.ErrorsDaresEmpty, err)
}

func TestDrawCardAdvancesTurn(t *testing.T) {
	s := fixture()
	next, err := game.DrawCard(s, "a")
	require.NoError(t, err)
	assert.Len(t, next.Players[0].Hand, 8)
	assert.Len(t, next.DrawPile, 5)
	assert.Equal(t, "b", next.CurrentPlayerID)
	assert.Equal(t, s.CardCount(), next.CardCount())
}

func TestDrawReplenishesFromDiscard(t *testing.T) {
	s := fixture()
	s.DrawPile = nil
	s.DiscardPile = []card.Card{
		card.NewNumber(color.Green, 1),
		card.NewNumber(color.Green, 2),
		card.NewNumber(color.Green, 3),
		card.NewNumber(color.Green, 4),
		card.NewNumber(color.Green, 5),
		card.NewNumber(color.Red, 7), // top, stays in place
	}
	s.Pending = &game.PendingAction{PlayerID: "b", DrawCount: 4}

	next, err := game.ResolvePending(s, "b", true, "")
	require.NoError(t, err)
	assert.Len(t, next.Players[1].Hand, 6)
	require.Len(t, next.DiscardPile, 1, "discard pile truncated to its top card")
	top, _ := next.TopCard()
	assert.Equal(t, card.NewNumber(color.Red, 7), top)
	assert.Len(t, next.DrawPile, 1, "five reshuffled, four drawn")
	assert.Equal(t, s.CardCount(), next.CardCount())
}

func TestDrawStopsEarlyWhenBothPilesExhausted(t *testing.T) {
	s := fixture()
	s.DrawPile = nil
	s.DiscardPile = []card.Card{card.NewNumber(color.Red, 7)}

	next, err := game.DrawCard(s, "a")
	require.NoError(t, err, "running short is a degenerate bound, not an error")
	assert.Len(t, next.Players[0].Hand, 7, "nothing left to draw")
	assert.Equal(t, "b", next.CurrentPlayerID)
}

func TestWinCheckPrecedesEffect(t *testing.T) {
	s := fixture()
	s.Players[0].Hand = []card.Card{card.New(color.Red, card.Reverse)}

	next, err := game.PlayCard(s, "a", card.New(color.Red, card.Reverse))
	require.NoError(t, err)
	assert.Equal(t, game.StatusFinished, next.Status)
	assert.Equal(t, "Alice", next.Winner)
	assert.Equal(t, game.Clockwise, next.Direction, "direction never flips on a winning reverse")
}

func TestWinOnWildCommit(t *testing.T) {
	s := fixture()
	s.Players[0].Hand = []card.Card{card.NewWildDrawFour()}

	step1, err := game.PlayCard(s, "a", card.NewWildDrawFour())
	require.NoError(t, err)
	assert.NotEqual(t, game.StatusFinished, step1.Status, "round cannot finish while the color is uncommitted")

	step2, err := game.ChooseColor(step1, "a", color.Red)
	require.NoError(t, err)
	assert.Equal(t, game.StatusFinished, step2.Status)
	assert.Equal(t, "Alice", step2.Winner)
	assert.Nil(t, step2.Pending, "no draw is forced once the round is over")
}

func TestUnoAnnouncement(t *testing.T) {
	s := fixture()
	next, err := game.PlayCard(s, "b", card.NewNumber(color.Green, 2))
	require.Error(t, err) // not Bob's turn

	s.CurrentPlayerID = "b"
	next, err = game.PlayCard(s, "b", card.NewNumber(color.Yellow, 9))
	require.Error(t, err) // yellow 9 does not match red 7

	s.Players[1].Hand[1] = card.NewNumber(color.Red, 9)
	next, err = game.PlayCard(s, "b", card.NewNumber(color.Red, 9))
	require.NoError(t, err)
	assert.Contains(t, strings.Join(next.Log, "\n"), "UNO! Bob has one card left!")
}

func TestCardConservationAcrossRound(t *testing.T) {
	s, err := game.NewRound(roster(4))
	require.NoError(t, err)
	total := s.CardCount()

	for i := 0; i < 8 && s.Status == game.StatusActive; i++ {
		next, err := game.DrawCard(s, s.CurrentPlayerID)
		require.NoError(t, err)
		require.Equal(t, total, next.CardCount())
		s = next
	}
}
