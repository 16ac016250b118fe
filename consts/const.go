package consts

import "time"

const (
	MinPlayers = 2
	MaxPlayers = 4

	InitialHandSize = 7
	DeckSize        = 108

	// DealRetryLimit bounds the re-shuffle loop when the post-deal remainder
	// contains no non-wild card to seed the discard pile.
	DealRetryLimit = 8

	DefaultAdvisorTimeout = 15 * time.Second
)

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsGameNotActive    = NewErr(100, "Game is not active. ")
	ErrorsGameFinished     = NewErr(101, "Game is already finished. ")
	ErrorsNotYourTurn      = NewErr(102, "Not your turn. ")
	ErrorsPendingAction    = NewErr(103, "A draw-or-dare choice is outstanding. ")
	ErrorsNotPendingActor  = NewErr(104, "Only the targeted player may resolve the pending action. ")
	ErrorsNoPendingAction  = NewErr(105, "No pending action to resolve. ")
	ErrorsAwaitingColor    = NewErr(106, "A wild card is awaiting its color. ")
	ErrorsNotAwaitingColor = NewErr(107, "No wild card is awaiting a color. ")
	ErrorsCardNotInHand    = NewErr(108, "Card is not in your hand. ")
	ErrorsCardNotPlayable  = NewErr(109, "Card does not match the top card. ")
	ErrorsColorInvalid     = NewErr(110, "Color invalid. ")
	ErrorsPlayersInvalid   = NewErr(111, "Game needs 2 to 4 players. ")
	ErrorsDealFailed       = NewErr(112, "Deal failed, no non-wild card to start the discard pile. ")
	ErrorsStaleVersion     = NewErr(113, "State moved on, re-read and retry. ")
	ErrorsGameNotFound     = NewErr(114, "Game not found. ")
	ErrorsInputInvalid     = NewErr(115, "Input invalid. ")
	ErrorsDaresEmpty       = NewErr(116, "Dare list is empty. ")
)
