package game

import (
	"math/rand"

	"github.com/uno-dare/server/uno/card"
	"github.com/uno-dare/server/uno/card/color"
)

// NewDeck returns the canonical 108-card multiset in a deterministic order:
// per color one 0, two of each 1..9, two skips, two reverses, two draw-twos,
// plus four wilds and four wild-draw-fours.
func NewDeck() []card.Card {
	cards := make([]card.Card, 0, 108)
	for _, c := range color.Canonical {
		cards = append(cards, createColorCards(c)...)
	}
	cards = append(cards, createWildCards()...)
	return cards
}

func createColorCards(c color.Color) []card.Card {
	cards := []card.Card{
		card.NewNumber(c, 0),
		card.New(c, card.Skip), card.New(c, card.Skip),
		card.New(c, card.Reverse), card.New(c, card.Reverse),
		card.New(c, card.DrawTwo), card.New(c, card.DrawTwo),
	}
	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumber(c, number)
		cards = append(cards, numberCard, numberCard)
	}
	return cards
}

func createWildCards() []card.Card {
	return []card.Card{
		card.NewWild(), card.NewWild(), card.NewWild(), card.NewWild(),
		card.NewWildDrawFour(), card.NewWildDrawFour(), card.NewWildDrawFour(), card.NewWildDrawFour(),
	}
}

// Shuffle permutes cards in place. It is reused on arbitrary subsequences
// when the draw pile is rebuilt from the discard pile.
func Shuffle(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
