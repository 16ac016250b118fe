package card

import (
	"fmt"
	"strconv"

	"github.com/uno-dare/server/uno/card/color"
)

// Value is a card face: "0".."9" or one of the action values below.
type Value string

const (
	Skip         Value = "skip"
	Reverse      Value = "reverse"
	DrawTwo      Value = "draw2"
	Wild         Value = "wild"
	WildDrawFour Value = "wildDraw4"
)

// NumberValue returns the face value for a digit 0..9.
func NumberValue(n int) Value {
	return Value(strconv.Itoa(n))
}

func (v Value) IsNumber() bool {
	n, err := strconv.Atoi(string(v))
	return err == nil && n >= 0 && n <= 9
}

// Card is value-equal by (Color, Value). ChosenColor is set exactly once,
// when a wild card is committed to the discard pile.
type Card struct {
	Color       color.Color `json:"color"`
	Value       Value       `json:"value"`
	ChosenColor color.Color `json:"chosenColor,omitempty"`
}

func New(c color.Color, v Value) Card {
	return Card{Color: c, Value: v}
}

func NewNumber(c color.Color, n int) Card {
	return Card{Color: c, Value: NumberValue(n)}
}

func NewWild() Card {
	return Card{Color: color.Wild, Value: Wild}
}

func NewWildDrawFour() Card {
	return Card{Color: color.Wild, Value: WildDrawFour}
}

func (c Card) IsWild() bool {
	return c.Color == color.Wild
}

// ActiveColor is the color legality is matched against: the chosen color
// once a wild has been committed, the printed color otherwise.
func (c Card) ActiveColor() color.Color {
	if c.IsWild() {
		return c.ChosenColor
	}
	return c.Color
}

func (c Card) Equal(other Card) bool {
	return c.Color == other.Color && c.Value == other.Value
}

// WithChosenColor returns the committed form of a wild card.
func (c Card) WithChosenColor(chosen color.Color) Card {
	c.ChosenColor = chosen
	return c
}

func (c Card) String() string {
	if c.IsWild() {
		if c.ChosenColor != color.None {
			return fmt.Sprintf("%s %s", c.ChosenColor, c.Value)
		}
		return string(c.Value)
	}
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}

// Pretty renders the card with terminal colors for console observers.
func (c Card) Pretty() string {
	switch c.Value {
	case Skip:
		return c.ActiveColor().Paint("(/)")
	case Reverse:
		return c.ActiveColor().Paint("<=>")
	case DrawTwo:
		return c.ActiveColor().Paint("+2!")
	case Wild:
		if c.ChosenColor != color.None {
			return c.ChosenColor.Paint("(*)")
		}
		return color.Wild.Paint("(*)")
	case WildDrawFour:
		if c.ChosenColor != color.None {
			return c.ChosenColor.Paint("+4!")
		}
		return color.Wild.Paint("+4!")
	default:
		return c.Color.Paintf("[%s]", c.Value)
	}
}
