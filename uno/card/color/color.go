package color

import (
	"fmt"

	"github.com/fatih/color"
)

// Color is the serializable color tag carried by every card. Wild is the
// tag of an uncommitted wild card, never a legal chosen color.
type Color string

const (
	None   Color = ""
	Red    Color = "red"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Wild   Color = "wild"
)

// Canonical is the tie-break order used by the deterministic color-choice
// policy for automated players.
var Canonical = []Color{Red, Yellow, Green, Blue}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
}

// Paint renders text in this color's terminal color, suffixed with the
// color name, for console observers.
func (c Color) Paint(text string) string {
	painter := painters[c]
	if painter == nil {
		return text
	}
	return painter(text) + fmt.Sprintf("(%s)", string(c))
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

func (c Color) String() string {
	return string(c)
}

// Chooseable reports whether c is a color a wild card may commit to.
func (c Color) Chooseable() bool {
	for _, candidate := range Canonical {
		if c == candidate {
			return true
		}
	}
	return false
}

func ByName(name string) (Color, error) {
	c := Color(name)
	if !c.Chooseable() && c != Wild {
		return None, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}
