package room

import (
	"bufio"
	"os"
	"strings"

	"github.com/uno-dare/server/consts"
)

// DefaultDares is used when no external list is supplied. A forfeit picks
// one uniformly at random.
var DefaultDares = []string{
	"Speak in rhymes until your next turn.",
	"Do ten jumping jacks.",
	"Sing the chorus of the last song you listened to.",
	"Talk in a robot voice for the next two rounds.",
	"Compliment every other player sincerely.",
	"Tell an embarrassing story about yourself.",
	"Hold your cards upside down for the rest of the round.",
	"Narrate your next turn like a sports commentator.",
	"Invent a dramatic backstory for your hand of cards.",
	"Say 'according to my calculations' before everything you say this round.",
}

// LoadDares reads one dare per line; blank lines and '#' comments are
// skipped.
func LoadDares(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dares []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dares = append(dares, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(dares) == 0 {
		return nil, consts.ErrorsDaresEmpty
	}
	return dares, nil
}
