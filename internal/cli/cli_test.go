package cli

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/dondlab/dond-go/internal/game"
)

// tinyBoard keeps interactive tests short: round one opens every box but
// the last, then the final keep/switch decision applies directly.
var tinyBoard = game.PrizeSet{1, 5, 10, 100, 1000, 10000, 100000}

func TestSessionPlaysToKeep(t *testing.T) {
	// Garbage first to exercise the reprompt loop, then enough box
	// numbers that five opens succeed no matter which box the player
	// holds; leftovers are rejected by the keep/switch prompt.
	input := "abc\n1\n2\n3\n4\n5\n6\n7\nkeep\n"

	var out bytes.Buffer
	rng := rand.New(rand.NewSource(4))
	s := NewSession(tinyBoard, rng, strings.NewReader(input), &out)

	won, err := s.Play()
	if err != nil {
		t.Fatalf("Play: %v\noutput:\n%s", err, out.String())
	}

	valid := false
	for _, v := range tinyBoard {
		if won == v {
			valid = true
		}
	}
	if !valid {
		t.Errorf("won %v, not a prize on the board", won)
	}

	text := out.String()
	if !strings.Contains(text, "Please enter a valid box number") {
		t.Error("invalid input was not reprompted")
	}
	if !strings.Contains(text, "Final Decision") {
		t.Error("game never reached the final decision")
	}
	if !strings.Contains(text, "You won:") {
		t.Error("no winnings announced")
	}
}

func TestSessionSwitchWinsOtherBox(t *testing.T) {
	input := "1\n2\n3\n4\n5\n6\n7\nswitch\n"

	var out bytes.Buffer
	rng := rand.New(rand.NewSource(8))
	s := NewSession(tinyBoard, rng, strings.NewReader(input), &out)

	won, err := s.Play()
	if err != nil {
		t.Fatalf("Play: %v\noutput:\n%s", err, out.String())
	}

	// Switching pays the final box, so the reveal must show the winnings
	// as "your box" and the abandoned box as the other one.
	text := out.String()
	if !strings.Contains(text, "Your box contained: "+FormatAmount(won)) {
		t.Errorf("winnings %v not shown as the held box\noutput:\n%s", won, text)
	}
}

func TestSessionEndsOnEOF(t *testing.T) {
	var out bytes.Buffer
	rng := rand.New(rand.NewSource(2))
	s := NewSession(tinyBoard, rng, strings.NewReader("1\n"), &out)

	if _, err := s.Play(); err == nil {
		t.Fatal("expected an error when input runs out mid-game")
	}
}
