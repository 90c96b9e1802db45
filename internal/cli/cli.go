// Package cli implements the interactive single-game front end. It drives
// the engine's primitives directly: the player picks which boxes to open,
// answers the banker, and chooses keep or switch at the end. All invalid
// input is reprompted; nothing here can crash the game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/dondlab/dond-go/internal/game"
)

// Session is one interactive play-through bound to an input and output
// stream.
type Session struct {
	alloc  *game.Allocation
	banker *game.Banker
	in     *bufio.Scanner
	out    io.Writer
}

// NewSession deals a board and binds the prompt loop to the given streams.
func NewSession(prizes game.PrizeSet, rng *rand.Rand, in io.Reader, out io.Writer) *Session {
	return &Session{
		alloc:  game.NewAllocation(prizes, rng),
		banker: game.NewBanker(),
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Play runs the whole game: the opening round of five boxes, three-box
// rounds until two boxes remain, then the keep/switch decision. It returns
// the amount won, or an error only when input ends early.
func (s *Session) Play() (float64, error) {
	fmt.Fprintln(s.out, "Welcome to Deal or No Deal!")
	fmt.Fprintf(s.out, "\nYou have been assigned box number %d\n", s.alloc.PlayerBox())

	fmt.Fprintln(s.out, "\n=== First Round ===")
	won, done, err := s.playRound(1)
	if err != nil || done {
		return won, err
	}

	round := 2
	for s.alloc.RemainingCount() > 1 {
		fmt.Fprintf(s.out, "\n=== Round %d ===\n", round)
		won, done, err = s.playRound(round)
		if err != nil || done {
			return won, err
		}
		round++
	}

	return s.finalDecision()
}

// playRound opens this round's boxes at the player's direction, then puts
// the banker's offer to them while more than one box remains against
// theirs. done reports an accepted deal.
func (s *Session) playRound(round int) (won float64, done bool, err error) {
	toOpen := game.BoxesToOpen(round, s.alloc.RemainingCount())
	fmt.Fprintf(s.out, "Open %d boxes\n", toOpen)

	for i := 0; i < toOpen; i++ {
		s.showRemainingPrizes()
		fmt.Fprintf(s.out, "\nRemaining box numbers: %s\n", formatBoxList(s.alloc.Remaining()))

		prize, err := s.promptOpenBox()
		if err != nil {
			return 0, false, err
		}
		fmt.Fprintf(s.out, "Box contains: %s\n", FormatAmount(prize))
	}

	if s.alloc.RemainingCount() <= 1 {
		return 0, false, nil
	}

	ev := game.ExpectedValue(s.alloc)
	offer, _ := s.banker.CalculateOffer(ev)
	fmt.Fprintf(s.out, "\nThe banker offers: %s\n", FormatAmount(offer))

	deal, err := s.promptDeal()
	if err != nil {
		return 0, false, err
	}
	if deal {
		fmt.Fprintf(s.out, "\nCongratulations! You won %s\n", FormatAmount(offer))
		fmt.Fprintf(s.out, "Your box contained: %s\n", FormatAmount(s.alloc.PlayerValue()))
		return offer, true, nil
	}
	return 0, false, nil
}

// finalDecision handles the two-box endgame: keep or switch, then reveal.
func (s *Session) finalDecision() (float64, error) {
	lastBox := s.alloc.Remaining()[0]
	fmt.Fprintln(s.out, "\n=== Final Decision ===")
	fmt.Fprintln(s.out, "There are two boxes remaining:")
	fmt.Fprintf(s.out, "Your box (Box %d)\n", s.alloc.PlayerBox())
	fmt.Fprintf(s.out, "The final box (Box %d)\n", lastBox)

	switched, err := s.promptKeepOrSwitch()
	if err != nil {
		return 0, err
	}
	if switched {
		if err := s.alloc.Swap(lastBox); err != nil {
			return 0, err
		}
	}

	won := s.alloc.PlayerValue()
	other := s.alloc.Value(s.alloc.Remaining()[0])

	fmt.Fprintln(s.out, "\nFinal Results:")
	fmt.Fprintf(s.out, "Your box contained: %s\n", FormatAmount(won))
	fmt.Fprintf(s.out, "The other box contained: %s\n", FormatAmount(other))
	fmt.Fprintf(s.out, "\nYou won: %s\n", FormatAmount(won))
	return won, nil
}

func (s *Session) showRemainingPrizes() {
	vals := s.alloc.UnopenedValues()
	sort.Float64s(vals)
	fmt.Fprintln(s.out, "\nRemaining prizes:")
	for _, v := range vals {
		fmt.Fprintln(s.out, FormatAmount(v))
	}
}

// promptOpenBox loops until the player names a box that can be opened.
func (s *Session) promptOpenBox() (float64, error) {
	for {
		line, err := s.readLine("\nWhich box would you like to open? ")
		if err != nil {
			return 0, err
		}
		box, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid box number")
			continue
		}
		prize, err := s.alloc.Open(box)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		return prize, nil
	}
}

// promptDeal loops until the player answers D or N.
func (s *Session) promptDeal() (bool, error) {
	for {
		line, err := s.readLine("Deal or No Deal? (D/N): ")
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "D":
			return true, nil
		case "N":
			return false, nil
		}
		fmt.Fprintln(s.out, "Please enter 'D' for Deal or 'N' for No Deal")
	}
}

// promptKeepOrSwitch loops until the player answers keep or switch.
func (s *Session) promptKeepOrSwitch() (bool, error) {
	for {
		line, err := s.readLine("\nDo you want to keep your box or switch? (keep/switch): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "keep":
			return false, nil
		case "switch":
			return true, nil
		}
		fmt.Fprintln(s.out, "Please enter 'keep' or 'switch'")
	}
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}
