package game

import (
	"fmt"
	"math/rand"
)

// InvalidBoxError is returned by Open and Swap when the requested box is out
// of range, already opened, or is the box the player is holding. The
// allocation is left untouched on failure.
type InvalidBoxError struct {
	Box    int
	Reason string
}

func (e *InvalidBoxError) Error() string {
	return fmt.Sprintf("box %d: %s", e.Box, e.Reason)
}

// Reasons carried by InvalidBoxError.
const (
	ReasonOutOfRange = "out of range"
	ReasonOpened     = "already opened"
	ReasonPlayerBox  = "is the player's box"
)

// Allocation assigns every prize of a PrizeSet to a distinct box and tracks
// which boxes have been opened. Box numbers run 1..N. The prize-to-box
// mapping never changes after Setup; only the opened/remaining partition and
// the player's box do.
type Allocation struct {
	prizes    PrizeSet
	boxes     map[int]float64 // box number -> prize, fixed after Setup
	playerBox int
	remaining []int           // unopened, non-player boxes
	opened    map[int]float64 // box number -> revealed prize
}

// NewAllocation shuffles the prize set onto boxes 1..len(prizes) as a uniform
// random permutation and draws the player's box uniformly. The caller owns
// the rand source; one game, one source.
func NewAllocation(prizes PrizeSet, rng *rand.Rand) *Allocation {
	n := len(prizes)
	a := &Allocation{
		prizes: prizes,
		boxes:  make(map[int]float64, n),
		opened: make(map[int]float64, n),
	}

	perm := rng.Perm(n)
	for i, p := range perm {
		a.boxes[i+1] = prizes[p]
	}

	a.playerBox = rng.Intn(n) + 1
	a.remaining = make([]int, 0, n-1)
	for box := 1; box <= n; box++ {
		if box != a.playerBox {
			a.remaining = append(a.remaining, box)
		}
	}
	return a
}

// Boxes returns the total number of boxes on the board.
func (a *Allocation) Boxes() int { return len(a.boxes) }

// PlayerBox returns the box the player is holding.
func (a *Allocation) PlayerBox() int { return a.playerBox }

// PlayerValue returns the prize inside the player's current box.
func (a *Allocation) PlayerValue() float64 { return a.boxes[a.playerBox] }

// Value returns the prize inside the given box regardless of its state.
// Callers outside tests should prefer Open; Value exists for the final
// reveal, where both boxes' contents are shown.
func (a *Allocation) Value(box int) float64 { return a.boxes[box] }

// RemainingCount returns how many unopened non-player boxes are left.
func (a *Allocation) RemainingCount() int { return len(a.remaining) }

// Remaining returns a copy of the unopened non-player box numbers.
func (a *Allocation) Remaining() []int {
	out := make([]int, len(a.remaining))
	copy(out, a.remaining)
	return out
}

// Opened returns a copy of the opened boxes and their revealed prizes.
func (a *Allocation) Opened() map[int]float64 {
	out := make(map[int]float64, len(a.opened))
	for k, v := range a.opened {
		out[k] = v
	}
	return out
}

// UnopenedValues returns the prizes still in play: every remaining box plus
// the player's own. This is the population the banker prices against.
func (a *Allocation) UnopenedValues() []float64 {
	vals := make([]float64, 0, len(a.remaining)+1)
	for _, box := range a.remaining {
		vals = append(vals, a.boxes[box])
	}
	vals = append(vals, a.boxes[a.playerBox])
	return vals
}

// Open reveals the given box, moving it from remaining to opened, and
// returns its prize. It fails with *InvalidBoxError and no state change if
// the box is out of range, already opened, or held by the player.
func (a *Allocation) Open(box int) (float64, error) {
	if box < 1 || box > len(a.boxes) {
		return 0, &InvalidBoxError{Box: box, Reason: ReasonOutOfRange}
	}
	if box == a.playerBox {
		return 0, &InvalidBoxError{Box: box, Reason: ReasonPlayerBox}
	}
	idx := a.remainingIndex(box)
	if idx < 0 {
		return 0, &InvalidBoxError{Box: box, Reason: ReasonOpened}
	}

	a.removeRemaining(idx)
	prize := a.boxes[box]
	a.opened[box] = prize
	return prize, nil
}

// OpenRandom reveals a uniformly chosen remaining box. Used by the batch
// simulator, where no human picks box numbers.
func (a *Allocation) OpenRandom(rng *rand.Rand) (box int, prize float64) {
	idx := rng.Intn(len(a.remaining))
	box = a.remaining[idx]
	a.removeRemaining(idx)
	prize = a.boxes[box]
	a.opened[box] = prize
	return box, prize
}

// Swap exchanges the player's box with the given remaining box. The old
// player box takes the candidate's slot among the remaining boxes, so the
// board stays consistent. Only meaningful in the two-box endgame, but the
// exchange itself is valid whenever the candidate is a remaining box.
func (a *Allocation) Swap(box int) error {
	idx := a.remainingIndex(box)
	if idx < 0 {
		if box < 1 || box > len(a.boxes) {
			return &InvalidBoxError{Box: box, Reason: ReasonOutOfRange}
		}
		if box == a.playerBox {
			return &InvalidBoxError{Box: box, Reason: ReasonPlayerBox}
		}
		return &InvalidBoxError{Box: box, Reason: ReasonOpened}
	}
	a.remaining[idx] = a.playerBox
	a.playerBox = box
	return nil
}

func (a *Allocation) remainingIndex(box int) int {
	for i, b := range a.remaining {
		if b == box {
			return i
		}
	}
	return -1
}

// removeRemaining deletes remaining[idx] by swapping the last element in.
// O(1) and order-free, which keeps random draws uniform.
func (a *Allocation) removeRemaining(idx int) {
	last := len(a.remaining) - 1
	a.remaining[idx] = a.remaining[last]
	a.remaining = a.remaining[:last]
}

// ExpectedValue is the arithmetic mean of every prize still in play,
// including the player's own box. Recomputed from scratch on every call so
// no rounding accumulates across rounds.
func ExpectedValue(a *Allocation) float64 {
	vals := a.UnopenedValues()
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
