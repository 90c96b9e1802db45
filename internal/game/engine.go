package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// SwapOfferProbability is the chance the banker offers a box swap once the
// final offer has been rejected in a simulated game. Interactive play never
// rolls this; the human always gets a keep/switch choice.
const SwapOfferProbability = 0.4

// FirstRoundOpens is how many boxes the opening round reveals. Later rounds
// reveal up to LaterRoundOpens, capped so one box always stays on the board
// against the player's.
const (
	FirstRoundOpens = 5
	LaterRoundOpens = 3
)

// Result kinds recorded on an Outcome.
const (
	ResultAcceptedDeal = "accepted_deal"
	ResultPlayedToEnd  = "played_to_end"
)

// Player decides whether to take the banker's offer and whether to swap
// boxes in the endgame. offers contains every offer made so far, the current
// one last.
type Player interface {
	EvaluateOffer(offer, expectedValue float64, offers []float64) bool
	AcceptSwap(rng *rand.Rand) bool
}

// RoundResult is one entry of a game's per-round trace.
type RoundResult struct {
	Round           int       `json:"round"`
	ExpectedValue   float64   `json:"expected_value"`
	Offer           float64   `json:"offer"`
	OfferPercentage float64   `json:"offer_percentage"`
	RemainingBoxes  int       `json:"remaining_boxes"`
	OpenedValues    []float64 `json:"opened_values"`
	SwapOffered     bool      `json:"swap_offered,omitempty"`
	SwapAccepted    bool      `json:"swap_accepted,omitempty"`
}

// Outcome is the terminal record of one game. BoxValue is the prize in the
// player's box at termination; for an accepted deal that is the box they
// never opened, never the amount won.
type Outcome struct {
	ID              string        `json:"id"`
	Result          string        `json:"result"`
	AmountWon       float64       `json:"amount_won"`
	BoxValue        float64       `json:"box_value"`
	Round           int           `json:"round"`
	ExpectedValue   float64       `json:"expected_value"`
	OfferPercentage float64       `json:"offer_percentage"`
	SwapOffered     bool          `json:"swap_offered"`
	SwapAccepted    bool          `json:"swap_accepted"`
	Rounds          []RoundResult `json:"rounds"`
}

// Game wires one allocation, one banker, and one random source together for
// a single play-through. Nothing is shared between games.
type Game struct {
	Alloc  *Allocation
	Banker *Banker

	rng    *rand.Rand
	offers []float64
}

// New deals a fresh board from the prize set. The rand source is owned by
// this game for the rest of its life.
func New(prizes PrizeSet, rng *rand.Rand) *Game {
	return &Game{
		Alloc:  NewAllocation(prizes, rng),
		Banker: NewBanker(),
		rng:    rng,
	}
}

// BoxesToOpen returns how many boxes the given 1-based round reveals given
// the current remaining count: 5 in round one, then up to 3, never leaving
// the board empty before the endgame.
func BoxesToOpen(round, remaining int) int {
	limit := LaterRoundOpens
	if round == 1 {
		limit = FirstRoundOpens
	}
	if n := remaining - 1; n < limit {
		return n
	}
	return limit
}

// Run plays a full simulated game against the given player and returns its
// outcome. Boxes are opened uniformly at random; the player only decides
// deal/no-deal and, if the chance arises, the endgame swap.
func (g *Game) Run(p Player) *Outcome {
	var trace []RoundResult
	round := 0

	for g.Alloc.RemainingCount() > 1 {
		round++
		toOpen := BoxesToOpen(round, g.Alloc.RemainingCount())
		opened := make([]float64, 0, toOpen)
		for i := 0; i < toOpen; i++ {
			_, prize := g.Alloc.OpenRandom(g.rng)
			opened = append(opened, prize)
		}

		ev := ExpectedValue(g.Alloc)
		offer, pct := g.Banker.CalculateOffer(ev)
		g.offers = append(g.offers, offer)
		trace = append(trace, RoundResult{
			Round:           round,
			ExpectedValue:   ev,
			Offer:           offer,
			OfferPercentage: pct,
			RemainingBoxes:  g.Alloc.RemainingCount(),
			OpenedValues:    opened,
		})

		if p.EvaluateOffer(offer, ev, g.offers) {
			return g.acceptedOutcome(offer, round, ev, pct, trace)
		}
	}

	// Two boxes left: one final offer with nothing to open.
	round++
	ev := ExpectedValue(g.Alloc)
	offer, pct := g.Banker.CalculateOffer(ev)
	g.offers = append(g.offers, offer)
	trace = append(trace, RoundResult{
		Round:           round,
		ExpectedValue:   ev,
		Offer:           offer,
		OfferPercentage: pct,
		RemainingBoxes:  g.Alloc.RemainingCount(),
		OpenedValues:    []float64{},
	})

	if p.EvaluateOffer(offer, ev, g.offers) {
		return g.acceptedOutcome(offer, round, ev, pct, trace)
	}

	swapOffered := g.rng.Float64() < SwapOfferProbability
	swapAccepted := false
	if swapOffered {
		swapAccepted = p.AcceptSwap(g.rng)
		if swapAccepted {
			g.Alloc.Swap(g.Alloc.Remaining()[0])
		}
	}
	trace[len(trace)-1].SwapOffered = swapOffered
	trace[len(trace)-1].SwapAccepted = swapAccepted

	return &Outcome{
		ID:              uuid.NewString(),
		Result:          ResultPlayedToEnd,
		AmountWon:       g.Alloc.PlayerValue(),
		BoxValue:        g.Alloc.PlayerValue(),
		Round:           round,
		ExpectedValue:   ev,
		OfferPercentage: pct,
		SwapOffered:     swapOffered,
		SwapAccepted:    swapAccepted,
		Rounds:          trace,
	}
}

func (g *Game) acceptedOutcome(offer float64, round int, ev, pct float64, trace []RoundResult) *Outcome {
	return &Outcome{
		ID:              uuid.NewString(),
		Result:          ResultAcceptedDeal,
		AmountWon:       offer,
		BoxValue:        g.Alloc.PlayerValue(),
		Round:           round,
		ExpectedValue:   ev,
		OfferPercentage: pct,
		Rounds:          trace,
	}
}
