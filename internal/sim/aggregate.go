package sim

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/dondlab/dond-go/internal/game"
)

// winBands are the fixed histogram bands for amounts won, in ascending
// order; an amount falls into the first band whose upper bound it does not
// exceed.
var winBands = []struct {
	Label string
	Max   float64
}{
	{"£0-£1,000", 1000},
	{"£1,001-£10,000", 10000},
	{"£10,001-£50,000", 50000},
	{"£50,001-£100,000", 100000},
	{"£100,001+", math.Inf(1)},
}

// BandLabels returns the histogram band labels in display order.
func BandLabels() []string {
	labels := make([]string, len(winBands))
	for i, b := range winBands {
		labels[i] = b.Label
	}
	return labels
}

func bandLabel(amount float64) string {
	for _, b := range winBands {
		if amount <= b.Max {
			return b.Label
		}
	}
	return winBands[len(winBands)-1].Label
}

// StrategyStats summarises every game one strategy played.
//
// Quartiles come from montanaflynn/stats.Quartile, which takes the median of
// the lower and upper halves of the sorted data. Standard deviation is the
// sample deviation, 0 for a single game.
type StrategyStats struct {
	Games                  int     `json:"games"`
	AverageWinnings        float64 `json:"average_winnings"`
	MedianWinnings         float64 `json:"median_winnings"`
	StdWinnings            float64 `json:"std_winnings"`
	MinWinnings            float64 `json:"min_winnings"`
	MaxWinnings            float64 `json:"max_winnings"`
	P25Winnings            float64 `json:"p25_winnings"`
	P75Winnings            float64 `json:"p75_winnings"`
	DealAcceptanceRate     float64 `json:"deal_acceptance_rate"`
	SwapAcceptanceRate     float64 `json:"swap_acceptance_rate"`
	BetterThanBoxRate      float64 `json:"better_than_box_rate"`
	AverageRoundsPlayed    float64 `json:"average_rounds_played"`
	MedianRoundsPlayed     float64 `json:"median_rounds_played"`
	DealsAccepted          int     `json:"deals_accepted"`
	AverageOfferPercentage float64 `json:"average_offer_percentage,omitempty"`
}

// RoundAggregate averages the banker's behavior at one round index across
// every game that reached it.
type RoundAggregate struct {
	Round                  int     `json:"round"`
	Games                  int     `json:"games"`
	AverageOffer           float64 `json:"average_offer"`
	AverageOfferPercentage float64 `json:"average_offer_percentage"`
	AverageExpectedValue   float64 `json:"average_expected_value"`
}

// Report is the full aggregate output of one simulation batch.
type Report struct {
	RunID           string                   `json:"run_id"`
	Games           int                      `json:"games"`
	WinDistribution map[string]int           `json:"win_distribution"`
	PlayerResults   map[string]StrategyStats `json:"player_results"`
	RoundStats      []RoundAggregate         `json:"round_stats"`
}

// Aggregate reduces a batch of game records to a report. It assumes at
// least one record; an empty batch is a caller bug.
func Aggregate(records []GameRecord) *Report {
	dist := make(map[string]int, len(winBands))
	for _, b := range winBands {
		dist[b.Label] = 0
	}

	byStrategy := make(map[string][]GameRecord)
	rounds := make(map[int]*roundAccum)

	for _, rec := range records {
		dist[bandLabel(rec.Outcome.AmountWon)]++
		byStrategy[rec.Strategy] = append(byStrategy[rec.Strategy], rec)

		for _, rr := range rec.Outcome.Rounds {
			acc := rounds[rr.Round]
			if acc == nil {
				acc = &roundAccum{}
				rounds[rr.Round] = acc
			}
			acc.add(rr)
		}
	}

	results := make(map[string]StrategyStats, len(byStrategy))
	for strat, recs := range byStrategy {
		results[strat] = strategyStats(recs)
	}

	return &Report{
		RunID:           uuid.NewString(),
		Games:           len(records),
		WinDistribution: dist,
		PlayerResults:   results,
		RoundStats:      roundAggregates(rounds),
	}
}

func strategyStats(recs []GameRecord) StrategyStats {
	amounts := make([]float64, 0, len(recs))
	roundsPlayed := make([]float64, 0, len(recs))
	acceptedPcts := make([]float64, 0, len(recs))

	var deals, swapsOffered, swapsAccepted, betterThanBox int

	for _, rec := range recs {
		o := rec.Outcome
		amounts = append(amounts, o.AmountWon)

		// Playing to the end costs one more round than the trace records:
		// the reveal itself.
		played := float64(len(o.Rounds))
		if o.Result == game.ResultPlayedToEnd {
			played++
		}
		roundsPlayed = append(roundsPlayed, played)

		if o.Result == game.ResultAcceptedDeal {
			deals++
			acceptedPcts = append(acceptedPcts, o.OfferPercentage)
		}
		if o.SwapOffered {
			swapsOffered++
		}
		if o.SwapAccepted {
			swapsAccepted++
		}
		if o.AmountWon > o.BoxValue {
			betterThanBox++
		}
	}

	n := float64(len(recs))
	st := StrategyStats{
		Games:               len(recs),
		AverageWinnings:     mean(amounts),
		MedianWinnings:      median(amounts),
		StdWinnings:         sampleStd(amounts),
		MinWinnings:         minOf(amounts),
		MaxWinnings:         maxOf(amounts),
		DealAcceptanceRate:  float64(deals) / n,
		BetterThanBoxRate:   float64(betterThanBox) / n,
		AverageRoundsPlayed: mean(roundsPlayed),
		MedianRoundsPlayed:  median(roundsPlayed),
		DealsAccepted:       deals,
	}

	if q, err := stats.Quartile(amounts); err == nil {
		st.P25Winnings = q.Q1
		st.P75Winnings = q.Q3
	} else {
		st.P25Winnings = st.MedianWinnings
		st.P75Winnings = st.MedianWinnings
	}

	// Exactly 0 when no swap was ever offered, never NaN.
	if swapsOffered > 0 {
		st.SwapAcceptanceRate = float64(swapsAccepted) / float64(swapsOffered)
	}
	if deals > 0 {
		st.AverageOfferPercentage = mean(acceptedPcts)
	}
	return st
}

type roundAccum struct {
	games    int
	offerSum float64
	pctSum   float64
	evSum    float64
}

func (r *roundAccum) add(rr game.RoundResult) {
	r.games++
	r.offerSum += rr.Offer
	r.pctSum += rr.OfferPercentage
	r.evSum += rr.ExpectedValue
}

func roundAggregates(rounds map[int]*roundAccum) []RoundAggregate {
	out := make([]RoundAggregate, 0, len(rounds))
	for round, acc := range rounds {
		n := float64(acc.games)
		out = append(out, RoundAggregate{
			Round:                  round,
			Games:                  acc.games,
			AverageOffer:           acc.offerSum / n,
			AverageOfferPercentage: acc.pctSum / n,
			AverageExpectedValue:   acc.evSum / n,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Round < out[j].Round })
	return out
}

func mean(xs []float64) float64 {
	v, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return v
}

func median(xs []float64) float64 {
	v, err := stats.Median(xs)
	if err != nil {
		return 0
	}
	return v
}

func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	v, err := stats.StandardDeviationSample(xs)
	if err != nil {
		return 0
	}
	return v
}

func minOf(xs []float64) float64 {
	v, err := stats.Min(xs)
	if err != nil {
		return 0
	}
	return v
}

func maxOf(xs []float64) float64 {
	v, err := stats.Max(xs)
	if err != nil {
		return 0
	}
	return v
}
