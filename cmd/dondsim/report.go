package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dondlab/dond-go/internal/sim"
)

// printReport renders the aggregate report the way the show's analysts read
// it: win histogram, per-strategy breakdown, then per-round banker behavior.
func printReport(w io.Writer, r *sim.Report) {
	fmt.Fprintf(w, "\n--- Deal or No Deal Simulation Results ---\n\n")
	fmt.Fprintf(w, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(w, "Total Games Simulated: %d\n\n", r.Games)

	fmt.Fprintln(w, "Win Distribution:")
	for _, band := range sim.BandLabels() {
		count := r.WinDistribution[band]
		fmt.Fprintf(w, "  %s: %d games (%.2f%%)\n",
			band, count, float64(count)/float64(r.Games)*100)
	}

	fmt.Fprintln(w, "\nPlayer Strategy Analysis:")
	for _, strat := range sortedKeys(r.PlayerResults) {
		s := r.PlayerResults[strat]
		fmt.Fprintf(w, "\nStrategy: %s (%d games)\n", titleCase(strat), s.Games)
		fmt.Fprintf(w, "  Average Winnings: £%.2f\n", s.AverageWinnings)
		fmt.Fprintf(w, "  Median Winnings: £%.2f\n", s.MedianWinnings)
		fmt.Fprintf(w, "  Std Dev of Winnings: £%.2f\n", s.StdWinnings)
		fmt.Fprintf(w, "  Max Winnings: £%.2f\n", s.MaxWinnings)
		fmt.Fprintf(w, "  Min Winnings: £%.2f\n", s.MinWinnings)
		fmt.Fprintf(w, "  25th Percentile: £%.2f\n", s.P25Winnings)
		fmt.Fprintf(w, "  75th Percentile: £%.2f\n", s.P75Winnings)
		fmt.Fprintf(w, "  Deal Acceptance Rate: %.2f%%\n", s.DealAcceptanceRate*100)
		fmt.Fprintf(w, "  Swap Acceptance Rate: %.2f%%\n", s.SwapAcceptanceRate*100)
		fmt.Fprintf(w, "  Better Than Box Rate: %.2f%%\n", s.BetterThanBoxRate*100)
		fmt.Fprintf(w, "  Average Rounds Played: %.2f\n", s.AverageRoundsPlayed)
		fmt.Fprintf(w, "  Median Rounds Played: %.2f\n", s.MedianRoundsPlayed)
		if s.DealsAccepted > 0 {
			fmt.Fprintf(w, "  Average Offer Percentage: %.2f%%\n", s.AverageOfferPercentage*100)
		}
	}

	fmt.Fprintln(w, "\nRound Statistics:")
	for _, rs := range r.RoundStats {
		fmt.Fprintf(w, "  Round %d:\n", rs.Round)
		fmt.Fprintf(w, "    Average Offer: £%.2f\n", rs.AverageOffer)
		fmt.Fprintf(w, "    Average Offer Percentage: %.2f%%\n", rs.AverageOfferPercentage*100)
		fmt.Fprintf(w, "    Average Expected Value: £%.2f\n", rs.AverageExpectedValue)
	}
}

func sortedKeys(m map[string]sim.StrategyStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// titleCase turns a strategy id like "risk_averse" into "Risk Averse".
func titleCase(id string) string {
	words := strings.Split(id, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
