package sim

import (
	"testing"

	"github.com/dondlab/dond-go/internal/game"
)

func record(strat string, o game.Outcome) GameRecord {
	return GameRecord{Agent: strat, Strategy: strat, Outcome: &o}
}

func TestBandLabel(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0.01, "£0-£1,000"},
		{1000, "£0-£1,000"},
		{1000.01, "£1,001-£10,000"},
		{10000, "£1,001-£10,000"},
		{50000, "£10,001-£50,000"},
		{100000, "£50,001-£100,000"},
		{100001, "£100,001+"},
		{250000, "£100,001+"},
	}

	for _, tt := range tests {
		if got := bandLabel(tt.amount); got != tt.want {
			t.Errorf("bandLabel(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAggregateStrategyStats(t *testing.T) {
	records := []GameRecord{
		record("mixed", game.Outcome{
			Result:          game.ResultAcceptedDeal,
			AmountWon:       100,
			BoxValue:        50,
			OfferPercentage: 0.45,
			Rounds:          make([]game.RoundResult, 2),
		}),
		record("mixed", game.Outcome{
			Result:    game.ResultPlayedToEnd,
			AmountWon: 10,
			BoxValue:  10,
			Rounds:    make([]game.RoundResult, 7),
		}),
	}

	report := Aggregate(records)
	s, ok := report.PlayerResults["mixed"]
	if !ok {
		t.Fatal("strategy missing from report")
	}

	if s.Games != 2 {
		t.Errorf("games = %d, want 2", s.Games)
	}
	if s.AverageWinnings != 55 {
		t.Errorf("mean = %v, want 55", s.AverageWinnings)
	}
	if s.MedianWinnings != 55 {
		t.Errorf("median = %v, want 55", s.MedianWinnings)
	}
	if s.MinWinnings != 10 || s.MaxWinnings != 100 {
		t.Errorf("min/max = %v/%v, want 10/100", s.MinWinnings, s.MaxWinnings)
	}
	if s.DealAcceptanceRate != 0.5 {
		t.Errorf("deal rate = %v, want 0.5", s.DealAcceptanceRate)
	}
	// Winning the deal beat the box; playing to the end only matched it.
	if s.BetterThanBoxRate != 0.5 {
		t.Errorf("better-than-box rate = %v, want 0.5", s.BetterThanBoxRate)
	}
	// 2 rounds for the deal, 7 + the final reveal for the full game.
	if s.AverageRoundsPlayed != 5 {
		t.Errorf("average rounds = %v, want 5", s.AverageRoundsPlayed)
	}
	if s.AverageOfferPercentage != 0.45 {
		t.Errorf("accepted-offer percentage = %v, want 0.45", s.AverageOfferPercentage)
	}
}

func TestAggregateSwapRateZeroWhenNeverOffered(t *testing.T) {
	records := []GameRecord{
		record("cautious", game.Outcome{Result: game.ResultPlayedToEnd, AmountWon: 5, BoxValue: 5}),
		record("cautious", game.Outcome{Result: game.ResultPlayedToEnd, AmountWon: 9, BoxValue: 9}),
	}

	s := Aggregate(records).PlayerResults["cautious"]
	if s.SwapAcceptanceRate != 0 {
		t.Errorf("swap rate = %v, want exactly 0 when no swap was offered", s.SwapAcceptanceRate)
	}
}

func TestAggregateSwapRate(t *testing.T) {
	records := []GameRecord{
		record("swappy", game.Outcome{Result: game.ResultPlayedToEnd, SwapOffered: true, SwapAccepted: true}),
		record("swappy", game.Outcome{Result: game.ResultPlayedToEnd, SwapOffered: true}),
		record("swappy", game.Outcome{Result: game.ResultPlayedToEnd}),
	}

	s := Aggregate(records).PlayerResults["swappy"]
	if s.SwapAcceptanceRate != 0.5 {
		t.Errorf("swap rate = %v, want 0.5 (1 accepted of 2 offered)", s.SwapAcceptanceRate)
	}
}

func TestAggregateSingleGameHasZeroStd(t *testing.T) {
	records := []GameRecord{
		record("solo", game.Outcome{Result: game.ResultPlayedToEnd, AmountWon: 42, BoxValue: 42}),
	}

	s := Aggregate(records).PlayerResults["solo"]
	if s.StdWinnings != 0 {
		t.Errorf("std of a single game = %v, want 0", s.StdWinnings)
	}
	if s.AverageWinnings != 42 || s.MedianWinnings != 42 {
		t.Errorf("mean/median = %v/%v, want 42/42", s.AverageWinnings, s.MedianWinnings)
	}
}

func TestAggregateRoundStats(t *testing.T) {
	records := []GameRecord{
		record("x", game.Outcome{Result: game.ResultPlayedToEnd, Rounds: []game.RoundResult{
			{Round: 1, Offer: 10, OfferPercentage: 0.37, ExpectedValue: 30},
			{Round: 2, Offer: 20, OfferPercentage: 0.45, ExpectedValue: 40},
		}}),
		record("x", game.Outcome{Result: game.ResultAcceptedDeal, Rounds: []game.RoundResult{
			{Round: 1, Offer: 30, OfferPercentage: 0.37, ExpectedValue: 50},
		}}),
	}

	rs := Aggregate(records).RoundStats
	if len(rs) != 2 {
		t.Fatalf("expected 2 round aggregates, got %d", len(rs))
	}
	if rs[0].Round != 1 || rs[1].Round != 2 {
		t.Fatalf("rounds out of order: %+v", rs)
	}
	if rs[0].AverageOffer != 20 || rs[0].AverageExpectedValue != 40 {
		t.Errorf("round 1 aggregates = %+v", rs[0])
	}
	if rs[0].Games != 2 || rs[1].Games != 1 {
		t.Errorf("round game counts = %d/%d, want 2/1", rs[0].Games, rs[1].Games)
	}
}
