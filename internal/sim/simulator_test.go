package sim

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/dondlab/dond-go/internal/game"
)

func TestRunDistributionSumsToGames(t *testing.T) {
	s := New(Options{Games: 1000, Seed: 42})
	report, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	total := 0
	for _, count := range report.WinDistribution {
		total += count
	}
	if total != 1000 {
		t.Fatalf("band counts sum to %d, want 1000", total)
	}
	if report.Games != 1000 {
		t.Fatalf("report.Games = %d, want 1000", report.Games)
	}
	if report.RunID == "" {
		t.Error("report has no run ID")
	}
	if len(report.WinDistribution) != len(BandLabels()) {
		t.Errorf("distribution has %d bands, want %d", len(report.WinDistribution), len(BandLabels()))
	}

	// 1000 uniform draws over six agents leave every strategy represented.
	if len(report.PlayerResults) != 6 {
		t.Fatalf("expected 6 strategies, got %d", len(report.PlayerResults))
	}
	for strat, stats := range report.PlayerResults {
		if stats.Games == 0 {
			t.Errorf("strategy %s has no games", strat)
		}
	}
}

func TestRunIsReproducible(t *testing.T) {
	opts := Options{Games: 300, Seed: 7}

	first, err := New(opts).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(opts).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first.WinDistribution, second.WinDistribution) {
		t.Error("same seed produced different win distributions")
	}
	if !reflect.DeepEqual(first.PlayerResults, second.PlayerResults) {
		t.Error("same seed produced different strategy stats")
	}
	if !reflect.DeepEqual(first.RoundStats, second.RoundStats) {
		t.Error("same seed produced different round stats")
	}
}

func TestWorkerCountDoesNotChangeResults(t *testing.T) {
	sequential, err := New(Options{Games: 300, Seed: 11, Workers: 1}).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := New(Options{Games: 300, Seed: 11, Workers: 4}).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(sequential.WinDistribution, parallel.WinDistribution) {
		t.Error("worker count changed the win distribution")
	}
	if !reflect.DeepEqual(sequential.RoundStats, parallel.RoundStats) {
		t.Error("worker count changed the round stats")
	}
}

func TestRunRoundStats(t *testing.T) {
	report, err := New(Options{Games: 500, Seed: 3}).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(report.RoundStats) == 0 {
		t.Fatal("no round stats")
	}
	for i, rs := range report.RoundStats {
		if rs.Round != i+1 {
			t.Fatalf("round stats out of order: index %d holds round %d", i, rs.Round)
		}
		// Every game prices round n at the same schedule percentage, so
		// the mean can only differ by float summation noise.
		if want := game.PercentageFor(rs.Round); math.Abs(rs.AverageOfferPercentage-want) > 1e-9 {
			t.Errorf("round %d mean percentage = %v, want %v", rs.Round, rs.AverageOfferPercentage, want)
		}
		if rs.AverageExpectedValue <= 0 || rs.AverageOffer <= 0 {
			t.Errorf("round %d has non-positive aggregates: %+v", rs.Round, rs)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(Options{Games: 100000, Seed: 1}).Run(ctx); err == nil {
		t.Fatal("expected an error from a cancelled run")
	}
}
