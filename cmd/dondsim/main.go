package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/dondlab/dond-go/internal/config"
	"github.com/dondlab/dond-go/internal/sim"
	"github.com/dondlab/dond-go/internal/strategy"
)

func main() {
	logger := log.New(os.Stderr, "[dondsim] ", log.LstdFlags)

	if err := godotenv.Load(); err == nil {
		logger.Println("loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	agents := []sim.Agent{
		strategy.NewAgent("Always Play Andy", strategy.AlwaysPlay),
		strategy.NewAgent("Risk Averse Rachel", strategy.RiskAverse),
		strategy.NewAgent("Neutral Nancy", strategy.RiskNeutral),
		strategy.NewAgent("Risk Seeking Rick", strategy.RiskSeeking),
		strategy.NewTargetAgent("Target Tom", cfg.TargetAmount),
		strategy.NewAgent("Momentum Mike", strategy.MomentumBased),
	}

	if cfg.ScriptPath != "" {
		source, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			logger.Fatalf("strategy script: %v", err)
		}
		script, err := strategy.NewScript("Scripted Sam", string(source))
		if err != nil {
			logger.Fatalf("strategy script: %v", err)
		}
		agents = append(agents, script)
		logger.Printf("loaded strategy script from %s", cfg.ScriptPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simulator := sim.New(sim.Options{
		Games:   cfg.Games,
		Workers: cfg.Workers,
		Seed:    seed,
		Prizes:  cfg.Prizes(),
		Agents:  agents,
	})

	logger.Printf("simulating %d games (%s edition, %d workers, seed %d)",
		cfg.Games, cfg.Edition, cfg.Workers, seed)
	start := time.Now()

	report, err := simulator.Run(ctx)
	if err != nil {
		logger.Fatalf("simulation: %v", err)
	}
	logger.Printf("finished in %s", time.Since(start).Round(time.Millisecond))

	printReport(os.Stdout, report)
	fmt.Println()
}
