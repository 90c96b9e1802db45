// Package sim runs batches of independent simulated games and aggregates
// their outcomes into a report.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/dondlab/dond-go/internal/game"
	"github.com/dondlab/dond-go/internal/strategy"
)

// Agent is a player policy with identity, so outcomes can be grouped per
// strategy in the report.
type Agent interface {
	game.Player
	Name() string
	Strategy() string
}

// Options configures a simulation batch.
type Options struct {
	Games   int
	Workers int
	// Seed is the base seed; game i runs on its own source seeded Seed+i,
	// so results per game are reproducible regardless of worker count.
	Seed   int64
	Prizes game.PrizeSet
	Agents []Agent
}

// GameRecord pairs one outcome with the agent that produced it.
type GameRecord struct {
	Agent    string
	Strategy string
	Outcome  *game.Outcome
}

// Simulator runs Options.Games independent games. Games share nothing: each
// gets its own allocation, banker, and random source.
type Simulator struct {
	opts Options

	// progress counts finished games, readable while a run is in flight.
	progress atomic.Uint64
}

// New builds a simulator, filling in defaults for anything unset.
func New(opts Options) *Simulator {
	if opts.Games <= 0 {
		opts.Games = 100000
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Prizes == nil {
		opts.Prizes = game.UK22
	}
	if len(opts.Agents) == 0 {
		for _, a := range strategy.DefaultAgents() {
			opts.Agents = append(opts.Agents, a)
		}
	}
	return &Simulator{opts: opts}
}

// Progress returns how many games have completed so far.
func (s *Simulator) Progress() uint64 { return s.progress.Load() }

// Run executes the batch and aggregates the results. It fails only when the
// context is cancelled before every game has finished.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	jobs := make(chan int, s.opts.Workers)
	records := make(chan GameRecord, s.opts.Workers)

	var wg sync.WaitGroup
	for w := 0; w < s.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records <- s.playOne(i)
				s.progress.Add(1)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < s.opts.Games; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(records)
	}()

	collected := make([]GameRecord, 0, s.opts.Games)
	for rec := range records {
		collected = append(collected, rec)
	}

	if len(collected) < s.opts.Games {
		return nil, fmt.Errorf("simulation cancelled after %d of %d games: %w",
			len(collected), s.opts.Games, ctx.Err())
	}
	return Aggregate(collected), nil
}

// playOne runs game i on its own seeded source. The agent is drawn
// uniformly from that same source, so the whole game is a function of
// Seed+i.
func (s *Simulator) playOne(i int) GameRecord {
	rng := rand.New(rand.NewSource(s.opts.Seed + int64(i)))
	agent := s.opts.Agents[rng.Intn(len(s.opts.Agents))]

	g := game.New(s.opts.Prizes, rng)
	outcome := g.Run(agent)

	return GameRecord{
		Agent:    agent.Name(),
		Strategy: agent.Strategy(),
		Outcome:  outcome,
	}
}
