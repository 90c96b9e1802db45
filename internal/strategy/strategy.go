// Package strategy provides the scripted player policies used by the batch
// simulator. Each agent is a pure decision function over the current offer,
// the expected value, and the offer history; none of them see the board.
package strategy

import "math/rand"

// Kind identifies one of the built-in decision policies.
type Kind string

const (
	AlwaysPlay    Kind = "always_play"
	RiskAverse    Kind = "risk_averse"
	RiskNeutral   Kind = "risk_neutral"
	RiskSeeking   Kind = "risk_seeking"
	TargetBased   Kind = "target_based"
	MomentumBased Kind = "momentum_based"
)

// Acceptance thresholds as multiples of expected value.
const (
	riskAverseRatio  = 0.8
	riskNeutralRatio = 0.95
	riskSeekingRatio = 1.2
	momentumRatio    = 0.9
)

// Agent is a named instance of a built-in policy. Target is only consulted
// by TargetBased agents.
type Agent struct {
	name   string
	kind   Kind
	target float64
}

// NewAgent creates an agent for the given policy.
func NewAgent(name string, kind Kind) *Agent {
	return &Agent{name: name, kind: kind}
}

// NewTargetAgent creates a TargetBased agent that deals as soon as an offer
// reaches target.
func NewTargetAgent(name string, target float64) *Agent {
	return &Agent{name: name, kind: TargetBased, target: target}
}

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Strategy returns the policy identifier used for grouping statistics.
func (a *Agent) Strategy() string { return string(a.kind) }

// EvaluateOffer reports whether the agent takes the deal. offers holds every
// offer made this game with the current one last, so the momentum policy
// compares the current offer against the previous one.
func (a *Agent) EvaluateOffer(offer, expectedValue float64, offers []float64) bool {
	switch a.kind {
	case AlwaysPlay:
		return false
	case RiskAverse:
		return offer >= riskAverseRatio*expectedValue
	case RiskNeutral:
		return offer >= riskNeutralRatio*expectedValue
	case RiskSeeking:
		return offer >= riskSeekingRatio*expectedValue
	case TargetBased:
		return offer >= a.target
	case MomentumBased:
		if len(offers) < 2 {
			return false
		}
		trend := offers[len(offers)-1] - offers[len(offers)-2]
		return trend < 0 && offer >= momentumRatio*expectedValue
	}
	return false
}

// AcceptSwap reports whether the agent takes the endgame box swap. Risk
// seekers always swap, the risk averse never do, everyone else flips a fair
// coin from the game's own random source.
func (a *Agent) AcceptSwap(rng *rand.Rand) bool {
	switch a.kind {
	case RiskSeeking:
		return true
	case RiskAverse:
		return false
	}
	return rng.Intn(2) == 0
}

// DefaultAgents returns the six fixed agents the simulator draws from.
func DefaultAgents() []*Agent {
	return []*Agent{
		NewAgent("Always Play Andy", AlwaysPlay),
		NewAgent("Risk Averse Rachel", RiskAverse),
		NewAgent("Neutral Nancy", RiskNeutral),
		NewAgent("Risk Seeking Rick", RiskSeeking),
		NewTargetAgent("Target Tom", 100000),
		NewAgent("Momentum Mike", MomentumBased),
	}
}
