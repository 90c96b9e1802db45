package strategy

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/dop251/goja"
)

// Script is a player policy loaded from user JavaScript. The source must
// define evaluateOffer(offer, expectedValue, offers) returning truthy to
// deal; it may also define acceptSwap() for the endgame swap, otherwise the
// swap falls back to a coin flip.
//
// The runtime is sandboxed the same way as any embedded script here: no
// module loading, no network, no eval.
type Script struct {
	name string

	mu         sync.Mutex
	runtime    *goja.Runtime
	evaluate   goja.Callable
	acceptSwap goja.Callable
}

// NewScript compiles the source and resolves its decision functions.
func NewScript(name, source string) (*Script, error) {
	vm := goja.New()
	for _, blocked := range []string{"require", "fetch", "XMLHttpRequest", "eval", "Function"} {
		vm.Set(blocked, goja.Undefined())
	}

	if _, err := vm.RunString(source); err != nil {
		return nil, fmt.Errorf("strategy script: %w", err)
	}

	fn := vm.Get("evaluateOffer")
	if fn == nil || goja.IsUndefined(fn) || goja.IsNull(fn) {
		return nil, fmt.Errorf("strategy script: evaluateOffer(offer, expectedValue, offers) is not defined")
	}
	evalFn, ok := goja.AssertFunction(fn)
	if !ok {
		return nil, fmt.Errorf("strategy script: evaluateOffer is not a function")
	}

	s := &Script{name: name, runtime: vm, evaluate: evalFn}
	if swap := vm.Get("acceptSwap"); swap != nil {
		if swapFn, ok := goja.AssertFunction(swap); ok {
			s.acceptSwap = swapFn
		}
	}
	return s, nil
}

// Name returns the script's display name.
func (s *Script) Name() string { return s.name }

// Strategy returns the grouping key for statistics.
func (s *Script) Strategy() string { return "scripted" }

// EvaluateOffer calls the script's evaluateOffer. A script error counts as
// no deal; the game must go on.
func (s *Script) EvaluateOffer(offer, expectedValue float64, offers []float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.evaluate(goja.Undefined(),
		s.runtime.ToValue(offer),
		s.runtime.ToValue(expectedValue),
		s.runtime.ToValue(offers))
	if err != nil {
		return false
	}
	return v.ToBoolean()
}

// AcceptSwap calls the script's acceptSwap if present, else flips a coin.
func (s *Script) AcceptSwap(rng *rand.Rand) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.acceptSwap == nil {
		return rng.Intn(2) == 0
	}
	v, err := s.acceptSwap(goja.Undefined())
	if err != nil {
		return false
	}
	return v.ToBoolean()
}
