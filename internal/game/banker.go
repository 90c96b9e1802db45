package game

import "github.com/shopspring/decimal"

// offerPercentages is the UK show's progressive schedule: offers climb
// linearly from 37% of expected value to 84% over seven offers and saturate
// there. These exact values are load-bearing; do not derive them from a
// formula.
var offerPercentages = [7]float64{0.37, 0.45, 0.53, 0.61, 0.69, 0.77, 0.84}

// Banker produces offers on a progressive percentage-of-EV schedule. Each
// Banker belongs to exactly one game; the offer counter is the only state.
type Banker struct {
	offerNumber int
}

// NewBanker returns a banker with no offers made yet.
func NewBanker() *Banker { return &Banker{} }

// OfferNumber returns how many offers have been made so far.
func (b *Banker) OfferNumber() int { return b.offerNumber }

// PercentageFor returns the schedule percentage for the given 1-based offer
// number, clamped to the final 84% past offer seven.
func PercentageFor(offerNumber int) float64 {
	if offerNumber > len(offerPercentages) {
		return offerPercentages[len(offerPercentages)-1]
	}
	return offerPercentages[offerNumber-1]
}

// CalculateOffer advances the offer counter and prices the next offer at the
// scheduled percentage of the expected value, rounded to 2 decimal places.
// Rounding is half away from zero (shopspring/decimal's Round), which is the
// observable tie-break in all reported statistics.
func (b *Banker) CalculateOffer(expectedValue float64) (offer, percentage float64) {
	b.offerNumber++
	percentage = PercentageFor(b.offerNumber)

	d := decimal.NewFromFloat(expectedValue).
		Mul(decimal.NewFromFloat(percentage)).
		Round(2)
	offer, _ = d.Float64()
	return offer, percentage
}
