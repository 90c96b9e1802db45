package game

// PrizeSet is the ordered catalog of prize values for one edition of the
// show. Values are in pounds; the catalog is fixed per edition and its
// length equals the number of boxes on the board.
type PrizeSet []float64

// Classic26 is the 26-box board topping out at £1,000,000.
var Classic26 = PrizeSet{
	0.01, 1, 5, 10, 25, 50, 75, 100, 200, 300, 400, 500, 750,
	1000, 5000, 10000, 25000, 50000, 75000, 100000, 200000,
	300000, 400000, 500000, 750000, 1000000,
}

// UK22 is the 22-box UK board topping out at £250,000.
var UK22 = PrizeSet{
	0.01, 0.10, 0.50, 1, 5, 10, 50, 100, 250, 500, 750, 1000,
	3000, 5000, 10000, 15000, 20000, 35000, 50000, 75000,
	100000, 250000,
}

// Editions maps edition names accepted by configuration to their catalogs.
var Editions = map[string]PrizeSet{
	"classic26": Classic26,
	"uk22":      UK22,
}

// Boxes returns the number of boxes in this edition.
func (p PrizeSet) Boxes() int { return len(p) }

// Total returns the sum of all prize values.
func (p PrizeSet) Total() float64 {
	var sum float64
	for _, v := range p {
		sum += v
	}
	return sum
}
