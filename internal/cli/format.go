package cli

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
)

// FormatAmount renders a prize for display: sub-£1 values in pence, the
// rest as comma-grouped pounds with two decimals.
func FormatAmount(v float64) string {
	if v < 1 {
		return fmt.Sprintf("%.2fp", v)
	}
	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("£%s.%02d", humanize.Comma(cents/100), cents%100)
}

// formatBoxList renders box numbers ascending for the open prompt.
func formatBoxList(boxes []int) string {
	sorted := make([]int, len(boxes))
	copy(sorted, boxes)
	sort.Ints(sorted)

	out := ""
	for i, b := range sorted {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", b)
	}
	return out
}
