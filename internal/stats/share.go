package stats

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Shares converts counts to percentages of their total, rounded to two
// places. An empty total yields zero for every key.
func Shares[K comparable](counts map[K]int) map[K]decimal.Decimal {
	out := make(map[K]decimal.Decimal, len(counts))
	total := Total(counts)
	for k, v := range counts {
		if total == 0 {
			out[k] = decimal.Zero
			continue
		}
		out[k] = decimal.NewFromInt(int64(v)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2)
	}
	return out
}
