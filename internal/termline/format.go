package termline

import (
	"fmt"
	"math/big"
	"time"
)

var countUnits = []struct {
	limit float64
	unit  string
}{
	{1e15, "P"},
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
}

// formatCount renders an exact big count as a short human figure. The
// exact decimal stays in logs and the summary; this is for the one-line
// display only.
func formatCount(n *big.Int) string {
	if n == nil {
		return "0"
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return formatFloatCount(f)
}

func formatFloatCount(f float64) string {
	for _, u := range countUnits {
		if f >= u.limit {
			return fmt.Sprintf("%.2f%s", f/u.limit, u.unit)
		}
	}
	return fmt.Sprintf("%.0f", f)
}

// formatCountDecimal shortens an exact decimal string. Invalid input
// renders as-is; the summary path only ever passes coordinator output.
func formatCountDecimal(s string) string {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return s
	}
	return formatCount(n)
}

// formatDuration trims a duration to whole seconds for display.
func formatDuration(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
