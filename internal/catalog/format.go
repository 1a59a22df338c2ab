package catalog

import (
	"fmt"
	"math"
	"time"
)

// PriceUnavailable is the canonical marker for a price that cannot be
// displayed: missing pricing data or a failed video quote.
const PriceUnavailable = "—"

// FormatPrice renders a USD amount for display. Prices round to two
// decimals; sub-cent prices keep four decimals so they do not collapse to
// $0.00. A nil price renders the unavailable marker.
func FormatPrice(price *float64) string {
	if price == nil {
		return PriceUnavailable
	}
	p := *price
	if p > 0 && p < 0.01 {
		return fmt.Sprintf("$%.4f", p)
	}
	return fmt.Sprintf("$%.2f", p)
}

// FormatUSD is FormatPrice for a known value.
func FormatUSD(price float64) string {
	return FormatPrice(&price)
}

// FormatContext renders a context window size compactly: 1.5M, 32K, 512.
func FormatContext(tokens int) string {
	switch {
	case tokens >= 1000000:
		return fmt.Sprintf("%.1fM", float64(tokens)/1000000)
	case tokens >= 1000:
		return fmt.Sprintf("%dK", int(math.Round(float64(tokens)/1000)))
	default:
		return fmt.Sprintf("%d", tokens)
	}
}

// FormatAddedDate renders a model's created timestamp as "Jan 15, 2025".
// Returns the empty string when the record has no created timestamp.
func FormatAddedDate(created int64) string {
	if created == 0 {
		return ""
	}
	return time.Unix(created, 0).UTC().Format("Jan 2, 2006")
}
