// internal/insights/calc.go
package insights

import (
	"fmt"
	"strconv"
)

// FormatCount buckets a raw count into the short dashboard form:
// 1,500,000 -> "1.5M", 125,000 -> "125.0K", 850 -> "850".
func FormatCount(n float64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", n/1_000)
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// BudgetUtilization returns spent as a percentage of total, 0 when total is 0.
func BudgetUtilization(spent, total float64) float64 {
	if total == 0 {
		return 0
	}
	return spent / total * 100
}

// PercentChange returns the relative change from previous to current as a
// percentage. A zero previous value yields 0 rather than a blow-up.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// TrendDirection maps a percent change onto the arrow shown next to it.
func TrendDirection(delta float64) string {
	switch {
	case delta > 0:
		return "up"
	case delta < 0:
		return "down"
	default:
		return "flat"
	}
}

// ROI returns return on investment as a percentage of spend.
func ROI(revenue, spend float64) float64 {
	if spend == 0 {
		return 0
	}
	return (revenue - spend) / spend * 100
}

// ROILabel buckets an ROI percentage into the badge text.
func ROILabel(roi float64) string {
	switch {
	case roi > 0:
		return "Profitable"
	case roi < 0:
		return "At Loss"
	default:
		return "Break Even"
	}
}

func EngagementRate(engagement, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(engagement) / float64(impressions) * 100
}

func ClickThroughRate(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

func ConversionRate(conversions, clicks int64) float64 {
	if clicks == 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}

func CostPerConversion(spend float64, conversions int64) float64 {
	if conversions == 0 {
		return 0
	}
	return spend / float64(conversions)
}
