// internal/insights/power.go
package insights

import "math"

// Fixed z-score approximations used by the A/B test setup flow. This is a
// rule-of-thumb estimate for planning, not a statistics engine.
const zPower = 0.84 // 80% power

func zAlpha(confidence int) float64 {
	switch confidence {
	case 90:
		return 1.645
	case 99:
		return 2.576
	default:
		return 1.96 // 95%
	}
}

// SampleSizePerVariant estimates the visitors needed per variant to detect an
// absolute lift of minDetectable over baselineRate at the given confidence
// level. Rates are fractions in (0,1). Returns 0 when the inputs cannot
// produce a meaningful estimate.
func SampleSizePerVariant(confidence int, baselineRate, minDetectable float64) int {
	if baselineRate <= 0 || baselineRate >= 1 || minDetectable <= 0 {
		return 0
	}
	p1 := baselineRate
	p2 := baselineRate + minDetectable
	if p2 >= 1 {
		return 0
	}

	z := zAlpha(confidence) + zPower
	variance := p1*(1-p1) + p2*(1-p2)
	n := z * z * variance / (minDetectable * minDetectable)
	return int(math.Ceil(n))
}

// EstimateDuration converts a per-variant sample size into test days given
// expected daily traffic split across all variants. Always at least one day
// when an estimate exists.
func EstimateDuration(samplePerVariant, variantCount, dailyTraffic int) int {
	if samplePerVariant <= 0 || variantCount <= 0 || dailyTraffic <= 0 {
		return 0
	}
	total := samplePerVariant * variantCount
	days := int(math.Ceil(float64(total) / float64(dailyTraffic)))
	if days < 1 {
		days = 1
	}
	return days
}
