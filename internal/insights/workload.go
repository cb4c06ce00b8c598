// internal/insights/workload.go
package insights

// Priority weights for open-task load. One urgent task weighs as much as
// four low-priority ones.
var priorityWeights = map[string]float64{
	"low":    1,
	"medium": 2,
	"high":   3,
	"urgent": 4,
}

// TaskLoad converts a set of open-task priorities into load points.
// Each weight point represents roughly 10% of a full-time load.
func TaskLoad(priorities []string) float64 {
	var load float64
	for _, p := range priorities {
		w, ok := priorityWeights[p]
		if !ok {
			w = priorityWeights["medium"]
		}
		load += w * 10
	}
	return load
}

// WorkloadScore expresses a member's assigned load as a percentage of their
// capacity, clamped to [0,100]. A member at 100 has no room for new work.
func WorkloadScore(load float64, capacityPct int) float64 {
	if capacityPct <= 0 {
		return 100
	}
	score := load / float64(capacityPct) * 100
	return clampPct(score)
}

// EfficiencyScore blends completion rate (60%) with on-time rate (40%).
func EfficiencyScore(completed, assigned, onTime int) float64 {
	if assigned == 0 {
		return 0
	}
	completionRate := float64(completed) / float64(assigned) * 100
	punctuality := 0.0
	if completed > 0 {
		punctuality = float64(onTime) / float64(completed) * 100
	}
	return clampPct(0.6*completionRate + 0.4*punctuality)
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
