// internal/insights/compare.go
package insights

// CampaignSnapshot carries the raw numbers comparison works on.
type CampaignSnapshot struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Impressions int64   `json:"impressions"`
	Engagement  int64   `json:"engagement"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

// MetricDelta compares one derived metric between two campaigns.
type MetricDelta struct {
	Metric    string  `json:"metric"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	ChangePct float64 `json:"change_pct"` // A relative to B
	Direction string  `json:"direction"`
	Winner    string  `json:"winner"` // "a", "b" or "tie"
}

type Comparison struct {
	A       CampaignSnapshot `json:"a"`
	B       CampaignSnapshot `json:"b"`
	Metrics []MetricDelta    `json:"metrics"`
}

// CompareCampaigns computes the derived metrics for both snapshots and the
// relative change of A over B per metric. For cost metrics lower wins.
func CompareCampaigns(a, b CampaignSnapshot) Comparison {
	cmp := Comparison{A: a, B: b}

	higherWins := []struct {
		name string
		a, b float64
	}{
		{"engagement_rate", EngagementRate(a.Engagement, a.Impressions), EngagementRate(b.Engagement, b.Impressions)},
		{"click_through_rate", ClickThroughRate(a.Clicks, a.Impressions), ClickThroughRate(b.Clicks, b.Impressions)},
		{"conversion_rate", ConversionRate(a.Conversions, a.Clicks), ConversionRate(b.Conversions, b.Clicks)},
		{"roi", ROI(a.Revenue, a.Spend), ROI(b.Revenue, b.Spend)},
	}
	for _, m := range higherWins {
		cmp.Metrics = append(cmp.Metrics, delta(m.name, m.a, m.b, false))
	}

	cmp.Metrics = append(cmp.Metrics, delta(
		"cost_per_conversion",
		CostPerConversion(a.Spend, a.Conversions),
		CostPerConversion(b.Spend, b.Conversions),
		true,
	))

	return cmp
}

func delta(metric string, a, b float64, lowerWins bool) MetricDelta {
	change := PercentChange(a, b)
	d := MetricDelta{
		Metric:    metric,
		A:         a,
		B:         b,
		ChangePct: change,
		Direction: TrendDirection(change),
	}
	switch {
	case a == b:
		d.Winner = "tie"
	case (a > b) != lowerWins:
		d.Winner = "a"
	default:
		d.Winner = "b"
	}
	return d
}
