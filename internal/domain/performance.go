package domain

import "time"

// SearchSample is one day of search-console performance data for a product.
type SearchSample struct {
	ProductID   int64     `json:"product_id"`
	Date        time.Time `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Position    float64   `json:"position"`
	CTR         float64   `json:"ctr"`
}

// SearchPerformance summarizes a window of samples. Always computed from the
// parent product's series, even when a child is being scored.
type SearchPerformance struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	AvgPosition float64 `json:"avg_position"`
	AvgCTR      float64 `json:"avg_ctr"`
}

// SummarizePerformance reduces a sample window to totals, the arithmetic mean
// position and the aggregate CTR (total clicks over total impressions).
// Returns nil for an empty window so absence stays a scoring branch.
func SummarizePerformance(samples []SearchSample) *SearchPerformance {
	if len(samples) == 0 {
		return nil
	}

	perf := &SearchPerformance{}
	var positionSum float64
	for _, s := range samples {
		perf.Impressions += s.Impressions
		perf.Clicks += s.Clicks
		positionSum += s.Position
	}
	perf.AvgPosition = positionSum / float64(len(samples))
	if perf.Impressions > 0 {
		perf.AvgCTR = float64(perf.Clicks) / float64(perf.Impressions)
	}
	return perf
}
