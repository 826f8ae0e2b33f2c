package service

import "webshop-seo/internal/domain"

// scorePerformance evaluates the search-performance summary. Maximum 5
// points. Shared by both rubrics; children are scored on the parent's
// aggregated series, which the orchestrator resolves.
func scorePerformance(perf *domain.SearchPerformance) categoryResult {
	var res categoryResult
	if perf == nil {
		return res
	}

	switch {
	case perf.Impressions >= 100:
		res.points += 2
	case perf.Impressions > 0:
		res.points++
	}

	pos := perf.AvgPosition
	switch {
	case pos >= 1 && pos <= 9:
		res.points += 3
	case pos > 9 && pos <= 19:
		res.points += 2
	case pos > 19:
		res.points++
	}

	return res
}
