package service

import "webshop-seo/internal/domain"

// scoreParentCompetitive rewards price tracking and a favorable position
// against the cheapest competitor. Maximum 5 points.
func scoreParentCompetitive(agg domain.ProductAggregate) categoryResult {
	var res categoryResult
	if !agg.CompetitorTracking {
		return res
	}
	res.points += 2

	if diff, ok := competitorPriceDiff(agg); ok {
		switch {
		case diff > 10:
			res.points += 3
		case diff > 0:
			res.points += 2
		case diff > -10:
			res.points++
		}
	}

	return res
}

// scoreChildCompetitive is the variant counterpart, weighted heavier because
// variants compete on price directly. Maximum 10 points.
func scoreChildCompetitive(agg domain.ProductAggregate) categoryResult {
	var res categoryResult
	if !agg.CompetitorTracking {
		return res
	}
	res.points += 4

	if diff, ok := competitorPriceDiff(agg); ok {
		switch {
		case diff > 10:
			res.points += 6
		case diff > 0:
			res.points += 4
		case diff > -10:
			res.points += 2
		}
	}

	return res
}

// competitorPriceDiff returns the percent difference between the lowest
// competitor price and our own. Positive means the competitor is more
// expensive. Requires both prices to be valid positive numbers.
func competitorPriceDiff(agg domain.ProductAggregate) (float64, bool) {
	if agg.CompetitorPrice == nil || agg.Product.Price == nil {
		return 0, false
	}
	competitor, own := *agg.CompetitorPrice, *agg.Product.Price
	if competitor <= 0 || own <= 0 {
		return 0, false
	}
	return (competitor - own) / competitor * 100, true
}
