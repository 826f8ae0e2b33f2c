package service

import "webshop-seo/internal/domain"

// scoreParentCompleteness rewards filled identity fields and attribute
// coverage for a parent product. Maximum 10 points.
func scoreParentCompleteness(agg domain.ProductAggregate) categoryResult {
	var res categoryResult
	p := agg.Product

	if p.SKU != "" {
		res.points++
	}
	if p.ModelNumber != "" {
		res.points++
	}
	if p.GTIN != "" {
		res.points++
	}
	if p.Active {
		res.points++
	}
	if p.Price != nil {
		res.points++
	} else {
		res.addBlocking(domain.IssueMissingPrice, "product has no price", 1)
	}

	count := CountAttributeValues(agg.Attributes)
	switch {
	case count >= 10:
		res.points += 4
	case count >= 6:
		res.points += 3
	case count >= 3:
		res.points += 2
	case count >= 1:
		res.points++
	}
	if count >= 3 {
		res.points++
	}

	return res
}

// scoreChildCompleteness is the variant rubric's dominant category: most of
// a variant's value is its data being filled in. Maximum 50 points.
func scoreChildCompleteness(agg domain.ProductAggregate) categoryResult {
	var res categoryResult
	p := agg.Product

	if p.SKU != "" {
		res.points += 5
	} else {
		res.addBlocking(domain.IssueMissingSKU, "variant has no SKU", 5)
	}
	if p.ModelNumber != "" {
		res.points += 5
	}
	if p.GTIN != "" {
		res.points += 5
	}
	if p.Price != nil {
		res.points += 10
	} else {
		res.addBlocking(domain.IssueMissingPrice, "variant has no price", 10)
	}
	if p.Active {
		res.points += 5
	}

	switch count := CountAttributeValues(agg.Attributes); {
	case count >= 3:
		res.points += 20
	case count == 2:
		res.points += 15
	case count == 1:
		res.points += 10
	}

	return res
}
