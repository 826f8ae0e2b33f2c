package service

import (
	"strings"
	"unicode/utf8"

	"webshop-seo/internal/domain"
)

// Alt texts made of stock words give no real accessibility or SEO signal.
var genericAltTerms = []string{"kép", "fotó", "image", "photo", "termék"}

// scoreParentImages evaluates gallery size and alt-text quality for a parent
// product. Maximum 25 points. Children are never image-scored.
func scoreParentImages(agg domain.ProductAggregate) categoryResult {
	var res categoryResult

	total := len(agg.Images)
	if total == 0 {
		res.addBlocking(domain.IssueNoImages, "product has no images", 25)
		return res
	}

	// Gallery size, max 8.
	switch {
	case total >= 5:
		res.points += 8
	case total >= 3:
		res.points += 6
	default:
		res.points += 3
	}

	// Alt-text coverage, max 12.
	withAlt := 0
	for _, img := range agg.Images {
		if strings.TrimSpace(img.AltText) != "" {
			withAlt++
		}
	}
	coverage := float64(withAlt) / float64(total) * 100

	switch {
	case coverage == 100:
		res.points += 12
	case coverage >= 91:
		res.points += 10
	case coverage >= 51:
		res.points += 8
	case coverage >= 1:
		res.points += 4
	default:
		res.addIssue(domain.IssueNoAltText, domain.SeverityCritical,
			"no image has alt text", 12)
	}

	// Alt-text quality, max 5, only when there is any alt text to judge.
	if withAlt > 0 {
		generic := false
		descriptive := false
		lowerName := strings.ToLower(agg.Product.Name)
		for _, img := range agg.Images {
			alt := strings.TrimSpace(img.AltText)
			if alt == "" {
				continue
			}
			lowerAlt := strings.ToLower(alt)
			for _, term := range genericAltTerms {
				if strings.Contains(lowerAlt, term) {
					generic = true
					break
				}
			}
			if (lowerName != "" && strings.Contains(lowerAlt, lowerName)) || utf8.RuneCountInString(alt) > 30 {
				descriptive = true
			}
		}

		switch {
		case generic:
			res.points++
			res.addIssue(domain.IssueGenericAltText, domain.SeverityWarning,
				"image alt texts use generic terms", 4)
		case descriptive:
			res.points += 5
		default:
			res.points += 3
		}
	}

	return res
}
