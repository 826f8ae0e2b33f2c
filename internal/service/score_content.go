package service

import (
	"strings"
	"unicode/utf8"

	"webshop-seo/internal/domain"
)

// Attribute name fragments that identify variant-defining attributes.
var variantAttributeNames = []string{
	"meret", "size", "szin", "color", "szélesség", "width", "magasság", "height",
}

// scoreParentContent evaluates description, meta title and meta description
// quality for a parent product. Maximum 35 points.
func scoreParentContent(agg domain.ProductAggregate) categoryResult {
	var res categoryResult

	var description, metaTitle, metaDescription string
	if agg.Description != nil {
		description = agg.Description.Description
		metaTitle = agg.Description.MetaTitle
		metaDescription = agg.Description.MetaDescription
	}

	// Description presence, max 10.
	descLen := utf8.RuneCountInString(description)
	switch {
	case descLen == 0:
		res.addBlocking(domain.IssueMissingDescription, "product description is missing", 10)
	case descLen < 100:
		res.points += 3
	case descLen < 500:
		res.points += 7
	default:
		res.points += 10
	}

	// Description quality, max 10, only when there is text at all.
	if descLen > 0 {
		quality := 0
		if descLen > 100 {
			quality += 2
		}
		if matchesNameOrIdentifier(description, agg.Product) || hasDescriptionPlaceholder(description) {
			quality += 3
		}
		if hasQAIndicator(description) {
			quality += 2
		}
		if hasFormattingIndicator(description) {
			quality += 2
		}
		if sectionCount(description) >= 3 {
			quality++
		}
		if quality > 10 {
			quality = 10
		}
		res.points += quality
	}

	// Meta title, max 8.
	titleLen := utf8.RuneCountInString(metaTitle)
	if titleLen == 0 {
		res.addBlocking(domain.IssueMissingMetaTitle, "meta title is missing", 8)
	} else {
		switch {
		case titleLen < 30 || titleLen > 70:
			res.points += 2
			res.addIssue(domain.IssueMetaTitleLength, domain.SeverityWarning,
				"meta title length is outside the 30-70 character range", 4)
		case titleLen >= 50 && titleLen <= 60:
			res.points += 6
		default:
			res.points += 4
		}
		lowerTitle := strings.ToLower(metaTitle)
		lowerName := strings.ToLower(agg.Product.Name)
		if (lowerName != "" && strings.Contains(lowerTitle, lowerName)) || hasMetaTitlePlaceholder(metaTitle) {
			res.points += 2
		}
	}

	// Meta description, max 7. Length bands run on the rendered form so
	// placeholder-heavy templates are measured as the visitor sees them.
	if metaDescription == "" {
		res.addIssue(domain.IssueMissingMetaDescription, domain.SeverityWarning,
			"meta description is missing", 7)
	} else {
		rendered := renderMetaDescription(metaDescription, agg.Product)
		renderedLen := utf8.RuneCountInString(rendered)
		switch {
		case renderedLen >= 150 && renderedLen <= 160:
			res.points += 5
		case renderedLen > 100:
			res.points += 3
		default:
			res.points += 2
		}
		if hasMetaKeyword(rendered) || hasMetaKeyword(metaDescription) {
			res.points += 2
		}
	}

	return res
}

// scoreChildContent checks that a variant carries the attributes that make
// it a variant. Maximum 10 points.
func scoreChildContent(agg domain.ProductAggregate) categoryResult {
	var res categoryResult

	variantCount := CountAttributeValuesNamed(agg.Attributes, variantAttributeNames)
	anyCount := CountAttributeValues(agg.Attributes)

	switch {
	case variantCount >= 2:
		res.points = 10
	case variantCount >= 1 || anyCount >= 1:
		res.points = 5
	default:
		res.addBlocking(domain.IssueMissingVariantAttributes,
			"variant has no attributes with values", 10)
	}

	return res
}
