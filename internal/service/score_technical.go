package service

import (
	"fmt"
	"strings"

	"webshop-seo/internal/domain"
)

// scoreParentTechnical evaluates URL slug, indexing state and catalog sync
// state for a parent product. Maximum 20 points (7 + 6 + 7).
func scoreParentTechnical(agg domain.ProductAggregate) categoryResult {
	var res categoryResult

	// Slug, max 7.
	slug := agg.Product.Slug
	if slug == "" {
		res.points++
	} else {
		if !slugCharsValid(slug) {
			res.points += 2
		} else {
			switch {
			case len(slug) > 100:
				res.points += 3
			case len(slug) > 50:
				res.points += 4
			default:
				res.points += 5
			}
		}
		if slugContainsNameToken(slug, agg.Product.Name) {
			res.points += 2
		}
	}

	// Indexing, max 6.
	res.points += scoreParentIndexing(agg.Indexing, &res)

	// Sync, max 7.
	switch {
	case agg.Product.SyncStatus == "synced" && agg.Product.SyncError == "":
		res.points += 7
	case agg.Product.SyncStatus == "synced":
		res.points += 4
		res.addIssue(domain.IssueSyncWarning, domain.SeverityWarning,
			fmt.Sprintf("product synced with warning: %s", agg.Product.SyncError), 3)
	default:
		res.addBlocking(domain.IssueSyncError, "product is not synced to the storefront", 7)
	}

	return res
}

func scoreParentIndexing(status *domain.IndexingStatus, res *categoryResult) int {
	if status == nil {
		return 2
	}

	if !status.Indexed {
		res.addIssue(domain.IssueNotIndexed, domain.SeverityCritical, notIndexedMessage(*status), 6)
		return 0
	}

	structured := status.StructuredDataErrors()
	if len(structured) > 0 {
		res.addIssue(domain.IssueStructuredDataErrors, domain.SeverityWarning,
			fmt.Sprintf("%d structured data errors reported", len(structured)), 0)
	}

	if status.HasIssues {
		if status.FetchFailed() {
			res.addIssue(domain.IssuePageFetchError, domain.SeverityCritical,
				fmt.Sprintf("page fetch failed: %s", status.PageFetchState), 3)
		} else {
			res.addIssue(domain.IssueIndexingIssues, domain.SeverityWarning,
				"page is indexed with issues", 3)
		}
		return 3
	}

	points := 6
	// The mobile penalty applies to the clean branch only; the with-issues
	// branch already paid for its problems.
	if mobile := status.MobileUsabilityErrors(); len(mobile) > 0 {
		points -= 2
		res.addIssue(domain.IssueMobileUsabilityErrors, domain.SeverityWarning,
			fmt.Sprintf("%d mobile usability errors reported", len(mobile)), 2)
	}
	return points
}

func notIndexedMessage(status domain.IndexingStatus) string {
	if status.FetchFailed() {
		return fmt.Sprintf("page is not indexed, fetch state: %s", status.PageFetchState)
	}
	if status.CoverageState != "" {
		return fmt.Sprintf("page is not indexed, coverage state: %s", status.CoverageState)
	}
	return "page is not indexed"
}

// scoreChildTechnical evaluates slug, indexing and sync for a variant.
// Maximum 25 points (8 + 8 + 9).
func scoreChildTechnical(agg domain.ProductAggregate) categoryResult {
	var res categoryResult

	// Slug, max 8.
	slug := agg.Product.Slug
	switch {
	case slug == "":
		res.points++
	case slugCharsValid(slug) && len(slug) <= 100:
		res.points += 6
		if len(slug) <= 50 {
			res.points += 2
		}
	default:
		res.points += 2
	}

	// Indexing, max 8.
	switch {
	case agg.Indexing == nil:
		res.points += 2
	case agg.Indexing.Indexed && !agg.Indexing.HasIssues:
		res.points += 8
	case agg.Indexing.Indexed:
		res.points += 4
	}

	// Sync, max 9.
	switch {
	case agg.Product.SyncStatus == "synced" && agg.Product.SyncError == "":
		res.points += 9
	case agg.Product.SyncStatus == "synced":
		res.points += 4
	default:
		res.addBlocking(domain.IssueSyncError, "variant is not synced to the storefront", 9)
	}

	return res
}

func slugCharsValid(slug string) bool {
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

func slugContainsNameToken(slug, name string) bool {
	lowerSlug := strings.ToLower(slug)
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		if len([]rune(tok)) > 3 && strings.Contains(lowerSlug, tok) {
			return true
		}
	}
	return false
}
