package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"webshop-seo/internal/domain"
)

// categoryResult is what every category scorer returns: points plus any
// findings. Scorers never mutate shared state; the aggregator only sums.
type categoryResult struct {
	points   int
	issues   []domain.ScoreIssue
	blocking []string
}

func (r *categoryResult) addIssue(issueType, severity, message string, pointsLost int) {
	r.issues = append(r.issues, domain.ScoreIssue{
		Type:       issueType,
		Severity:   severity,
		Message:    message,
		PointsLost: pointsLost,
	})
}

// addBlocking records a critical issue that also caps the overall score.
func (r *categoryResult) addBlocking(issueType, message string, pointsLost int) {
	r.addIssue(issueType, domain.SeverityCritical, message, pointsLost)
	r.blocking = append(r.blocking, issueType)
}

// Blocking caps. Each present tag independently clamps the overall score,
// regardless of the raw point sum.
var parentScoreCaps = map[string]int{
	domain.IssueMissingDescription: 50,
	domain.IssueMissingMetaTitle:   60,
	domain.IssueNoImages:           50,
	domain.IssueMissingPrice:       70,
	domain.IssueSyncError:          60,
}

var childScoreCaps = map[string]int{
	domain.IssueMissingSKU:               50,
	domain.IssueMissingPrice:             60,
	domain.IssueMissingVariantAttributes: 70,
	domain.IssueSyncError:                60,
}

// CalculateQualityScore evaluates the rubric matching the product's
// parent/child classification and assembles the final result record.
func CalculateQualityScore(agg domain.ProductAggregate) domain.QualityScoreResult {
	isParent := agg.Product.IsParent()

	var content, image, technical, performance, completeness, competitive categoryResult
	var caps map[string]int

	if isParent {
		content = scoreParentContent(agg)
		image = scoreParentImages(agg)
		technical = scoreParentTechnical(agg)
		performance = scorePerformance(agg.Performance)
		completeness = scoreParentCompleteness(agg)
		competitive = scoreParentCompetitive(agg)
		caps = parentScoreCaps
	} else {
		content = scoreChildContent(agg)
		technical = scoreChildTechnical(agg)
		performance = scorePerformance(agg.Performance)
		completeness = scoreChildCompleteness(agg)
		competitive = scoreChildCompetitive(agg)
		caps = childScoreCaps
	}

	categories := []categoryResult{content, image, technical, performance, completeness, competitive}

	overall := 0
	issues := []domain.ScoreIssue{}
	blocking := []string{}
	for _, cat := range categories {
		overall += cat.points
		issues = append(issues, cat.issues...)
		blocking = append(blocking, cat.blocking...)
	}

	for _, tag := range blocking {
		if limit, ok := caps[tag]; ok && overall > limit {
			overall = limit
		}
	}

	return domain.QualityScoreResult{
		ID:                uuid.NewString(),
		ProductID:         agg.Product.ID,
		IsParent:          isParent,
		ContentScore:      content.points,
		ImageScore:        image.points,
		TechnicalScore:    technical.points,
		PerformanceScore:  performance.points,
		CompletenessScore: completeness.points,
		CompetitiveScore:  competitive.points,
		OverallScore:      overall,
		PriorityScore:     priorityScore(overall),
		Issues:            issues,
		BlockingIssues:    blocking,
		CalculatedAt:      time.Now().UTC(),
	}
}

// priorityScore ranks remediation urgency: the worse the score, the higher
// the priority. Two decimal places.
func priorityScore(overall int) float64 {
	return math.Round((100-float64(overall))*1.0*100) / 100
}
