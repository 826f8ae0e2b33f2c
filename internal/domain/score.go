package domain

import "time"

// Issue severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Issue types. The blocking subset caps the overall score (see service).
const (
	IssueMissingDescription       = "missing_description"
	IssueMissingMetaTitle         = "missing_meta_title"
	IssueMetaTitleLength          = "meta_title_length"
	IssueMissingMetaDescription   = "missing_meta_description"
	IssueNoImages                 = "no_images"
	IssueNoAltText                = "no_alt_text"
	IssueGenericAltText           = "generic_alt_text"
	IssuePageFetchError           = "page_fetch_error"
	IssueIndexingIssues           = "indexing_issues"
	IssueMobileUsabilityErrors    = "mobile_usability_errors"
	IssueStructuredDataErrors     = "structured_data_errors"
	IssueNotIndexed               = "not_indexed"
	IssueSyncWarning              = "sync_warning"
	IssueSyncError                = "sync_error"
	IssueMissingPrice             = "missing_price"
	IssueMissingSKU               = "missing_sku"
	IssueMissingVariantAttributes = "missing_variant_attributes"
)

// ScoreIssue is one finding attached to a quality score.
type ScoreIssue struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	PointsLost int    `json:"points_lost"`
}

// QualityScoreResult is the immutable output of one scoring run. Exactly one
// live row exists per product; re-scoring overwrites it in place.
type QualityScoreResult struct {
	ID                string       `json:"id"`
	ProductID         int64        `json:"product_id"`
	IsParent          bool         `json:"is_parent"`
	ContentScore      int          `json:"content_score"`
	ImageScore        int          `json:"image_score"`
	TechnicalScore    int          `json:"technical_score"`
	PerformanceScore  int          `json:"performance_score"`
	CompletenessScore int          `json:"completeness_score"`
	CompetitiveScore  int          `json:"competitive_score"`
	OverallScore      int          `json:"overall_score"`
	PriorityScore     float64      `json:"priority_score"`
	Issues            []ScoreIssue `json:"issues"`
	BlockingIssues    []string     `json:"blocking_issues"`
	CalculatedAt      time.Time    `json:"calculated_at"`
}

// BulkScoreError records one failed item of a bulk run.
type BulkScoreError struct {
	ProductID int64  `json:"product_id"`
	Error     string `json:"error"`
}

// BulkScoreResult summarizes a bulk scoring run. A failed item never aborts
// the remaining ones.
type BulkScoreResult struct {
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	Errors       []BulkScoreError `json:"errors"`
}
