package domain

// IndexingIssueSeverity values mirror the search-console feed verbatim.
const IndexingSeverityError = "ERROR"

// IndexingIssue is one inspection finding attached to an indexing record.
type IndexingIssue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// IndexingStatus is the latest search-console inspection snapshot of a
// product page. PageFetchState and CoverageState carry the feed's raw
// enum strings; an empty PageFetchState means the feed reported nothing.
type IndexingStatus struct {
	ProductID      int64           `json:"product_id"`
	Indexed        bool            `json:"indexed"`
	HasIssues      bool            `json:"has_issues"`
	PageFetchState string          `json:"page_fetch_state,omitempty"`
	CoverageState  string          `json:"coverage_state,omitempty"`
	MobileUsability []IndexingIssue `json:"mobile_usability,omitempty"`
	StructuredData  []IndexingIssue `json:"structured_data,omitempty"`
}

// FetchFailed reports whether the feed recorded a non-success page fetch.
func (s IndexingStatus) FetchFailed() bool {
	return s.PageFetchState != "" && s.PageFetchState != "SUCCESSFUL"
}

// MobileUsabilityErrors returns the error-severity mobile usability findings.
func (s IndexingStatus) MobileUsabilityErrors() []IndexingIssue {
	return errorSeverity(s.MobileUsability)
}

// StructuredDataErrors returns the error-severity structured data findings.
func (s IndexingStatus) StructuredDataErrors() []IndexingIssue {
	return errorSeverity(s.StructuredData)
}

func errorSeverity(issues []IndexingIssue) []IndexingIssue {
	var out []IndexingIssue
	for _, is := range issues {
		if is.Severity == IndexingSeverityError {
			out = append(out, is)
		}
	}
	return out
}
