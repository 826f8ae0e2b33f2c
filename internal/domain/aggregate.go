package domain

// ProductAggregate is the full cross-source snapshot a single scoring run
// consumes. Built fresh per run by the aggregation service and discarded
// afterwards; every optional pointer is nil when the source store had no
// record, which the rubric treats as its own branch.
type ProductAggregate struct {
	Product     Product
	Attributes  []Attribute
	Description *ProductDescription
	Images      []ProductImage
	Indexing    *IndexingStatus
	Performance *SearchPerformance

	// CompetitorTracking is true when the product flag is set or at least
	// one active competitor link exists. CompetitorPrice is the lowest
	// valid positive price across the active links, nil when none.
	CompetitorTracking bool
	CompetitorPrice    *float64
}
