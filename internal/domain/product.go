package domain

// Product is the catalog identity record the scoring engine reads.
// Price is a pointer because a missing price is a scoring branch, not a zero.
type Product struct {
	ID                 int64    `json:"id"`
	ParentID           *int64   `json:"parent_id,omitempty"`
	SKU                string   `json:"sku"`
	Name               string   `json:"name"`
	ModelNumber        string   `json:"model_number"`
	GTIN               string   `json:"gtin"`
	Price              *float64 `json:"price,omitempty"`
	Active             bool     `json:"active"`
	Slug               string   `json:"slug"`
	SyncStatus         string   `json:"sync_status"`
	SyncError          string   `json:"sync_error,omitempty"`
	CompetitorTracking bool     `json:"competitor_tracking"`
}

// IsParent reports whether the product is a parent (top-level) product.
// A product is a parent when it has no parent reference or when the
// reference points back to itself. Recomputed on every call, never cached.
func (p Product) IsParent() bool {
	return p.ParentID == nil || *p.ParentID == p.ID
}

// PerformanceKey returns the id whose search-performance series applies to
// this product. Children inherit the parent's aggregated series.
func (p Product) PerformanceKey() int64 {
	if p.ParentID != nil && *p.ParentID != p.ID {
		return *p.ParentID
	}
	return p.ID
}
