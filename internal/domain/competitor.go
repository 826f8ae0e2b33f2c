package domain

import "time"

// CompetitorLink pairs a product with one tracked competitor listing.
type CompetitorLink struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	URL       string `json:"url"`
	Active    bool   `json:"active"`
}

// CompetitorPrice is one sampled price for a competitor link.
type CompetitorPrice struct {
	LinkID    int64     `json:"link_id"`
	Price     float64   `json:"price"`
	SampledAt time.Time `json:"sampled_at"`
}
