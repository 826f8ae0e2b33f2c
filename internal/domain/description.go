package domain

// ProductDescription is the language-specific content record of a product.
// The scoring engine always reads the Hungarian record.
type ProductDescription struct {
	ProductID       int64  `json:"product_id"`
	Language        string `json:"language"`
	Description     string `json:"description"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// ProductImage is one gallery image of a product, in display order.
type ProductImage struct {
	AltText       string `json:"alt_text"`
	AltTextStatus string `json:"alt_text_status,omitempty"`
}
