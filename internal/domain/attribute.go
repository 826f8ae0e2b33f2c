package domain

// AttributeKind tags the shape of an attribute's value.
type AttributeKind string

const (
	AttributeList    AttributeKind = "list"
	AttributeInteger AttributeKind = "integer"
	AttributeFloat   AttributeKind = "float"
	AttributeText    AttributeKind = "text"
)

// Attribute is one typed name/value record attached to a product.
// Value is decoded from JSONB, so its dynamic shape depends on Kind:
// a sequence for list kinds, a string or a sequence of {value} entries
// for text kinds, a number or numeric string for integer/float kinds.
type Attribute struct {
	Kind  AttributeKind `json:"kind"`
	Name  string        `json:"name"`
	Value any           `json:"value"`
}
