package service

import (
	"testing"

	"webshop-seo/internal/domain"
)

func TestCountAttributeValues_KindRules(t *testing.T) {
	tests := []struct {
		name  string
		attr  domain.Attribute
		wantN int
	}{
		{
			name:  "list with entries counts",
			attr:  domain.Attribute{Kind: domain.AttributeList, Name: "colors", Value: []any{"piros", "kék"}},
			wantN: 1,
		},
		{
			name:  "empty list does not count",
			attr:  domain.Attribute{Kind: domain.AttributeList, Name: "colors", Value: []any{}},
			wantN: 0,
		},
		{
			name:  "list with wrong shape does not count",
			attr:  domain.Attribute{Kind: domain.AttributeList, Name: "colors", Value: "piros"},
			wantN: 0,
		},
		{
			name:  "text counts",
			attr:  domain.Attribute{Kind: domain.AttributeText, Name: "material", Value: "acél"},
			wantN: 1,
		},
		{
			name:  "whitespace only text does not count",
			attr:  domain.Attribute{Kind: domain.AttributeText, Name: "material", Value: "  "},
			wantN: 0,
		},
		{
			name: "text entry sequence counts when one entry is filled",
			attr: domain.Attribute{Kind: domain.AttributeText, Name: "material", Value: []any{
				map[string]any{"value": "  "},
				map[string]any{"value": "acél"},
			}},
			wantN: 1,
		},
		{
			name: "text entry sequence of blanks does not count",
			attr: domain.Attribute{Kind: domain.AttributeText, Name: "material", Value: []any{
				map[string]any{"value": ""},
			}},
			wantN: 0,
		},
		{
			name:  "integer number counts",
			attr:  domain.Attribute{Kind: domain.AttributeInteger, Name: "watts", Value: float64(650)},
			wantN: 1,
		},
		{
			name:  "integer as numeric string counts",
			attr:  domain.Attribute{Kind: domain.AttributeInteger, Name: "watts", Value: "650"},
			wantN: 1,
		},
		{
			name:  "unparseable integer does not count",
			attr:  domain.Attribute{Kind: domain.AttributeInteger, Name: "watts", Value: "abc"},
			wantN: 0,
		},
		{
			name:  "float counts",
			attr:  domain.Attribute{Kind: domain.AttributeFloat, Name: "weight", Value: "12.5"},
			wantN: 1,
		},
		{
			name:  "nil never counts",
			attr:  domain.Attribute{Kind: domain.AttributeText, Name: "material", Value: nil},
			wantN: 0,
		},
		{
			name:  "unknown kind falls back to truthiness",
			attr:  domain.Attribute{Kind: "boolean", Name: "foldable", Value: true},
			wantN: 1,
		},
		{
			name:  "unknown kind with falsy value does not count",
			attr:  domain.Attribute{Kind: "boolean", Name: "foldable", Value: false},
			wantN: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountAttributeValues([]domain.Attribute{tt.attr})
			if got != tt.wantN {
				t.Fatalf("CountAttributeValues(%+v) = %d; want %d", tt.attr, got, tt.wantN)
			}
		})
	}
}

func TestCountAttributeValues_Empty(t *testing.T) {
	if got := CountAttributeValues(nil); got != 0 {
		t.Fatalf("CountAttributeValues(nil) = %d; want 0", got)
	}
}

func TestCountAttributeValuesNamed(t *testing.T) {
	attrs := []domain.Attribute{
		{Kind: domain.AttributeText, Name: "Size", Value: "M"},
		{Kind: domain.AttributeText, Name: "Color", Value: "piros"},
		{Kind: domain.AttributeText, Name: "Material", Value: "pamut"},
		{Kind: domain.AttributeText, Name: "Width", Value: "   "},
	}

	got := CountAttributeValuesNamed(attrs, variantAttributeNames)
	if got != 2 {
		t.Fatalf("CountAttributeValuesNamed = %d; want 2 (empty-valued width must not count)", got)
	}
}
