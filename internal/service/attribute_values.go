package service

import (
	"math"
	"strconv"
	"strings"

	"webshop-seo/internal/domain"
)

// CountAttributeValues returns how many of the given attributes carry a
// genuine value. What counts as a value depends on the attribute kind.
func CountAttributeValues(attrs []domain.Attribute) int {
	count := 0
	for _, attr := range attrs {
		if attributeHasValue(attr) {
			count++
		}
	}
	return count
}

// CountAttributeValuesNamed counts attributes with a value whose name
// contains any of the given fragments (case-insensitive).
func CountAttributeValuesNamed(attrs []domain.Attribute, fragments []string) int {
	count := 0
	for _, attr := range attrs {
		if !attributeHasValue(attr) {
			continue
		}
		name := strings.ToLower(attr.Name)
		for _, frag := range fragments {
			if strings.Contains(name, frag) {
				count++
				break
			}
		}
	}
	return count
}

func attributeHasValue(attr domain.Attribute) bool {
	if attr.Value == nil {
		return false
	}

	switch attr.Kind {
	case domain.AttributeList:
		seq, ok := attr.Value.([]any)
		return ok && len(seq) > 0
	case domain.AttributeText:
		return textHasValue(attr.Value)
	case domain.AttributeInteger, domain.AttributeFloat:
		_, ok := parseFinite(attr.Value)
		return ok
	default:
		return truthy(attr.Value)
	}
}

// textHasValue accepts either a plain string or a sequence of {value}
// entries, as the attribute store serializes multi-line text both ways.
func textHasValue(value any) bool {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		for _, entry := range v {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if s, ok := m["value"].(string); ok && strings.TrimSpace(s) != "" {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func parseFinite(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
