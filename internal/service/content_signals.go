package service

import (
	"regexp"
	"strings"

	"webshop-seo/internal/domain"
)

// Dynamic placeholder tags are template markers substituted at render time.
// They count as content-rich when detected, but length checks run on the
// substituted form.
var descriptionPlaceholders = []string{"[PRODUCT]", "[SKU]", "[SERIAL]"}

var metaTitlePlaceholders = []string{"[PRODUCT]", "[SKU]", "[SERIAL]", "[CATEGORY]"}

// Marketing phrases the meta description gets credit for.
var metaKeywordPattern = regexp.MustCompile(`(?i)ingyenes|szállítás|garanci|akció|kedvezmény`)

// Storefront renders these literals for category and price markers; length
// measurement has to see the same expansion.
const (
	renderedCategory = "kategória"
	renderedPrice    = "12 345 Ft"
)

var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
	"&#39;", "'",
)

// decodeEntities resolves the five common HTML entities before text matching.
func decodeEntities(s string) string {
	return htmlEntities.Replace(s)
}

func hasDescriptionPlaceholder(s string) bool {
	return containsAny(s, descriptionPlaceholders)
}

func hasMetaTitlePlaceholder(s string) bool {
	return containsAny(s, metaTitlePlaceholders)
}

// renderMetaDescription substitutes every dynamic placeholder the way the
// storefront template engine would, so length bands run on realistic text.
func renderMetaDescription(meta string, p domain.Product) string {
	r := strings.NewReplacer(
		"[PRODUCT]", p.Name,
		"[SKU]", p.SKU,
		"[SERIAL]", p.ModelNumber,
		"[CATEGORY]", renderedCategory,
		"[PRICE]", renderedPrice,
	)
	return r.Replace(meta)
}

func hasMetaKeyword(s string) bool {
	return metaKeywordPattern.MatchString(s)
}

// matchesNameOrIdentifier reports whether the text mentions the product.
// Candidates are tried in order until one hits: full name, SKU, model
// number, then the first two and first three significant name tokens.
func matchesNameOrIdentifier(text string, p domain.Product) bool {
	haystack := strings.ToLower(decodeEntities(text))

	candidates := []string{p.Name, p.SKU, p.ModelNumber}
	tokens := significantNameTokens(p.Name)
	if len(tokens) >= 2 {
		candidates = append(candidates, strings.Join(tokens[:2], " "))
	}
	if len(tokens) >= 3 {
		candidates = append(candidates, strings.Join(tokens[:3], " "))
	}

	for _, candidate := range candidates {
		candidate = strings.TrimSpace(strings.ToLower(candidate))
		if candidate == "" {
			continue
		}
		if strings.Contains(haystack, candidate) {
			return true
		}
	}
	return false
}

var quantityToken = regexp.MustCompile(`^\d+[a-záéíóöőúüű]+$`)

// significantNameTokens keeps name tokens longer than two characters,
// skipping quantity-style "digits plus letter" tokens like "10x" or "5m".
func significantNameTokens(name string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		if len([]rune(tok)) <= 2 {
			continue
		}
		if quantityToken.MatchString(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

var qaPhrases = []string{"gyakran ismételt kérdések", "gyakori kérdések"}

// hasQAIndicator detects a question/answer block in the description.
func hasQAIndicator(s string) bool {
	if strings.Contains(s, "?") {
		return true
	}
	lower := strings.ToLower(s)
	for _, phrase := range qaPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return strings.Contains(lower, "<h3")
}

var formattingMarkers = []string{
	"\n",
	"<p>", "</p>",
	"<h2>", "</h2>",
	"<h3>", "</h3>",
	"<ul>", "</ul>",
	"<li>", "</li>",
}

// hasFormattingIndicator detects structural formatting, matching both the
// raw tags and their entity-escaped spelling.
func hasFormattingIndicator(s string) bool {
	lower := strings.ToLower(s)
	decoded := decodeEntities(lower)
	for _, marker := range formattingMarkers {
		if strings.Contains(lower, marker) || strings.Contains(decoded, marker) {
			return true
		}
	}
	return false
}

// sectionCount counts <h2> sections. Opening tags may carry attributes and
// the description may arrive entity-escaped, so the maximum of the three
// spellings wins.
func sectionCount(s string) int {
	lower := strings.ToLower(s)
	open := strings.Count(lower, "<h2")
	closing := strings.Count(lower, "</h2>")
	escaped := strings.Count(lower, "&lt;h2")
	return max(open, closing, escaped)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
