package service

import (
	"strings"
	"testing"

	"webshop-seo/internal/domain"
)

func TestMatchesNameOrIdentifier(t *testing.T) {
	product := domain.Product{
		Name:        "Bosch GSR 12V Akkus Csavarozó",
		SKU:         "BSH-GSR12",
		ModelNumber: "GSR12V-15",
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "full name case-insensitive",
			text: "A bosch gsr 12v akkus csavarozó kiváló választás.",
			want: true,
		},
		{
			name: "full name behind html entities",
			text: "Ajánljuk: &quot;Bosch GSR 12V Akkus Csavarozó&quot; műhelybe.",
			want: true,
		},
		{
			name: "sku match",
			text: "Cikkszám: BSH-GSR12, raktáron.",
			want: true,
		},
		{
			name: "model number match",
			text: "A GSR12V-15 típus utódja.",
			want: true,
		},
		{
			name: "first two significant tokens",
			text: "A bosch gsr fúrócsavarozók családjába tartozik.",
			want: true,
		},
		{
			name: "no match",
			text: "Általános leírás mindenféle termékről.",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesNameOrIdentifier(tt.text, product); got != tt.want {
				t.Fatalf("matchesNameOrIdentifier(%q) = %t; want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestSignificantNameTokens(t *testing.T) {
	// Short tokens and quantity-style tokens are skipped.
	got := significantNameTokens("Philips Hue 2x E27 10m LED szett")
	want := []string{"philips", "hue", "e27", "led", "szett"}
	if len(got) != len(want) {
		t.Fatalf("significantNameTokens = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("significantNameTokens = %v; want %v", got, want)
		}
	}
}

func TestHasQAIndicator(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "question mark", text: "Mire jó ez a termék?", want: true},
		{name: "faq phrase long", text: "Gyakran Ismételt Kérdések a termékről", want: true},
		{name: "faq phrase short", text: "GYAKORI KÉRDÉSEK", want: true},
		{name: "h3 heading", text: "bevezető <h3>Részletek</h3>", want: true},
		{name: "plain text", text: "Egyszerű leírás.", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasQAIndicator(tt.text); got != tt.want {
				t.Fatalf("hasQAIndicator(%q) = %t; want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasFormattingIndicator(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "paragraph tag", text: "<p>szöveg</p>", want: true},
		{name: "uppercase tag", text: "<UL><LI>elem</LI></UL>", want: true},
		{name: "escaped tag", text: "&lt;p&gt;szöveg&lt;/p&gt;", want: true},
		{name: "newline", text: "első sor\nmásodik sor", want: true},
		{name: "flat text", text: "sima szöveg tagek nélkül", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasFormattingIndicator(tt.text); got != tt.want {
				t.Fatalf("hasFormattingIndicator(%q) = %t; want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestSectionCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "opening tags with attributes",
			text: `<h2 class="a">Egy</h2><h2>Kettő</h2><h2>Három</h2>`,
			want: 3,
		},
		{
			name: "escaped sections",
			text: "&lt;h2&gt;Egy&lt;/h2&gt;&lt;h2&gt;Kettő&lt;/h2&gt;",
			want: 2,
		},
		{
			name: "maximum of spellings wins",
			text: "<h2>Egy</h2></h2></h2>",
			want: 3,
		},
		{name: "no sections", text: "sima szöveg", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sectionCount(tt.text); got != tt.want {
				t.Fatalf("sectionCount(%q) = %d; want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestRenderMetaDescription(t *testing.T) {
	product := domain.Product{
		Name:        "Bosch GSR",
		SKU:         "BSH-1",
		ModelNumber: "GSR12",
	}

	got := renderMetaDescription("[PRODUCT] ([SKU], [SERIAL]) a [CATEGORY] kategóriában [PRICE] áron.", product)
	want := "Bosch GSR (BSH-1, GSR12) a kategória kategóriában 12 345 Ft áron."
	if got != want {
		t.Fatalf("renderMetaDescription = %q; want %q", got, want)
	}
}

func TestPlaceholderDetection(t *testing.T) {
	if !hasDescriptionPlaceholder("Vásárolja meg: [PRODUCT] most!") {
		t.Fatal("expected [PRODUCT] to be detected in description context")
	}
	if hasDescriptionPlaceholder("Kategória: [CATEGORY]") {
		t.Fatal("[CATEGORY] is not a description placeholder")
	}
	if !hasMetaTitlePlaceholder("Olcsó [CATEGORY] webáruház") {
		t.Fatal("expected [CATEGORY] to be detected in meta title context")
	}
}

func TestHasMetaKeyword(t *testing.T) {
	if !hasMetaKeyword("Ingyenes szállítás minden rendelésre") {
		t.Fatal("expected marketing keyword match")
	}
	if !hasMetaKeyword(strings.ToUpper("2 év garancia")) {
		t.Fatal("expected case-insensitive keyword match")
	}
	if hasMetaKeyword("semleges leírás") {
		t.Fatal("unexpected keyword match")
	}
}
