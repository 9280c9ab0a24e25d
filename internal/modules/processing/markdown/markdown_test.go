package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"heading", "# Titre", "<h1>Titre</h1>"},
		{"emphasis", "du texte *important*", "<em>important</em>"},
		{"strikethrough", "~~rayé~~", "<del>rayé</del>"},
		{"autolink", "voir https://example.com", `<a href="https://example.com">`},
		{"table", "| a | b |\n| - | - |\n| 1 | 2 |", "<table>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHTML(tt.source)
			if !strings.Contains(got, tt.want) {
				t.Fatalf("ToHTML(%q) = %q, want it to contain %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestToHTMLEmptySource(t *testing.T) {
	if got := ToHTML(""); strings.TrimSpace(got) != "" {
		t.Fatalf("empty source rendered %q", got)
	}
}
