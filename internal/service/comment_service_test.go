package service

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short content untouched", "hello", "hello"},
		{"ascii at limit", strings.Repeat("a", 80), strings.Repeat("a", 80)},
		{"ascii over limit", strings.Repeat("a", 100), strings.Repeat("a", 80)},
		{"multi-byte over limit", strings.Repeat("é", 100), strings.Repeat("é", 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preview(tt.content)
			if got != tt.want {
				t.Fatalf("preview(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestPreviewKeepsValidUTF8(t *testing.T) {
	// 2-byte runes straddling the 80-byte mark must not be split.
	for _, content := range []string{
		strings.Repeat("é", 200),
		strings.Repeat("a", 79) + strings.Repeat("é", 10),
		strings.Repeat("世", 50),
	} {
		got := preview(content)
		if !utf8.ValidString(got) {
			t.Fatalf("preview produced invalid UTF-8 from %q: %q", content, got)
		}
	}
}
