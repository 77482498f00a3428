package viz

import (
	"strings"
	"testing"
)

func TestGradientText(t *testing.T) {
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("expected empty output for empty text")
	}
	out := GradientText("abc", "#000000", "#ffffff")
	for _, r := range "abc" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("expected %q in gradient output", r)
		}
	}
}

func TestSeparator(t *testing.T) {
	s := NewStyles(ThemeMinimal)
	if got := Separator(20, s.Muted); !strings.Contains(got, "◆") {
		t.Errorf("expected ornament in wide separator, got %q", got)
	}
	if got := Separator(4, s.Muted); strings.Contains(got, "◆") {
		t.Errorf("narrow separator should be plain, got %q", got)
	}
}
