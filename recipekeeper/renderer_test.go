package recipekeeper

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/glamour/styles"
)

var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestNewANSIRenderer_Styles(t *testing.T) {
	tests := []struct {
		name      string
		styleName string
		wantDark  bool
	}{
		{"dark style", "dark", true},
		{"light style", "light", false},
		{"unknown defaults to dark", "unknown", true},
		{"empty defaults to dark", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewANSIRenderer(tt.styleName)

			isDark := r.style.Document.Color == styles.DarkStyleConfig.Document.Color
			if isDark != tt.wantDark {
				t.Errorf("got dark=%v, want dark=%v", isDark, tt.wantDark)
			}
			if r.style.Document.Margin == nil || *r.style.Document.Margin != 0 {
				t.Error("Document.Margin should be cleared")
			}
			if r.style.CodeBlock.Margin == nil || *r.style.CodeBlock.Margin != 0 {
				t.Error("CodeBlock.Margin should be cleared")
			}
		})
	}
}

func TestDetectStyleFromEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		colorfgbg string
		wantDark  bool
	}{
		{"light background (15)", "0;15", false},
		{"dark background (0)", "15;0", true},
		{"light background (8)", "0;8", false},
		{"missing env", "", true},
		{"invalid format", "invalid", true},
		{"extra semicolons", "0;1;15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorfgbg)

			style := detectStyleFromEnvironment()
			isDark := style.Document.Color == styles.DarkStyleConfig.Document.Color
			if isDark != tt.wantDark {
				t.Errorf("got dark=%v, want dark=%v", isDark, tt.wantDark)
			}
		})
	}
}

func TestANSIRenderer_RendersRecipeText(t *testing.T) {
	r := NewANSIRenderer("dark")

	out, err := r.Render("# Pancakes\n\nWhisk the eggs.\n", 60)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	plain := sgrPattern.ReplaceAllString(out, "")
	for _, want := range []string{"Pancakes", "Whisk the eggs."} {
		if !strings.Contains(plain, want) {
			t.Errorf("rendered output missing %q:\n%s", want, plain)
		}
	}
}
