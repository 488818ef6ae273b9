package recipekeeper

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// Renderer turns markdown into terminal output.
type Renderer interface {
	Render(markdown string, width int) (string, error)
}

// ANSIRenderer renders markdown to ANSI using glamour.
type ANSIRenderer struct {
	style ansi.StyleConfig
}

func uintPtr(v uint) *uint {
	return &v
}

// NewANSIRenderer creates a renderer with the given style name: "dark",
// "light" or "auto". "auto" reads the terminal background from COLORFGBG.
func NewANSIRenderer(styleName string) *ANSIRenderer {
	var style ansi.StyleConfig

	switch styleName {
	case "light":
		style = styles.LightStyleConfig
	case "auto":
		style = detectStyleFromEnvironment()
	default:
		style = styles.DarkStyleConfig
	}

	// the screen box already has a border
	style.Document.Margin = uintPtr(0)
	style.CodeBlock.Margin = uintPtr(0)

	return &ANSIRenderer{style: style}
}

// detectStyleFromEnvironment picks light or dark from COLORFGBG
// ("foreground;background"). Background colors 8-15 are bright.
func detectStyleFromEnvironment() ansi.StyleConfig {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) < 2 {
		return styles.DarkStyleConfig
	}
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return styles.DarkStyleConfig
	}
	if bg >= 8 {
		return styles.LightStyleConfig
	}
	return styles.DarkStyleConfig
}

// Render wraps at width columns; width <= 0 disables wrapping.
// On failure the raw markdown is returned together with the error.
func (r *ANSIRenderer) Render(markdown string, width int) (string, error) {
	if width < 0 {
		width = 0
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown, err
	}

	out, err := tr.Render(markdown)
	if err != nil {
		return markdown, err
	}
	return strings.Trim(out, "\n"), nil
}
