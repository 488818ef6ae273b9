package tview

import (
	"embed"
	"fmt"
	"os"

	rk "github.com/boolean-maybe/recipekeeper/recipekeeper"
)

//go:embed screens/*.md
var builtinScreens embed.FS

// loadDefinition returns the markdown header of a screen. A configured path
// wins over the built-in file; a configured path that cannot be read is an
// error, never a silent fallback.
func loadDefinition(paths rk.ScreenPaths, id rk.ScreenID) (string, error) {
	if path := paths.Path(id); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s screen definition: %w", id, err)
		}
		return string(data), nil
	}

	data, err := builtinScreens.ReadFile("screens/" + id.String() + ".md")
	if err != nil {
		return "", fmt.Errorf("no definition for %s screen: %w", id, err)
	}
	return string(data), nil
}
