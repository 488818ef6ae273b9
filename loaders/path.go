package loaders

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
)

var (
	// ErrOutsideStore is returned when a recipe name would resolve outside the store directory.
	ErrOutsideStore = errors.New("path escapes recipe directory")
	// ErrRecipeNotFound is returned when removing a recipe the store does not hold.
	ErrRecipeNotFound = errors.New("recipe not found")
)

// resolveInDir joins a recipe file name onto dir. Only plain file names are
// accepted: no separators, no parent references, no absolute paths.
func resolveInDir(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", ErrOutsideStore
	}
	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) {
		return "", ErrOutsideStore
	}

	candidate := filepath.Join(dir, name)
	rel, err := filepath.Rel(dir, candidate)
	if err != nil || rel != name {
		return "", ErrOutsideStore
	}
	return candidate, nil
}

// slugify converts a recipe name into a file-name-safe slug.
// Example: "Mom's Apple Pie" → "moms-apple-pie"
func slugify(name string) string {
	var b strings.Builder
	lastDash := false

	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		default:
			// skip punctuation, symbols, emoji, etc.
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func isMarkdownFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
