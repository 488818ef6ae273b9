package loaders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/boolean-maybe/recipekeeper/recipekeeper"
)

// FileStore implements recipekeeper.RecipeStore over a directory of markdown
// files. A recipe's ID is its file name.
type FileStore struct {
	dir string
}

var _ recipekeeper.RecipeStore = (*FileStore)(nil)

// NewFileStore opens dir as a recipe directory, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipe directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create recipe directory: %w", err)
	}
	return &FileStore{dir: abs}, nil
}

// Dir returns the absolute recipe directory.
func (f *FileStore) Dir() string { return f.dir }

// LoadAll reads every markdown file in the directory, ordered by file name.
func (f *FileStore) LoadAll() ([]recipekeeper.Recipe, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]recipekeeper.Recipe, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdownFile(entry.Name()) {
			continue
		}
		path := filepath.Join(f.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read recipe %s: %w", entry.Name(), err)
		}
		recipes = append(recipes, recipekeeper.ParseRecipe(entry.Name(), path, data))
	}
	return recipes, nil
}

// Remove deletes the recipe's file.
func (f *FileStore) Remove(r recipekeeper.Recipe) error {
	path, err := resolveInDir(f.dir, r.ID)
	if err != nil {
		return fmt.Errorf("remove %q: %w", r.ID, err)
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %q: %w", r.ID, ErrRecipeNotFound)
		}
		return fmt.Errorf("failed to remove recipe file: %w", err)
	}
	return nil
}

// Add writes markdown to a new file named after the recipe. Existing files
// are never overwritten; a numeric suffix is added instead.
func (f *FileStore) Add(name, markdown string) (recipekeeper.Recipe, error) {
	base := slugify(name)
	if base == "" {
		base = "recipe"
	}

	for i := 1; ; i++ {
		fileName := base + ".md"
		if i > 1 {
			fileName = base + "-" + strconv.Itoa(i) + ".md"
		}
		path, err := resolveInDir(f.dir, fileName)
		if err != nil {
			return recipekeeper.Recipe{}, err
		}

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return recipekeeper.Recipe{}, fmt.Errorf("failed to create recipe file: %w", err)
		}

		_, werr := file.WriteString(markdown)
		cerr := file.Close()
		if werr != nil || cerr != nil {
			_ = os.Remove(path)
			return recipekeeper.Recipe{}, fmt.Errorf("failed to write recipe file: %w", errors.Join(werr, cerr))
		}
		return recipekeeper.ParseRecipe(fileName, path, []byte(markdown)), nil
	}
}
