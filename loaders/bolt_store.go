package loaders

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"

	"github.com/boolean-maybe/recipekeeper/recipekeeper"
)

const bucketRecipes = "recipes"

// boltRecord is the stored form of a recipe. Keys are insertion sequence
// numbers, so iteration order is insertion order.
type boltRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Markdown string `yaml:"markdown"`
}

// BoltStore implements recipekeeper.RecipeStore on a bbolt database file.
type BoltStore struct {
	db   *bolt.DB
	path string
}

var _ recipekeeper.RecipeStore = (*BoltStore)(nil)

// OpenBoltStore opens (or creates) the database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRecipes))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize recipe database: %w", err)
	}
	return &BoltStore{db: db, path: path}, nil
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// LoadAll returns all recipes in insertion order.
func (s *BoltStore) LoadAll() ([]recipekeeper.Recipe, error) {
	var recipes []recipekeeper.Recipe
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketRecipes)).ForEach(func(_, v []byte) error {
			var rec boltRecord
			if err := yaml.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to decode recipe record: %w", err)
			}
			recipes = append(recipes, s.toRecipe(rec))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Remove deletes the record holding r.ID.
func (s *BoltStore) Remove(r recipekeeper.Recipe) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecipes))
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var rec boltRecord
			if err := yaml.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to decode recipe record: %w", err)
			}
			if rec.ID == r.ID {
				return c.Delete()
			}
		}
		return fmt.Errorf("remove %q: %w", r.ID, ErrRecipeNotFound)
	})
}

// Add stores a new recipe under a fresh UUID.
func (s *BoltStore) Add(name, markdown string) (recipekeeper.Recipe, error) {
	rec := boltRecord{ID: uuid.NewString(), Name: name, Markdown: markdown}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return recipekeeper.Recipe{}, fmt.Errorf("failed to encode recipe record: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecipes))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	if err != nil {
		return recipekeeper.Recipe{}, fmt.Errorf("failed to store recipe: %w", err)
	}
	return s.toRecipe(rec), nil
}

func (s *BoltStore) toRecipe(rec boltRecord) recipekeeper.Recipe {
	r := recipekeeper.ParseRecipe(rec.ID, "", []byte(rec.Markdown))
	// without a heading ParseRecipe falls back to the ID
	if r.Name == rec.ID && rec.Name != "" {
		r.Name = rec.Name
	}
	r.Source = s.path
	return r
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
