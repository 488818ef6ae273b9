package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/boolean-maybe/recipekeeper/internal/applog"
	"github.com/boolean-maybe/recipekeeper/loaders"
	"github.com/boolean-maybe/recipekeeper/recipekeeper"
	tviewAdapter "github.com/boolean-maybe/recipekeeper/recipekeeper/tview"
)

const appName = "recipekeeper"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	storeKind := fs.String("store", "", "recipe store: files or bolt")
	dir := fs.String("dir", "", "recipe directory (files) or database file (bolt)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [import <file.md|url>...]\n", appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := recipekeeper.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *storeKind != "" {
		cfg.Store = *storeKind
	}
	if *dir != "" {
		if cfg.Store == recipekeeper.StoreBolt {
			cfg.BoltPath = *dir
		} else {
			cfg.RecipeDir = *dir
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	applog.Init(appName)
	defer applog.Sync()
	log := applog.L()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if rest := fs.Args(); len(rest) > 0 {
		if rest[0] != "import" {
			fs.Usage()
			return fmt.Errorf("unknown command %q", rest[0])
		}
		return importRecipes(store, rest[1:], out)
	}

	app := tviewAdapter.NewApp(cfg, recipekeeper.NewANSIRenderer(cfg.Style), log)
	session := recipekeeper.NewSession(recipekeeper.SessionOptions{
		Config:    cfg,
		Presenter: app,
		Store:     store,
		Prompter:  app,
		Logger:    log,
	})
	app.Bind(session)

	if err := session.Start(); err != nil {
		return fmt.Errorf("failed to show welcome screen: %w", err)
	}
	if err := app.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	log.Infow("session ended")
	return nil
}

// openStore opens the configured recipe store. The returned func releases it.
func openStore(cfg recipekeeper.Config) (recipekeeper.RecipeStore, func(), error) {
	switch cfg.Store {
	case recipekeeper.StoreBolt:
		s, err := loaders.OpenBoltStore(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case recipekeeper.StoreFiles:
		s, err := loaders.NewFileStore(cfg.RecipeDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", recipekeeper.ErrUnknownStore, cfg.Store)
	}
}

// importRecipes adds each markdown file or URL to the store, named after
// its base name.
func importRecipes(store recipekeeper.RecipeStore, paths []string, out io.Writer) error {
	if len(paths) == 0 {
		return errors.New("import: no files given")
	}

	src := &loaders.Source{}
	var errs []error
	for _, path := range paths {
		markdown, name, err := src.Fetch(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("import %s: %w", path, err))
			continue
		}
		r, err := store.Add(name, markdown)
		if err != nil {
			errs = append(errs, fmt.Errorf("import %s: %w", path, err))
			continue
		}
		applog.L().Infow("recipe imported", "path", path, "id", r.ID, "name", r.Name)
		fmt.Fprintf(out, "imported %s as %q\n", path, r.Name)
	}
	return errors.Join(errs...)
}
