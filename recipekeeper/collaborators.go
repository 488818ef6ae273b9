package recipekeeper

// Presenter renders a screen into the application's single window,
// replacing its contents.
type Presenter interface {
	Present(screen Screen) error
}

// RecipeStore loads and removes recipes.
type RecipeStore interface {
	LoadAll() ([]Recipe, error)
	Remove(r Recipe) error
	Add(name, markdown string) (Recipe, error)
}

// Prompter asks the user questions and shows notices.
// Confirm blocks the calling action until the user answers.
type Prompter interface {
	Confirm(title, message string) bool
	Alert(title, message string)
}
