package recipekeeper

import "errors"

type recordingPresenter struct {
	presented []Screen
	failOn    map[ScreenID]error
}

func (p *recordingPresenter) Present(screen Screen) error {
	if err := p.failOn[screen.ID]; err != nil {
		return err
	}
	p.presented = append(p.presented, screen)
	return nil
}

func (p *recordingPresenter) last() Screen {
	return p.presented[len(p.presented)-1]
}

type memoryStore struct {
	recipes   []Recipe
	removed   []Recipe
	loadErr   error
	removeErr error
}

func (s *memoryStore) LoadAll() ([]Recipe, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

func (s *memoryStore) Remove(r Recipe) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	for i := range s.recipes {
		if s.recipes[i].ID == r.ID {
			s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
			s.removed = append(s.removed, r)
			return nil
		}
	}
	return errRecipeMissing
}

func (s *memoryStore) Add(name, markdown string) (Recipe, error) {
	r := Recipe{ID: name, Name: name, Markdown: markdown}
	s.recipes = append(s.recipes, r)
	return r, nil
}

type scriptedPrompter struct {
	answer   bool
	confirms int
	alerts   []string
}

func (p *scriptedPrompter) Confirm(_, _ string) bool {
	p.confirms++
	return p.answer
}

func (p *scriptedPrompter) Alert(_, message string) {
	p.alerts = append(p.alerts, message)
}

var (
	errRecipeMissing = errors.New("recipe missing")
	errDiskFull      = errors.New("disk full")
	errNoDefinition  = errors.New("screen definition not found")
)

func recipes(names ...string) []Recipe {
	out := make([]Recipe, 0, len(names))
	for _, n := range names {
		out = append(out, Recipe{ID: n, Name: n, Markdown: "# " + n})
	}
	return out
}

type fixture struct {
	presenter *recordingPresenter
	store     *memoryStore
	prompter  *scriptedPrompter
	session   *Session
}

func newFixture(names ...string) *fixture {
	f := &fixture{
		presenter: &recordingPresenter{failOn: map[ScreenID]error{}},
		store:     &memoryStore{recipes: recipes(names...)},
		prompter:  &scriptedPrompter{answer: true},
	}
	f.session = NewSession(SessionOptions{
		Presenter: f.presenter,
		Store:     f.store,
		Prompter:  f.prompter,
	})
	return f
}

// onList starts the session and browses to the recipe list.
func (f *fixture) onList() *fixture {
	if err := f.session.Start(); err != nil {
		panic(err)
	}
	if err := f.session.Perform(Browse()); err != nil {
		panic(err)
	}
	return f
}
