package recipekeeper

import (
	"go.uber.org/zap"
)

const (
	deleteTitle   = "Notice"
	deleteMessage = "Are you sure to delete this recipe?"
)

// Coordinator decides how each user action moves between screens.
//
// Every operation receives the shared history and the active screen and
// returns the screen that should become active. Transitions are
// all-or-nothing: the destination is presented before history is touched,
// so a failed presentation leaves history and the active screen as they were.
type Coordinator struct {
	presenter Presenter
	store     RecipeStore
	prompter  Prompter
	log       *zap.SugaredLogger
}

// NewCoordinator creates a coordinator. A nil logger disables logging.
func NewCoordinator(presenter Presenter, store RecipeStore, prompter Prompter, log *zap.SugaredLogger) *Coordinator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Coordinator{
		presenter: presenter,
		store:     store,
		prompter:  prompter,
		log:       log,
	}
}

func (c *Coordinator) present(screen Screen) error {
	if err := c.presenter.Present(screen); err != nil {
		return &PresentationError{Screen: screen.ID, Err: err}
	}
	return nil
}

// Browse loads every recipe and moves from the welcome screen to the list.
func (c *Coordinator) Browse(h *NavigationHistory[ScreenID], cur Screen) (Screen, error) {
	if cur.ID != ScreenWelcome {
		return cur, ErrActionUnavailable
	}

	recipes, err := c.store.LoadAll()
	if err != nil {
		return cur, &StorageError{Op: "load", Err: err}
	}
	if recipes == nil {
		recipes = []Recipe{}
	}

	ctx := NavigationContext{Recipes: recipes, SelectionIndex: -1}
	if len(recipes) > 0 {
		ctx.SelectionIndex = 0
	}
	next := Screen{ID: ScreenSearchList, Context: ctx}
	if err := c.present(next); err != nil {
		return cur, err
	}

	h.Push(ScreenWelcome)
	return next, nil
}

// Open shows the recipe at index in the read view.
func (c *Coordinator) Open(h *NavigationHistory[ScreenID], cur Screen, index int) (Screen, error) {
	if cur.ID != ScreenSearchList {
		return cur, ErrActionUnavailable
	}
	recipes := cur.Context.Recipes
	if index < 0 || index >= len(recipes) {
		return cur, ErrNoSelection
	}

	ctx := cur.Context.Clone()
	selected := recipes[index]
	ctx.Selected = &selected
	ctx.SelectionIndex = index
	next := Screen{ID: ScreenReadView, Context: ctx}
	if err := c.present(next); err != nil {
		return cur, err
	}

	h.Push(ScreenSearchList)
	return next, nil
}

// Delete removes the recipe at index from storage and refreshes the list in place.
// History is never touched. A declined confirmation leaves everything unchanged.
//
// Unlike the other transitions Delete is not all-or-nothing once storage has
// changed: if the refreshed list cannot be presented, the returned screen
// still carries the shortened collection together with the PresentationError.
func (c *Coordinator) Delete(h *NavigationHistory[ScreenID], cur Screen, index int) (Screen, error) {
	if cur.ID != ScreenSearchList {
		return cur, ErrActionUnavailable
	}
	recipes := cur.Context.Recipes
	if len(recipes) == 0 {
		return cur, ErrEmptyCollection
	}
	if index < 0 || index >= len(recipes) {
		return cur, ErrNoSelection
	}

	if !c.prompter.Confirm(deleteTitle, deleteMessage) {
		c.log.Debugw("delete declined", "recipe", recipes[index].ID)
		return cur, nil
	}

	victim := recipes[index]
	if err := c.store.Remove(victim); err != nil {
		return cur, &StorageError{Op: "remove", Err: err}
	}

	next := Screen{ID: ScreenSearchList, Context: withoutRecipe(cur.Context, index)}
	return next, c.present(next)
}

func withoutRecipe(ctx NavigationContext, index int) NavigationContext {
	out := ctx.Clone()
	removed := out.Recipes[index]
	out.Recipes = append(out.Recipes[:index], out.Recipes[index+1:]...)

	if out.Selected != nil && out.Selected.ID == removed.ID {
		out.Selected = nil
	}
	// the index names the remembered recipe while one is carried
	if out.Selected != nil {
		out.SelectionIndex = indexOf(out.Recipes, out.Selected.ID)
		return out
	}
	switch {
	case len(out.Recipes) == 0:
		out.SelectionIndex = -1
	case index >= len(out.Recipes):
		out.SelectionIndex = len(out.Recipes) - 1
	default:
		out.SelectionIndex = index
	}
	return out
}

// Backward returns to the most recent screen on the backward stack.
// Leaving the read view records it on the forward stack so it can be re-entered.
func (c *Coordinator) Backward(h *NavigationHistory[ScreenID], cur Screen) (Screen, error) {
	id, err := h.PeekBackward()
	if err != nil {
		return cur, err
	}

	next, err := destination(id, cur.Context)
	if err != nil {
		return cur, err
	}
	if err := c.present(next); err != nil {
		return cur, err
	}

	_, _ = h.PopBackward()
	if cur.ID == ScreenReadView {
		h.PushForward(ScreenReadView)
	}
	return next, nil
}

// Forward re-enters the most recent screen on the forward stack. Only the
// read view can be re-entered; any other entry is reported and left in place.
func (c *Coordinator) Forward(h *NavigationHistory[ScreenID], cur Screen) (Screen, error) {
	if cur.ID == ScreenWelcome {
		return cur, ErrActionUnavailable
	}
	id, err := h.PeekForward()
	if err != nil {
		return cur, err
	}
	if id != ScreenReadView {
		return cur, ErrForwardUnsupported
	}

	next, err := destination(id, cur.Context)
	if err != nil {
		return cur, err
	}
	if err := c.present(next); err != nil {
		return cur, err
	}

	_, _ = h.PopForward()
	h.PushBackward(cur.ID)
	return next, nil
}

// destination builds the screen for a history entry, carrying what the
// active screen remembers.
func destination(id ScreenID, ctx NavigationContext) (Screen, error) {
	switch id {
	case ScreenWelcome:
		return Screen{ID: ScreenWelcome, Context: EmptyContext()}, nil
	case ScreenSearchList:
		return Screen{ID: ScreenSearchList, Context: ctx.Clone()}, nil
	case ScreenReadView:
		if ctx.Selected == nil {
			return Screen{}, ErrNoSelection
		}
		out := ctx.Clone()
		if out.Recipes != nil {
			i := indexOf(out.Recipes, out.Selected.ID)
			if i < 0 {
				return Screen{}, ErrNoSelection
			}
			out.SelectionIndex = i
		}
		return Screen{ID: ScreenReadView, Context: out}, nil
	default:
		return Screen{}, ErrForwardUnsupported
	}
}

// indexOf returns the position of the recipe with id, or -1.
func indexOf(recipes []Recipe, id string) int {
	for i, r := range recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}
