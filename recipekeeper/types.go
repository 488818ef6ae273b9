package recipekeeper

// ScreenID names one of the application's screen definitions.
type ScreenID int

const (
	ScreenWelcome ScreenID = iota
	ScreenSearchList
	ScreenReadView
)

// String returns the stable key of the screen, used in logs and config.
func (id ScreenID) String() string {
	switch id {
	case ScreenWelcome:
		return "welcome"
	case ScreenSearchList:
		return "search"
	case ScreenReadView:
		return "read"
	default:
		return "unknown"
	}
}

// Recipe is a single stored recipe.
type Recipe struct {
	ID       string // store key
	Name     string // first level-1 heading, or the file name
	Summary  string // first paragraph
	Markdown string
	Source   string // file path or store location
}

// NavigationContext is the payload threaded into a destination screen.
//
// Selected is nil when no recipe is carried, Recipes is nil when no
// collection is carried and SelectionIndex is -1 when nothing is selected.
type NavigationContext struct {
	Selected       *Recipe
	Recipes        []Recipe
	SelectionIndex int
}

// EmptyContext returns a context that carries nothing.
func EmptyContext() NavigationContext {
	return NavigationContext{SelectionIndex: -1}
}

// Clone returns a copy that shares no mutable state with c.
func (c NavigationContext) Clone() NavigationContext {
	out := NavigationContext{SelectionIndex: c.SelectionIndex}
	if c.Selected != nil {
		r := *c.Selected
		out.Selected = &r
	}
	if c.Recipes != nil {
		out.Recipes = make([]Recipe, len(c.Recipes))
		copy(out.Recipes, c.Recipes)
	}
	return out
}

// Screen is the active screen of a session: which definition is shown and
// the context it was initialized with.
type Screen struct {
	ID      ScreenID
	Context NavigationContext
}

// ActionKind enumerates the user actions a session understands.
type ActionKind int

const (
	ActionBrowse ActionKind = iota
	ActionOpen
	ActionDelete
	ActionBackward
	ActionForward
)

func (k ActionKind) String() string {
	switch k {
	case ActionBrowse:
		return "browse"
	case ActionOpen:
		return "open"
	case ActionDelete:
		return "delete"
	case ActionBackward:
		return "backward"
	case ActionForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Action is a user-triggered navigation request. Index is the list selection
// for open and delete, -1 when nothing is selected.
type Action struct {
	Kind  ActionKind
	Index int
}

// Browse, Open, Delete, Backward and Forward build the corresponding actions.
func Browse() Action          { return Action{Kind: ActionBrowse, Index: -1} }
func Open(index int) Action   { return Action{Kind: ActionOpen, Index: index} }
func Delete(index int) Action { return Action{Kind: ActionDelete, Index: index} }
func Backward() Action        { return Action{Kind: ActionBackward, Index: -1} }
func Forward() Action         { return Action{Kind: ActionForward, Index: -1} }
