// Package tview presents recipe keeper screens in a terminal using rivo/tview.
//
// App implements both recipekeeper.Presenter and recipekeeper.Prompter.
// User actions run on a worker goroutine one at a time so that Confirm can
// block on a modal while the event loop keeps drawing. All widget changes go
// through Application.QueueUpdateDraw.
package tview

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	rk "github.com/boolean-maybe/recipekeeper/recipekeeper"
)

const pageScreen = "screen"

// Performer runs user actions. *recipekeeper.Session satisfies it.
type Performer interface {
	Perform(rk.Action) error
	Active() rk.Screen
	CanGoBack() bool
	CanGoForward() bool
}

// App is the terminal frontend.
type App struct {
	app       *tview.Application
	pages     *tview.Pages
	statusBar *tview.TextView

	cfg      rk.Config
	renderer rk.Renderer
	log      *zap.SugaredLogger

	performer Performer
	busy      atomic.Bool

	// focus is the primitive that receives input while no modal is shown.
	// Only touched on the event loop.
	focus tview.Primitive
}

var (
	_ rk.Presenter = (*App)(nil)
	_ rk.Prompter  = (*App)(nil)
)

// NewApp creates the frontend. Bind must be called before Run.
func NewApp(cfg rk.Config, renderer rk.Renderer, log *zap.SugaredLogger) *App {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if renderer == nil {
		renderer = rk.NewANSIRenderer(cfg.Style)
	}
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = rk.DefaultMinWidth
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = rk.DefaultMinHeight
	}

	statusBar := tview.NewTextView()
	statusBar.SetDynamicColors(true)
	statusBar.SetTextAlign(tview.AlignLeft)

	a := &App{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		statusBar: statusBar,
		cfg:       cfg,
		renderer:  renderer,
		log:       log,
	}

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(statusBar, 1, 0, false)
	a.app.SetRoot(root, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' && !a.modalOpen() {
			a.app.Stop()
			return nil
		}
		return event
	})
	return a
}

// Bind connects the frontend to the component that performs actions.
func (a *App) Bind(p Performer) {
	a.performer = p
	a.statusBar.SetText(statusText(p))
}

// Run starts the event loop and blocks until the user quits.
func (a *App) Run() error {
	return a.app.Run()
}

// Stop ends the event loop.
func (a *App) Stop() {
	a.app.Stop()
}

// Present builds the screen and swaps it in as the single visible page.
func (a *App) Present(screen rk.Screen) error {
	view, err := a.buildScreen(screen)
	if err != nil {
		return err
	}

	a.app.QueueUpdateDraw(func() {
		a.pages.AddAndSwitchToPage(pageScreen, centered(view.root, a.cfg.MinWidth, a.cfg.MinHeight), true)
		a.focus = view.focus
		a.app.SetFocus(view.focus)
	})
	a.log.Debugw("screen presented", "screen", screen.ID.String())
	return nil
}

// dispatch runs an action on the worker goroutine. Input that arrives while
// an action is in flight is dropped.
func (a *App) dispatch(action rk.Action) {
	if a.performer == nil {
		return
	}
	if !a.busy.CompareAndSwap(false, true) {
		a.log.Debugw("input dropped", "action", action.Kind.String())
		return
	}

	go func() {
		defer a.busy.Store(false)
		_ = a.performer.Perform(action)
		status := statusText(a.performer)
		a.app.QueueUpdateDraw(func() {
			a.statusBar.SetText(status)
		})
	}()
}

// centered places p in a fixed width x height box in the middle of the page.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}

// statusText renders the status line for the performer's current state.
func statusText(p Performer) string {
	if p == nil {
		return ""
	}

	keyColor := "gray"
	activeColor := "white"
	status := fmt.Sprintf(" [yellow]%s[-] | Back:", screenLabel(p.Active().ID))
	if p.CanGoBack() {
		status += fmt.Sprintf("[%s]◀[-]", activeColor)
	} else {
		status += "[gray]◀[-]"
	}
	status += " Fwd:"
	if p.CanGoForward() {
		status += fmt.Sprintf("[%s]▶[-]", activeColor)
	} else {
		status += "[gray]▶[-]"
	}
	status += fmt.Sprintf(" | Nav:[%s]←/→[-] Quit:[%s]q[-]", keyColor, keyColor)
	return status
}

func screenLabel(id rk.ScreenID) string {
	switch id {
	case rk.ScreenWelcome:
		return "Welcome"
	case rk.ScreenSearchList:
		return "Recipes"
	case rk.ScreenReadView:
		return "View Mode"
	default:
		return id.String()
	}
}
