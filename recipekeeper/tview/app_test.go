package tview

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/require"

	rk "github.com/boolean-maybe/recipekeeper/recipekeeper"
)

type fakePerformer struct {
	active  rk.Screen
	back    bool
	forward bool

	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (f *fakePerformer) Perform(rk.Action) error {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return nil
}

func (f *fakePerformer) Active() rk.Screen  { return f.active }
func (f *fakePerformer) CanGoBack() bool    { return f.back }
func (f *fakePerformer) CanGoForward() bool { return f.forward }

func newTestApp(cfg rk.Config) *App {
	return NewApp(cfg, rk.NewANSIRenderer("dark"), nil)
}

func TestLoadDefinition_Builtin(t *testing.T) {
	for _, id := range []rk.ScreenID{rk.ScreenWelcome, rk.ScreenSearchList, rk.ScreenReadView} {
		def, err := loadDefinition(rk.ScreenPaths{}, id)
		require.NoError(t, err, "screen %s", id)
		require.NotEmpty(t, strings.TrimSpace(def), "screen %s", id)
	}
}

func TestLoadDefinition_ConfiguredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome.md")
	require.NoError(t, os.WriteFile(path, []byte("# My Kitchen"), 0o644))

	def, err := loadDefinition(rk.ScreenPaths{Welcome: path}, rk.ScreenWelcome)
	require.NoError(t, err)
	require.Equal(t, "# My Kitchen", def)

	// other screens keep the built-in definition
	_, err = loadDefinition(rk.ScreenPaths{Welcome: path}, rk.ScreenSearchList)
	require.NoError(t, err)
}

func TestPresent_MissingDefinition(t *testing.T) {
	cfg := rk.DefaultConfig()
	cfg.Screens.Read = filepath.Join(t.TempDir(), "missing.md")
	app := newTestApp(cfg)

	recipe := rk.Recipe{ID: "soup.md", Name: "Soup", Markdown: "# Soup"}
	err := app.Present(rk.Screen{
		ID:      rk.ScreenReadView,
		Context: rk.NavigationContext{Selected: &recipe, SelectionIndex: 0},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestBuildScreen_ReadViewNeedsRecipe(t *testing.T) {
	app := newTestApp(rk.DefaultConfig())

	_, err := app.buildScreen(rk.Screen{ID: rk.ScreenReadView, Context: rk.EmptyContext()})
	require.ErrorIs(t, err, rk.ErrNoSelection)
}

func TestBuildScreen_SearchListSelection(t *testing.T) {
	app := newTestApp(rk.DefaultConfig())

	ctx := rk.NavigationContext{
		Recipes: []rk.Recipe{
			{ID: "a", Name: "Apple Pie", Summary: "Sweet."},
			{ID: "b", Name: "Bread", Summary: "Crusty."},
		},
		SelectionIndex: 1,
	}
	view, err := app.buildScreen(rk.Screen{ID: rk.ScreenSearchList, Context: ctx})
	require.NoError(t, err)

	list, ok := view.focus.(*tview.List)
	require.True(t, ok, "search screen focus is %T", view.focus)
	require.Equal(t, 2, list.GetItemCount())
	require.Equal(t, 1, list.GetCurrentItem())

	main, secondary := list.GetItemText(0)
	require.Equal(t, "Apple Pie", main)
	require.Equal(t, "Sweet.", secondary)
}

func TestBuildScreen_ReadViewShowsRecipe(t *testing.T) {
	app := newTestApp(rk.DefaultConfig())

	recipe := rk.Recipe{ID: "p", Name: "Pancakes", Markdown: "# Pancakes\n\nWhisk the eggs."}
	view, err := app.buildScreen(rk.Screen{
		ID:      rk.ScreenReadView,
		Context: rk.NavigationContext{Selected: &recipe, SelectionIndex: 0},
	})
	require.NoError(t, err)

	body, ok := view.focus.(*tview.TextView)
	require.True(t, ok, "read screen focus is %T", view.focus)
	require.Contains(t, body.GetText(true), "Whisk the eggs.")
}

func TestStatusText(t *testing.T) {
	p := &fakePerformer{active: rk.Screen{ID: rk.ScreenReadView}, back: true}
	status := statusText(p)

	require.Contains(t, status, "View Mode")
	require.Contains(t, status, "[white]◀[-]")
	require.Contains(t, status, "[gray]▶[-]")
	require.Equal(t, "", statusText(nil))
}

func TestDispatch_DropsInputWhileBusy(t *testing.T) {
	app := newTestApp(rk.DefaultConfig())
	p := &fakePerformer{
		active:  rk.Screen{ID: rk.ScreenWelcome},
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	app.Bind(p)

	app.dispatch(rk.Browse())
	<-p.started

	app.dispatch(rk.Browse())
	app.dispatch(rk.Backward())

	close(p.release)
	require.Eventually(t, func() bool { return !app.busy.Load() }, time.Second, 5*time.Millisecond)
	require.EqualValues(t, 1, p.calls.Load())

	p.started = nil
	app.dispatch(rk.Forward())
	require.Eventually(t, func() bool { return p.calls.Load() == 2 && !app.busy.Load() }, time.Second, 5*time.Millisecond)
}

func TestWelcomeScreen_IgnoresHistoryKeys(t *testing.T) {
	app := newTestApp(rk.DefaultConfig())
	p := &fakePerformer{active: rk.Screen{ID: rk.ScreenWelcome}}
	app.Bind(p)

	view, err := app.buildScreen(rk.Screen{ID: rk.ScreenWelcome, Context: rk.EmptyContext()})
	require.NoError(t, err)
	tv, ok := view.focus.(*tview.TextView)
	require.True(t, ok, "welcome focus is %T", view.focus)
	capture := tv.GetInputCapture()

	for _, key := range []tcell.Key{tcell.KeyRight, tcell.KeyLeft} {
		event := tcell.NewEventKey(key, 0, tcell.ModNone)
		require.Same(t, event, capture(event), "key %v should pass through", key)
	}
	require.False(t, app.busy.Load(), "no action should be dispatched")
	require.EqualValues(t, 0, p.calls.Load())
}
