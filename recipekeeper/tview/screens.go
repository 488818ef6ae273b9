package tview

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	rk "github.com/boolean-maybe/recipekeeper/recipekeeper"
)

const appTitle = "Recipe Keeper"

// screenView is a built screen: root goes into the page, focus gets input.
type screenView struct {
	root  tview.Primitive
	focus tview.Primitive
}

// buildScreen loads the screen definition and builds the primitive for it.
// It does not touch the running application.
func (a *App) buildScreen(screen rk.Screen) (screenView, error) {
	def, err := loadDefinition(a.cfg.Screens, screen.ID)
	if err != nil {
		return screenView{}, err
	}
	header := a.render(def)

	switch screen.ID {
	case rk.ScreenWelcome:
		return a.welcomeScreen(header), nil
	case rk.ScreenSearchList:
		return a.searchScreen(header, screen.Context), nil
	case rk.ScreenReadView:
		if screen.Context.Selected == nil {
			return screenView{}, rk.ErrNoSelection
		}
		return a.readScreen(header, *screen.Context.Selected), nil
	default:
		return screenView{}, fmt.Errorf("unknown screen %d", screen.ID)
	}
}

// render converts markdown to tview-tagged text. Rendering errors fall back
// to the raw markdown.
func (a *App) render(markdown string) string {
	out, err := a.renderer.Render(markdown, a.cfg.MinWidth-4)
	if err != nil {
		a.log.Warnw("markdown render failed", "error", err)
		return tview.Escape(out)
	}
	return tview.TranslateANSI(out)
}

func newTextView(text string) *tview.TextView {
	tv := tview.NewTextView()
	tv.SetDynamicColors(true)
	tv.SetWrap(true)
	tv.SetWordWrap(true)
	tv.SetText(text)
	return tv
}

// boxed stacks an optional header above body inside a titled border.
func boxed(title, header string, body tview.Primitive) *tview.Flex {
	root := tview.NewFlex().SetDirection(tview.FlexRow)
	if header != "" {
		root.AddItem(newTextView(header), strings.Count(header, "\n")+2, 0, false)
	}
	root.AddItem(body, 0, 1, true)
	root.SetBorder(true)
	root.SetTitle(" " + title + " ")
	return root
}

func (a *App) welcomeScreen(header string) screenView {
	tv := newTextView(header)
	tv.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEnter {
			a.dispatch(rk.Browse())
			return nil
		}
		// welcome is the root screen: no history keys
		return event
	})

	return screenView{root: boxed(appTitle, "", tv), focus: tv}
}

func (a *App) searchScreen(header string, ctx rk.NavigationContext) screenView {
	list := tview.NewList()
	list.ShowSecondaryText(true)
	list.SetHighlightFullLine(true)
	for _, r := range ctx.Recipes {
		list.AddItem(r.Name, r.Summary, 0, nil)
	}
	if ctx.SelectionIndex >= 0 && ctx.SelectionIndex < list.GetItemCount() {
		list.SetCurrentItem(ctx.SelectionIndex)
	}

	selected := func() int {
		if list.GetItemCount() == 0 {
			return -1
		}
		return list.GetCurrentItem()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			a.dispatch(rk.Open(selected()))
			return nil
		case tcell.KeyDelete:
			a.dispatch(rk.Delete(selected()))
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'o':
				a.dispatch(rk.Open(selected()))
				return nil
			case 'd':
				a.dispatch(rk.Delete(selected()))
				return nil
			}
		}
		return a.navigationKeys(event)
	})

	return screenView{root: boxed(appTitle, header, list), focus: list}
}

func (a *App) readScreen(header string, recipe rk.Recipe) screenView {
	body := newTextView(a.render(recipe.Markdown))
	body.SetScrollable(true)
	body.SetInputCapture(a.navigationKeys)

	return screenView{root: boxed(recipe.Name+" - View Mode", header, body), focus: body}
}

// navigationKeys maps Left/Backspace to backward and Right to forward.
// Modified arrows pass through.
func (a *App) navigationKeys(event *tcell.EventKey) *tcell.EventKey {
	if event.Modifiers() != 0 {
		return event
	}
	switch event.Key() {
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		a.dispatch(rk.Backward())
		return nil
	case tcell.KeyRight:
		a.dispatch(rk.Forward())
		return nil
	}
	return event
}
