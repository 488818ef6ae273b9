package tview

import (
	"github.com/rivo/tview"
)

const pageModal = "modal"

// Confirm shows a Yes/No modal and blocks until the user answers. Escape
// counts as No. Must not be called from the event loop goroutine.
func (a *App) Confirm(title, message string) bool {
	answer := make(chan bool, 1)
	a.showModal(title, message, []string{"Yes", "No"}, func(label string) {
		answer <- label == "Yes"
	})
	return <-answer
}

// Alert shows a message with an OK button and blocks until it is dismissed.
// Must not be called from the event loop goroutine.
func (a *App) Alert(title, message string) {
	done := make(chan struct{})
	a.showModal(title, message, []string{"OK"}, func(string) {
		close(done)
	})
	<-done
}

func (a *App) showModal(title, message string, buttons []string, onDone func(label string)) {
	a.app.QueueUpdateDraw(func() {
		modal := tview.NewModal().
			SetText(title + "\n\n" + message).
			AddButtons(buttons).
			SetDoneFunc(func(_ int, label string) {
				a.pages.RemovePage(pageModal)
				if a.focus != nil {
					a.app.SetFocus(a.focus)
				}
				onDone(label)
			})
		a.pages.AddPage(pageModal, modal, false, true)
		a.app.SetFocus(modal)
	})
}

// modalOpen reports whether a prompt is showing. Event loop only.
func (a *App) modalOpen() bool {
	return a.pages.HasPage(pageModal)
}
