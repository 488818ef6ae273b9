package recipekeeper

import (
	"errors"
	"fmt"
)

// Sentinel errors for navigation and collection operations.
var (
	// ErrEmptyHistory is returned when backward or forward navigation has nothing to pop.
	ErrEmptyHistory = errors.New("navigation history is empty")
	// ErrNoSelection is returned when an action needs a selected recipe and none is selected.
	ErrNoSelection = errors.New("no item selected")
	// ErrEmptyCollection is returned when a destructive action runs on an empty recipe list.
	ErrEmptyCollection = errors.New("recipe list is empty")
	// ErrForwardUnsupported is returned when forward history resolves to a screen
	// other than the read view.
	ErrForwardUnsupported = errors.New("forward navigation only re-enters the read view")
	// ErrActionUnavailable is returned when the active screen does not offer the action.
	ErrActionUnavailable = errors.New("action not available on this screen")
)

// PresentationError reports that a destination screen could not be rendered.
type PresentationError struct {
	Screen ScreenID
	Err    error
}

func (e *PresentationError) Error() string {
	return fmt.Sprintf("present %s screen: %v", e.Screen, e.Err)
}

func (e *PresentationError) Unwrap() error { return e.Err }

// StorageError reports a failed recipe storage operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("recipe storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// UserMessage returns the notice shown to the user for a failed action.
func UserMessage(err error) string {
	var presentErr *PresentationError
	var storageErr *StorageError
	switch {
	case errors.Is(err, ErrNoSelection):
		return "No item selected"
	case errors.Is(err, ErrEmptyCollection):
		return "Recipe list is empty"
	case errors.As(err, &presentErr):
		return "File not found."
	case errors.As(err, &storageErr):
		return "Could not update recipe storage."
	default:
		return "Oops! Something wrong happened."
	}
}
