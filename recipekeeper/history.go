package recipekeeper

// NavigationHistory is a browser-like dual stack of history entries.
//
// The backward stack holds the entries that lead toward the session's entry
// point; the forward stack holds entries left behind by backward navigation.
// Both stacks are unbounded unless maxSize is positive, in which case only the
// most recent maxSize entries of each stack are kept.
type NavigationHistory[T any] struct {
	backward []T
	forward  []T
	maxSize  int
}

// NewNavigationHistory creates an empty history. maxSize <= 0 means unbounded.
func NewNavigationHistory[T any](maxSize int) *NavigationHistory[T] {
	return &NavigationHistory[T]{maxSize: maxSize}
}

func (h *NavigationHistory[T]) trim(stack []T) []T {
	if h.maxSize <= 0 || len(stack) <= h.maxSize {
		return stack
	}
	// keep the most recent entries
	return stack[len(stack)-h.maxSize:]
}

// Push records a new navigation: the entry goes onto the backward stack and
// the forward stack is cleared.
func (h *NavigationHistory[T]) Push(entry T) {
	h.PushBackward(entry)
	h.forward = nil
}

// PushBackward adds an entry to the backward stack without touching forward history.
func (h *NavigationHistory[T]) PushBackward(entry T) {
	h.backward = h.trim(append(h.backward, entry))
}

// PushForward adds an entry to the forward stack.
func (h *NavigationHistory[T]) PushForward(entry T) {
	h.forward = h.trim(append(h.forward, entry))
}

// PopBackward removes and returns the most recent backward entry.
func (h *NavigationHistory[T]) PopBackward() (T, error) {
	var entry T
	var err error
	h.backward, entry, err = pop(h.backward)
	return entry, err
}

// PopForward removes and returns the most recent forward entry.
func (h *NavigationHistory[T]) PopForward() (T, error) {
	var entry T
	var err error
	h.forward, entry, err = pop(h.forward)
	return entry, err
}

// PeekBackward returns the most recent backward entry without removing it.
func (h *NavigationHistory[T]) PeekBackward() (T, error) { return peek(h.backward) }

// PeekForward returns the most recent forward entry without removing it.
func (h *NavigationHistory[T]) PeekForward() (T, error) { return peek(h.forward) }

// IsBackwardEmpty reports whether there is nothing to go back to.
func (h *NavigationHistory[T]) IsBackwardEmpty() bool { return len(h.backward) == 0 }

// IsForwardEmpty reports whether there is nothing to go forward to.
func (h *NavigationHistory[T]) IsForwardEmpty() bool { return len(h.forward) == 0 }

// BackwardLen returns the number of entries in the backward stack.
func (h *NavigationHistory[T]) BackwardLen() int { return len(h.backward) }

// ForwardLen returns the number of entries in the forward stack.
func (h *NavigationHistory[T]) ForwardLen() int { return len(h.forward) }

// Backward returns a copy of the backward stack, oldest entry first.
func (h *NavigationHistory[T]) Backward() []T { return append([]T(nil), h.backward...) }

// Forward returns a copy of the forward stack, oldest entry first.
func (h *NavigationHistory[T]) Forward() []T { return append([]T(nil), h.forward...) }

// Clear removes all history entries.
func (h *NavigationHistory[T]) Clear() {
	h.backward = nil
	h.forward = nil
}

func peek[T any](stack []T) (T, error) {
	if len(stack) == 0 {
		var zero T
		return zero, ErrEmptyHistory
	}
	return stack[len(stack)-1], nil
}

func pop[T any](stack []T) ([]T, T, error) {
	entry, err := peek(stack)
	if err != nil {
		return stack, entry, err
	}
	return stack[:len(stack)-1], entry, nil
}
