package recipekeeper

import (
	"errors"

	"go.uber.org/zap"
)

const warningTitle = "Warning"

// Session owns the navigation history for one application run and is the
// only component that replaces the active screen. Actions are handled one at
// a time; a Session is not safe for concurrent use.
type Session struct {
	cfg         Config
	history     *NavigationHistory[ScreenID]
	coordinator *Coordinator
	prompter    Prompter
	log         *zap.SugaredLogger

	active Screen
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Config    Config
	Presenter Presenter
	Store     RecipeStore
	Prompter  Prompter
	Logger    *zap.SugaredLogger
}

// NewSession creates a session with empty history, positioned on the welcome screen.
// Call Start to present it.
func NewSession(opts SessionOptions) *Session {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	cfg := opts.Config.withDefaults()

	return &Session{
		cfg:         cfg,
		history:     NewNavigationHistory[ScreenID](cfg.HistoryMax),
		coordinator: NewCoordinator(opts.Presenter, opts.Store, opts.Prompter, log),
		prompter:    opts.Prompter,
		log:         log,
		active:      Screen{ID: ScreenWelcome, Context: EmptyContext()},
	}
}

// Config returns the session configuration with defaults applied.
func (s *Session) Config() Config { return s.cfg }

// Active returns the active screen. The context is a copy.
func (s *Session) Active() Screen {
	return Screen{ID: s.active.ID, Context: s.active.Context.Clone()}
}

// CanGoBack reports whether a backward action would transition.
func (s *Session) CanGoBack() bool { return !s.history.IsBackwardEmpty() }

// CanGoForward reports whether forward history has an entry.
func (s *Session) CanGoForward() bool { return !s.history.IsForwardEmpty() }

// BackwardStack returns the backward entries, oldest first.
func (s *Session) BackwardStack() []ScreenID { return s.history.Backward() }

// ForwardStack returns the forward entries, oldest first.
func (s *Session) ForwardStack() []ScreenID { return s.history.Forward() }

// Start presents the welcome screen. Failure here is fatal for the caller:
// there is no previous screen to fall back to.
func (s *Session) Start() error {
	welcome := Screen{ID: ScreenWelcome, Context: EmptyContext()}
	if err := s.coordinator.present(welcome); err != nil {
		return err
	}
	s.active = welcome
	s.log.Infow("session started", "screen", welcome.ID.String())
	return nil
}

// Perform runs one user action. Failures are terminal for the action only:
// they are logged, surfaced to the user through the prompter and returned for
// callers that care. Backward or forward with nowhere to go is a silent no-op.
func (s *Session) Perform(a Action) error {
	from := s.active.ID
	next, err := s.apply(a)
	s.active = next

	if err == nil {
		s.log.Debugw("transition",
			"action", a.Kind.String(),
			"from", from.String(),
			"to", next.ID.String(),
			"backward", s.history.BackwardLen(),
			"forward", s.history.ForwardLen(),
		)
		return nil
	}

	if errors.Is(err, ErrEmptyHistory) || (isNavigation(a) && errors.Is(err, ErrActionUnavailable)) {
		s.log.Debugw("navigation ignored", "action", a.Kind.String(), "screen", from.String())
		return err
	}

	s.log.Warnw("action failed", "action", a.Kind.String(), "screen", from.String(), "error", err)
	if s.prompter != nil {
		s.prompter.Alert(warningTitle, UserMessage(err))
	}
	return err
}

func (s *Session) apply(a Action) (Screen, error) {
	switch a.Kind {
	case ActionBrowse:
		return s.coordinator.Browse(s.history, s.active)
	case ActionOpen:
		return s.coordinator.Open(s.history, s.active, a.Index)
	case ActionDelete:
		return s.coordinator.Delete(s.history, s.active, a.Index)
	case ActionBackward:
		return s.coordinator.Backward(s.history, s.active)
	case ActionForward:
		return s.coordinator.Forward(s.history, s.active)
	default:
		return s.active, ErrActionUnavailable
	}
}

func isNavigation(a Action) bool {
	return a.Kind == ActionBackward || a.Kind == ActionForward
}
