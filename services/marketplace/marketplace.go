// Package marketplace holds the user-facing workflows of the app. Each
// workflow checks its preconditions against the current snapshot and then
// dispatches plain store actions; the reducer itself stays permissive.
package marketplace

import (
	"sync"
	"time"

	"marhaba/apperrors"
	"marhaba/models/user"
	"marhaba/store"
	"marhaba/utils"
)

type Service struct {
	store *store.Store
	clock utils.Clock
	newID func(prefix string) string

	// mu serializes check-then-dispatch sequences across requests
	mu sync.Mutex
}

type Option func(*Service)

// WithClock pins the clock used for booking and inquiry dates
func WithClock(clock utils.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

// WithIDGenerator replaces the uuid based id generator
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Service) { s.newID = gen }
}

func New(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		clock: time.Now,
		newID: utils.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot
func (s *Service) State() store.AppState {
	return s.store.GetState()
}

func (s *Service) today() string {
	return utils.FormatDate(s.clock())
}

func (s *Service) sessionUser(state store.AppState) (user.User, error) {
	if state.CurrentUser == nil {
		return user.User{}, apperrors.NewUnauthorizedError("login required")
	}
	return *state.CurrentUser, nil
}

func (s *Service) sessionProvider(state store.AppState) (user.User, error) {
	u, err := s.sessionUser(state)
	if err != nil {
		return u, err
	}
	if !u.IsProvider() {
		return u, apperrors.NewForbiddenError("only providers can do this")
	}
	return u, nil
}

// PromptLogin swaps the given modal for the auth modal and returns the
// Unauthorized error for a caller known to be a guest
func (s *Service) PromptLogin(modal store.ModalName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promptLogin(modal)
}

// promptLogin swaps the given modal for the auth modal, the fallback used
// when a guest submits a form that needs a session
func (s *Service) promptLogin(modal store.ModalName) error {
	s.store.Dispatch(store.CloseModal{Modal: modal})
	s.store.Dispatch(store.OpenModal{Modal: store.ModalAuth})
	return apperrors.NewUnauthorizedError("login required")
}

func (s *Service) Navigate(page store.Page, payload store.PagePayload) store.Outcome {
	return s.store.Dispatch(store.SetPage{Page: page, Payload: payload})
}

func (s *Service) SetLanguage(lang store.Language) store.Outcome {
	return s.store.Dispatch(store.SetLanguage{Language: lang})
}

func (s *Service) SetTheme(theme store.Theme) store.Outcome {
	return s.store.Dispatch(store.SetTheme{Theme: theme})
}

func (s *Service) OpenModal(name store.ModalName) store.Outcome {
	return s.store.Dispatch(store.OpenModal{Modal: name})
}

func (s *Service) CloseModal(name store.ModalName) store.Outcome {
	return s.store.Dispatch(store.CloseModal{Modal: name})
}
