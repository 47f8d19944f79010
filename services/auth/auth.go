// Package auth is the mocked account layer: users are looked up in the
// store by email and the password only has to be present.
package auth

import (
	"strings"
	"sync"
	"time"

	"marhaba/apperrors"
	"marhaba/models/user"
	"marhaba/store"
	authTypes "marhaba/types/auth"
	"marhaba/utils"
)

type LoginStatus string

const (
	LoginSuccess            LoginStatus = "success"
	LoginUserNotFound       LoginStatus = "user_not_found"
	LoginInvalidCredentials LoginStatus = "invalid_credentials"
)

type LoginResult struct {
	Status    LoginStatus `json:"status"`
	User      *user.User  `json:"user,omitempty"`
	Token     string      `json:"token,omitempty"`
	ExpiresIn int         `json:"expires_in,omitempty"`
}

type Service struct {
	store  *store.Store
	tokens *TokenIssuer
	clock  utils.Clock

	mu sync.Mutex
}

func New(st *store.Store, tokens *TokenIssuer, clock utils.Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: st, tokens: tokens, clock: clock}
}

func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

// Login starts a session for a known email. Unknown emails and empty
// passwords are reported through the result status, not as errors.
func (s *Service) Login(req authTypes.LoginRequest) (LoginResult, error) {
	u, ok := user.FindByEmail(s.store.GetState().Users, strings.TrimSpace(req.Email))
	if !ok {
		return LoginResult{Status: LoginUserNotFound}, nil
	}
	if req.Password == "" {
		return LoginResult{Status: LoginInvalidCredentials}, nil
	}

	ttl := SessionTTL
	if req.RememberMe {
		ttl = RememberTTL
	}
	return s.startSession(u, ttl)
}

// SignUp registers a new account and logs it in
func (s *Service) SignUp(req authTypes.RegisterRequest) (LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.store.GetState().Users
	email := strings.TrimSpace(req.Email)
	if _, exists := user.FindByEmail(users, email); exists {
		return LoginResult{}, apperrors.NewConflictError("an account with this email already exists")
	}

	id := utils.NewUserID(s.clock)
	for {
		if _, taken := user.Find(users, id); !taken {
			break
		}
		id++
	}

	u := user.User{ID: id, Name: strings.TrimSpace(req.Name), Email: email, Type: req.Type}
	s.store.Dispatch(store.RegisterUser{User: u})
	return s.startSession(u, SessionTTL)
}

// Logout clears the session
func (s *Service) Logout() {
	s.store.Dispatch(store.SetUser{User: nil})
}

func (s *Service) startSession(u user.User, ttl time.Duration) (LoginResult, error) {
	token, err := s.tokens.Issue(u, ttl)
	if err != nil {
		return LoginResult{}, err
	}

	s.store.Dispatch(store.SetUser{User: &u})
	s.store.Dispatch(store.CloseModal{Modal: store.ModalAuth})

	return LoginResult{
		Status:    LoginSuccess,
		User:      &u,
		Token:     token,
		ExpiresIn: int(ttl.Seconds()),
	}, nil
}
