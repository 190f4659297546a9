package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/treekeeper/internal/client/models"
	"github.com/dmitrijs2005/treekeeper/internal/common"
	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

// SessionStore persists the active-session marker.
type SessionStore interface {
	ReadActiveSession(ctx context.Context) (string, error)
	WriteActiveSession(ctx context.Context, accountID string) error
	ClearActiveSession(ctx context.Context) error
}

// Status of the session state machine.
type Status int

const (
	Anonymous Status = iota
	Authenticated
)

func (s Status) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// State is a snapshot of the session. AccountID is empty when Anonymous.
type State struct {
	Status    Status
	AccountID string
}

// Profile is the display copy of the active account.
type Profile struct {
	AccountID    string
	DisplayName  string
	Role         models.Role
	EcoTeam      string
	TreesLogged  int
	PointsEarned int
}

const defaultDisplayName = "Volunteer"

func anonymousProfile() Profile {
	return Profile{DisplayName: defaultDisplayName, Role: models.RoleVolunteer}
}

// SessionController tracks the single active account of this client. Every
// transition writes the session marker through the store before the
// in-memory state changes, so a restart always sees the same state.
//
// It is not safe for concurrent use; the client runs one command at a time.
type SessionController struct {
	store    SessionStore
	accounts AccountDirectory
	log      logging.Logger

	accountID string
	profile   Profile
}

func NewSessionController(store SessionStore, accounts AccountDirectory, log logging.Logger) *SessionController {
	return &SessionController{
		store:    store,
		accounts: accounts,
		log:      log,
		profile:  anonymousProfile(),
	}
}

// Restore derives the initial state from the store. A marker that does not
// resolve to an account is cleared and the session stays anonymous.
func (s *SessionController) Restore(ctx context.Context) error {
	s.reset()

	id, err := s.store.ReadActiveSession(ctx)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if id == "" {
		return nil
	}

	account, err := s.accounts.Get(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		s.log.Warn(ctx, "stored session references unknown account, signing out", "account_id", id)
		if err := s.store.ClearActiveSession(ctx); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}

	s.accountID = account.ID
	s.profile = profileOf(account)
	return nil
}

// Login makes account the active identity.
func (s *SessionController) Login(ctx context.Context, account *models.Account) error {
	if account == nil || account.ID == "" {
		return common.ErrUnauthenticated
	}
	if err := s.store.WriteActiveSession(ctx, account.ID); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	s.accountID = account.ID
	s.profile = profileOf(account)
	s.log.Info(ctx, "signed in", "account_id", account.ID)
	return nil
}

// SignOut ends the session. The account record is left untouched; only the
// displayed profile falls back to the volunteer default.
func (s *SessionController) SignOut(ctx context.Context) error {
	if err := s.store.ClearActiveSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if s.accountID != "" {
		s.log.Info(ctx, "signed out", "account_id", s.accountID)
	}
	s.reset()
	return nil
}

// Refresh re-caches the profile of the active account after it changed.
func (s *SessionController) Refresh(account *models.Account) error {
	if account == nil || s.accountID == "" || account.ID != s.accountID {
		return common.ErrUnauthenticated
	}
	s.profile = profileOf(account)
	return nil
}

func (s *SessionController) State() State {
	if s.accountID == "" {
		return State{Status: Anonymous}
	}
	return State{Status: Authenticated, AccountID: s.accountID}
}

func (s *SessionController) IsAuthenticated() bool {
	return s.accountID != ""
}

func (s *SessionController) ActiveAccountID() string {
	return s.accountID
}

func (s *SessionController) Profile() Profile {
	return s.profile
}

func (s *SessionController) reset() {
	s.accountID = ""
	s.profile = anonymousProfile()
}

func profileOf(a *models.Account) Profile {
	p := Profile{
		AccountID:    a.ID,
		DisplayName:  a.DisplayName,
		Role:         a.Role,
		EcoTeam:      a.Team(),
		TreesLogged:  a.TreesLogged,
		PointsEarned: a.PointsEarned,
	}
	if p.DisplayName == "" {
		p.DisplayName = defaultDisplayName
	}
	if p.Role == "" {
		p.Role = models.RoleVolunteer
	}
	return p
}
