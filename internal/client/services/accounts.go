// Package services contains the application services of the TreeKeeper
// client: the account directory, the session controller and the activity
// log. They read and write through the local store only.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/treekeeper/internal/client/models"
	"github.com/dmitrijs2005/treekeeper/internal/common"
	"github.com/dmitrijs2005/treekeeper/internal/logging"
	"github.com/google/uuid"
)

// newID is a test seam for id generation.
var newID = uuid.NewString

// AccountStore is the part of the local store the account directory uses.
type AccountStore interface {
	ReadAccounts(ctx context.Context) (map[string]*models.Account, error)
	WriteAccounts(ctx context.Context, accounts map[string]*models.Account) error
}

// AccountDirectory creates and authenticates accounts.
//
// Contract:
//   - Create: persist a new account; ErrDuplicateEmail if the email is taken.
//     It does not start a session.
//   - Authenticate: return the account matching email and password exactly,
//     or ErrInvalidCredentials.
//   - Get: load an account by id, or ErrNotFound.
type AccountDirectory interface {
	Create(ctx context.Context, isOrganizer bool, email, password, teamName string) (*models.Account, error)
	Authenticate(ctx context.Context, email, password string) (*models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
}

type accountDirectory struct {
	store AccountStore
	log   logging.Logger
}

func NewAccountDirectory(store AccountStore, log logging.Logger) AccountDirectory {
	return &accountDirectory{store: store, log: log}
}

// Create registers a new account. Email uniqueness is an exact,
// case-sensitive comparison. The display name is the email's local part and
// the team name is kept for organizers only.
func (d *accountDirectory) Create(ctx context.Context, isOrganizer bool, email, password, teamName string) (*models.Account, error) {
	if email == "" {
		return nil, common.Required("email")
	}
	if password == "" {
		return nil, common.Required("password")
	}

	accounts, err := d.store.ReadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	for _, a := range accounts {
		if a.Email == email {
			return nil, common.ErrDuplicateEmail
		}
	}

	account := &models.Account{
		ID:          newID(),
		Email:       email,
		Password:    password,
		Role:        models.RoleVolunteer,
		DisplayName: models.DisplayNameFromEmail(email),
	}
	if isOrganizer {
		account.Role = models.RoleOrganizer
		if teamName != "" {
			account.EcoTeam = &teamName
		}
	}

	accounts[account.ID] = account
	if err := d.store.WriteAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("write accounts: %w", err)
	}

	d.log.Info(ctx, "account created", "account_id", account.ID, "role", account.Role)
	return account, nil
}

func (d *accountDirectory) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	accounts, err := d.store.ReadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	for _, a := range accounts {
		if a.Email == email && a.Password == password {
			return a, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

func (d *accountDirectory) Get(ctx context.Context, id string) (*models.Account, error) {
	accounts, err := d.store.ReadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	a, ok := accounts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return a, nil
}
