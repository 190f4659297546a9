package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/treekeeper/internal/client/models"
	"github.com/dmitrijs2005/treekeeper/internal/common"
	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

// now is a test seam for entry timestamps.
var now = func() time.Time { return time.Now().UTC() }

// ActivityStore is the part of the local store the activity log uses.
type ActivityStore interface {
	AccountStore
	ReadTreeLogs(ctx context.Context) ([]models.TreeLogEntry, error)
	WriteTreeLogs(ctx context.Context, entries []models.TreeLogEntry) error
	ReadReports(ctx context.Context) ([]models.ReportEntry, error)
	WriteReports(ctx context.Context, entries []models.ReportEntry) error
}

// ActivityService appends tree-planting and issue-report events and keeps
// the acting account's aggregates in step.
type ActivityService interface {
	LogTreePlanting(ctx context.Context, accountID, species, location, photoLabel string) (*models.TreeLogEntry, error)
	LogReport(ctx context.Context, accountID, location, summary, details, photoLabel string) (*models.ReportEntry, error)
	TreeLogs(ctx context.Context, accountID string) ([]models.TreeLogEntry, error)
	Reports(ctx context.Context, accountID string) ([]models.ReportEntry, error)
}

type activityService struct {
	store   ActivityStore
	session *SessionController
	log     logging.Logger
}

func NewActivityService(store ActivityStore, session *SessionController, log logging.Logger) ActivityService {
	return &activityService{store: store, session: session, log: log}
}

// LogTreePlanting appends a tree log entry, then credits the account with
// one tree and TreePoints points and refreshes the session profile.
//
// The append and the account update are two separate writes. If the second
// one fails the entry stays logged and the error is returned.
func (s *activityService) LogTreePlanting(ctx context.Context, accountID, species, location, photoLabel string) (*models.TreeLogEntry, error) {
	if species == "" {
		return nil, common.Required("species")
	}
	if location == "" {
		return nil, common.Required("location")
	}
	if err := s.requireSession(accountID); err != nil {
		return nil, err
	}

	entry := models.TreeLogEntry{
		ID:          newID(),
		AccountID:   accountID,
		Species:     species,
		Location:    location,
		Timestamp:   now(),
		PhotoLabel:  labelOrDefault(photoLabel),
		CO2Estimate: models.CO2EstimatePerTree,
	}

	entries, err := s.store.ReadTreeLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("read tree logs: %w", err)
	}
	if err := s.store.WriteTreeLogs(ctx, append(entries, entry)); err != nil {
		return nil, fmt.Errorf("write tree logs: %w", err)
	}

	if err := s.creditTree(ctx, accountID); err != nil {
		s.log.Error(ctx, "tree logged but progress not updated", "entry_id", entry.ID, "error", err)
		return &entry, err
	}

	s.log.Info(ctx, "tree logged", "entry_id", entry.ID, "account_id", accountID, "species", species)
	return &entry, nil
}

func (s *activityService) creditTree(ctx context.Context, accountID string) error {
	accounts, err := s.store.ReadAccounts(ctx)
	if err != nil {
		return fmt.Errorf("read accounts: %w", err)
	}
	account, ok := accounts[accountID]
	if !ok {
		// dangling reference; the entry is kept
		s.log.Warn(ctx, "tree logged for unknown account", "account_id", accountID)
		return nil
	}

	account.TreesLogged++
	account.PointsEarned += models.TreePoints
	if err := s.store.WriteAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}

	return s.session.Refresh(account)
}

// LogReport appends a report with status pending_verification. Account
// aggregates are not touched.
func (s *activityService) LogReport(ctx context.Context, accountID, location, summary, details, photoLabel string) (*models.ReportEntry, error) {
	if summary == "" {
		return nil, common.Required("summary")
	}
	if err := s.requireSession(accountID); err != nil {
		return nil, err
	}

	entry := models.ReportEntry{
		ID:         newID(),
		ReporterID: accountID,
		Location:   location,
		Summary:    summary,
		Details:    details,
		Timestamp:  now(),
		PhotoLabel: labelOrDefault(photoLabel),
		Status:     models.ReportStatusPendingVerification,
	}

	reports, err := s.store.ReadReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}
	if err := s.store.WriteReports(ctx, append(reports, entry)); err != nil {
		return nil, fmt.Errorf("write reports: %w", err)
	}

	s.log.Info(ctx, "report logged", "entry_id", entry.ID, "account_id", accountID)
	return &entry, nil
}

// TreeLogs returns the entries logged by accountID in insertion order.
func (s *activityService) TreeLogs(ctx context.Context, accountID string) ([]models.TreeLogEntry, error) {
	all, err := s.store.ReadTreeLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("read tree logs: %w", err)
	}
	own := make([]models.TreeLogEntry, 0)
	for _, e := range all {
		if e.AccountID == accountID {
			own = append(own, e)
		}
	}
	return own, nil
}

// Reports returns the reports raised by accountID in insertion order.
func (s *activityService) Reports(ctx context.Context, accountID string) ([]models.ReportEntry, error) {
	all, err := s.store.ReadReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}
	own := make([]models.ReportEntry, 0)
	for _, e := range all {
		if e.ReporterID == accountID {
			own = append(own, e)
		}
	}
	return own, nil
}

// requireSession accepts only the account of the active session.
func (s *activityService) requireSession(accountID string) error {
	if accountID == "" || !s.session.IsAuthenticated() || s.session.ActiveAccountID() != accountID {
		return common.ErrUnauthenticated
	}
	return nil
}

func labelOrDefault(label string) string {
	if label == "" {
		return models.NoPhotoLabel
	}
	return label
}
