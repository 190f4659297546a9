package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/treekeeper/internal/client/models"
	"github.com/dmitrijs2005/treekeeper/internal/client/navigation"
	"github.com/dmitrijs2005/treekeeper/internal/client/notify"
	"github.com/dmitrijs2005/treekeeper/internal/client/services"
	"github.com/dmitrijs2005/treekeeper/internal/common"
	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

// Notification titles.
const (
	TitleSuccess    = "Success"
	TitleError      = "Error"
	TitleValidation = "Validation"
	TitleInfo       = "Info"
	TitleInput      = "Input Needed"
	TitleChallenge  = "Challenge Started"
	TitleJoined     = "Joined!"
	TitleSpecies    = "Species Details"
	TitleDisabled   = "Feature Disabled"
)

// Dispatcher executes commands one at a time. Errors are converted into
// notifications and also returned so callers and tests can inspect them.
type Dispatcher struct {
	accounts services.AccountDirectory
	session  *services.SessionController
	activity services.ActivityService
	guard    *navigation.Guard
	notifier notify.Notifier
	log      logging.Logger

	// attending holds joined event titles per account for this run.
	attending map[string]map[string]struct{}
}

func NewDispatcher(
	accounts services.AccountDirectory,
	session *services.SessionController,
	activity services.ActivityService,
	guard *navigation.Guard,
	notifier notify.Notifier,
	log logging.Logger,
) *Dispatcher {
	return &Dispatcher{
		accounts:  accounts,
		session:   session,
		activity:  activity,
		guard:     guard,
		notifier:  notifier,
		log:       log,
		attending: make(map[string]map[string]struct{}),
	}
}

// Start restores the persisted session and shows the first view.
func (d *Dispatcher) Start(ctx context.Context) error {
	if err := d.session.Restore(ctx); err != nil {
		d.guard.Navigate(ctx, navigation.Login)
		return d.fail(ctx, err, "")
	}
	if d.session.IsAuthenticated() {
		d.guard.Navigate(ctx, navigation.Dashboard)
	} else {
		d.guard.Navigate(ctx, navigation.Login)
	}
	return nil
}

// Dispatch runs cmd.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case SignUp:
		return d.signUp(ctx, c)
	case Login:
		return d.login(ctx, c)
	case SignOut:
		return d.signOut(ctx)
	case Navigate:
		d.guard.Navigate(ctx, c.View)
		return nil
	case LogTree:
		return d.logTree(ctx, c)
	case LogReport:
		return d.logReport(ctx, c)
	case RecoverPassword:
		return d.recoverPassword(ctx, c)
	case StartChallenge:
		return d.startChallenge(ctx)
	case JoinEvent:
		return d.joinEvent(ctx, c)
	case SpeciesDetails:
		if c.Species == "" {
			return d.fail(ctx, common.Required("species"), "Species name is required.")
		}
		d.notifier.Notify(TitleSpecies, "Showing detailed conservation information for "+c.Species+".")
		return nil
	case FilterMap:
		d.notifier.Notify(TitleDisabled, "Map filtering is a non-functional placeholder for the current scope.")
		return nil
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

func (d *Dispatcher) signUp(ctx context.Context, c SignUp) error {
	account, err := d.accounts.Create(ctx, c.Organizer, c.Email, c.Password, c.TeamName)
	if err != nil {
		return d.fail(ctx, err, "Email and password are required.")
	}
	if err := d.session.Login(ctx, account); err != nil {
		return d.fail(ctx, err, "")
	}
	d.notifier.Notify(TitleSuccess, "Account created! Logging in...")
	d.guard.Navigate(ctx, navigation.Dashboard)
	return nil
}

func (d *Dispatcher) login(ctx context.Context, c Login) error {
	account, err := d.accounts.Authenticate(ctx, c.Email, c.Password)
	if err != nil {
		return d.fail(ctx, err, "")
	}
	if err := d.session.Login(ctx, account); err != nil {
		return d.fail(ctx, err, "")
	}
	d.guard.Navigate(ctx, navigation.Dashboard)
	return nil
}

func (d *Dispatcher) signOut(ctx context.Context) error {
	if err := d.session.SignOut(ctx); err != nil {
		return d.fail(ctx, err, "")
	}
	d.guard.Navigate(ctx, navigation.Login)
	return nil
}

func (d *Dispatcher) logTree(ctx context.Context, c LogTree) error {
	_, err := d.activity.LogTreePlanting(ctx, d.session.ActiveAccountID(), c.Species, c.Location, models.PhotoLabel(c.Photo))
	if err != nil {
		return d.fail(ctx, err, "Species and Location details are required.")
	}
	d.notifier.Notify(TitleSuccess, "Tree planting logged! Progress updated.")
	return nil
}

func (d *Dispatcher) logReport(ctx context.Context, c LogReport) error {
	_, err := d.activity.LogReport(ctx, d.session.ActiveAccountID(), c.Location, c.Summary, c.Details, models.PhotoLabel(c.Photo))
	if err != nil {
		return d.fail(ctx, err, "Report Summary is required.")
	}
	d.notifier.Notify(TitleSuccess, "Environmental issue reported! An Organizer/EcoTeam will be notified for verification.")
	return nil
}

// recoverPassword never touches the store.
func (d *Dispatcher) recoverPassword(ctx context.Context, c RecoverPassword) error {
	if c.Email == "" {
		d.notifier.Notify(TitleInput, "Please enter your email in the field above.")
		return common.Required("email")
	}
	d.log.Info(ctx, "simulated password recovery requested", "email", c.Email)
	d.notifier.Notify(TitleInfo, "Password reset simulation: If this were real, an email would be sent to "+c.Email+".")
	return nil
}

func (d *Dispatcher) startChallenge(ctx context.Context) error {
	if !d.session.IsAuthenticated() {
		return d.fail(ctx, common.ErrUnauthenticated, "")
	}
	d.notifier.Notify(TitleChallenge, `You are now tracking your "Plant 1 Tree This Week" challenge!`)
	return nil
}

// joinEvent is idempotent: joining an event twice does nothing.
func (d *Dispatcher) joinEvent(ctx context.Context, c JoinEvent) error {
	if !d.session.IsAuthenticated() {
		return d.fail(ctx, common.ErrUnauthenticated, "")
	}
	if c.Title == "" {
		return d.fail(ctx, common.Required("event"), "Event title is required.")
	}

	id := d.session.ActiveAccountID()
	joined, ok := d.attending[id]
	if !ok {
		joined = make(map[string]struct{})
		d.attending[id] = joined
	}
	if _, ok := joined[c.Title]; ok {
		return nil
	}
	joined[c.Title] = struct{}{}

	d.notifier.Notify(TitleJoined, "You successfully joined the event: "+c.Title)
	return nil
}

// Attending reports whether the signed-in account joined the event.
func (d *Dispatcher) Attending(title string) bool {
	_, ok := d.attending[d.session.ActiveAccountID()][title]
	return ok
}

// fail reports err to the user and returns it. validationMsg is shown for
// validation errors.
func (d *Dispatcher) fail(ctx context.Context, err error, validationMsg string) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		if validationMsg == "" {
			validationMsg = err.Error()
		}
		d.notifier.Notify(TitleValidation, validationMsg)
	case errors.Is(err, common.ErrDuplicateEmail):
		d.notifier.Notify(TitleError, "User with this email already exists.")
	case errors.Is(err, common.ErrInvalidCredentials):
		d.notifier.Notify(TitleError, "Invalid email or password.")
	case errors.Is(err, common.ErrUnauthenticated):
		d.notifier.Notify(TitleError, "User not authenticated.")
	default:
		d.log.Error(ctx, "command failed", "error", err)
		d.notifier.Notify(TitleError, "Something went wrong, please try again.")
	}
	return err
}
