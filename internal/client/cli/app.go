package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/treekeeper/internal/client/client"
	"github.com/dmitrijs2005/treekeeper/internal/client/commands"
	"github.com/dmitrijs2005/treekeeper/internal/client/config"
	"github.com/dmitrijs2005/treekeeper/internal/client/navigation"
	"github.com/dmitrijs2005/treekeeper/internal/client/notify"
	"github.com/dmitrijs2005/treekeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/treekeeper/internal/client/services"
	"github.com/dmitrijs2005/treekeeper/internal/client/store"
	"github.com/dmitrijs2005/treekeeper/internal/filex"
	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

type App struct {
	config     *config.Config
	db         *sql.DB
	log        logging.Logger
	session    *services.SessionController
	activity   services.ActivityService
	guard      *navigation.Guard
	dispatcher *commands.Dispatcher
	reader     *bufio.Reader
	out        io.Writer
}

// NewApp opens the database under the configured data directory and wires
// the services. Logs go to stderr, everything else to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	dsn := filepath.Join(dir, c.DatabaseFile)
	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", dsn, "error", err)
		return nil, err
	}

	return newApp(c, db, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, db *sql.DB, log logging.Logger, in io.Reader, out io.Writer) *App {
	st := store.New(kv.NewSQLiteRepository(db), log)
	accounts := services.NewAccountDirectory(st, log)
	session := services.NewSessionController(st, accounts, log)
	activity := services.NewActivityService(st, session, log)
	notifier := notify.NewConsole(out, c.NotificationTimeout)

	a := &App{
		config:   c,
		db:       db,
		log:      log,
		session:  session,
		activity: activity,
		reader:   bufio.NewReader(in),
		out:      out,
	}
	a.guard = navigation.NewGuard(session, &consoleRenderer{w: out, content: a.viewContent}, log)
	a.dispatcher = commands.NewDispatcher(accounts, session, activity, a.guard, notifier, log)
	return a
}

// Run restores the previous session and blocks in the REPL until the user
// exits or input ends. The database is closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "Welcome to treekeeper (type 'help' for commands)")
	_ = a.dispatcher.Start(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders "(name view)" for the prompt.
func (a *App) getStatus() string {
	view := a.guard.Current().String()
	if !a.isLoggedIn() {
		return fmt.Sprintf("(%s)", view)
	}
	return fmt.Sprintf("(%s %s)", a.session.Profile().DisplayName, view)
}
