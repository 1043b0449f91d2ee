package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/greenvalley/community/internal/client/api"
	"github.com/greenvalley/community/internal/client/config"
	"github.com/greenvalley/community/internal/client/services"
	"github.com/greenvalley/community/internal/client/session"
	"github.com/greenvalley/community/internal/client/storage"
	"github.com/greenvalley/community/internal/logging"
)

// App wires the CLI to its services and owns the local database handle.
type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	session   *session.Store
	auth      services.AuthService
	posts     services.PostService
	community services.CommunityService
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the local database, rehydrates the session, and builds the
// service graph. The session is loaded exactly once, here, before any
// command can observe it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}

	kv := storage.NewSQLiteKV(db)
	sess := session.New(kv, log)
	sess.Load(ctx)

	gw := api.New(cfg.BaseURL, cfg.RequestTimeout, log)

	return &App{
		config:    cfg,
		log:       log,
		db:        db,
		session:   sess,
		auth:      services.NewAuthService(gw, sess, log),
		posts:     services.NewPostService(gw, sess, log),
		community: services.NewCommunityService(gw, sess, log),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	printlnFn("Green Valley Community CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) status() string {
	if u := a.session.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}
