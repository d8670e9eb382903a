package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studhub/internal/client/api"
	"studhub/internal/client/config"
	"studhub/internal/client/models"
	"studhub/internal/client/services"
	"studhub/internal/client/session"
	"studhub/internal/client/storage"
	"studhub/internal/filex"
	"studhub/internal/logging"
)

// Mode reflects the last known reachability of the backend.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App holds the shell state: the services, the derived authentication flag,
// the current route, and the data shown by the open page.
//
// The authenticated flag is derived from the session store once at startup
// and refreshed only on login/logout. Store mutations made elsewhere are not
// observed until the next transition.
type App struct {
	config  *config.Config
	log     logging.Logger
	auth    services.AuthService
	content services.ContentService
	admin   services.AdminService

	authenticated bool
	route         string
	Mode          Mode

	me    models.Me
	posts []models.Post
	files []models.FileRecord
	users []models.AdminUser

	reader *bufio.Reader
}

// NewApp wires the local database, session store, API client, and services.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dir, err := filex.EnsureSubDir(".studhub")
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, filepath.Join(dir, "session.db"))
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, store)

	return &App{
		config:  cfg,
		log:     log,
		auth:    services.NewAuthService(apiClient, store),
		content: services.NewContentService(apiClient),
		admin:   services.NewAdminService(apiClient),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.authenticated
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	s := ""
	if a.authenticated {
		if id := a.auth.Identity(context.Background()); id.Subject != "" {
			s = id.Subject + " "
		}
	}
	if a.Mode != "" {
		s += string(a.Mode)
	}
	if s != "" {
		s = "(" + strings.TrimSpace(s) + ")"
	}
	return s
}

// Run starts the shell: derive the authentication flag, open the root route,
// and hand control to the REPL. Blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close()

	a.authenticated = a.auth.Authenticated(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	printlnFn("Welcome to studhub (type 'help' for commands)")
	_ = a.Open(ctx, routeRoot)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// StartOnlineStatusWatcher probes the backend health endpoint on the given
// interval and keeps the connectivity mode shown in the prompt current.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode != ModeOffline {
					a.setMode(ctx, ModeOffline)
				}
			} else if a.Mode != ModeOnline {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
