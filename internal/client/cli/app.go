package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tablekeeper/internal/client/api"
	"github.com/dmitrijs2005/tablekeeper/internal/client/config"
	"github.com/dmitrijs2005/tablekeeper/internal/client/repositories/characters"
	"github.com/dmitrijs2005/tablekeeper/internal/client/repositories/rooms"
	"github.com/dmitrijs2005/tablekeeper/internal/client/services"
	"github.com/dmitrijs2005/tablekeeper/internal/client/session"
	"github.com/dmitrijs2005/tablekeeper/internal/client/storage"
	"github.com/dmitrijs2005/tablekeeper/internal/logging"
)

// App holds the wired client: configuration, session, services, and the
// shared stdin reader used by the interactive prompts.
type App struct {
	config   *config.Config
	session  *session.Store
	auth     services.AuthService
	user     services.UserService
	rooms    services.RoomService
	chars    services.CharacterService
	roomCtrl *services.RoomController
	db       *sql.DB
	reader   *bufio.Reader
	log      logging.Logger
}

// NewApp wires an App from the configuration. A broken local cache database
// is logged and tolerated; the client then runs network-only.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("error preparing data dir: %w", err)
	}
	sess := session.NewStore(cfg.DataDir)

	var (
		roomCache rooms.Repository
		charCache characters.Repository
	)
	db, repos, err := storage.InitDatabase(ctx, cfg.CacheDSN())
	if err != nil {
		log.Warn(ctx, "local cache unavailable, running network-only", "error", err)
		db = nil
	} else {
		roomCache = repos.Rooms
		charCache = repos.Characters
	}

	apiClient := api.NewClient(cfg.BaseURL(), cfg.RequestTimeout, sess, log)
	roomSvc := services.NewRoomService(apiClient, roomCache, log)

	return &App{
		config:   cfg,
		session:  sess,
		auth:     services.NewAuthService(apiClient, sess),
		user:     services.NewUserService(apiClient, sess),
		rooms:    roomSvc,
		chars:    services.NewCharacterService(apiClient, charCache, log),
		roomCtrl: services.NewRoomController(roomSvc),
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		log:      log,
	}, nil
}

// Run starts the interactive loop and blocks until the user exits or stdin
// is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("Welcome to TableKeeper CLI (type 'help' for commands)")

	if a.session.LoggedIn() && a.session.Expired() {
		fmt.Println("Your session has expired, please log in again.")
		if err := a.auth.Logout(); err != nil {
			a.log.Warn(ctx, "failed to clear expired session", "error", err)
		}
	} else if u := a.session.User(); u != nil {
		fmt.Printf("Logged in as %s.\n", u.Nickname)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases resources held by the App.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// status renders the prompt decoration, e.g. "(alice)" when logged in.
func (a *App) status() string {
	if u := a.session.User(); u != nil && u.Nickname != "" {
		return "(" + u.Nickname + ")"
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}
