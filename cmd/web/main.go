package main

import (
	"context"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/debugserver"
	"github.com/myrjola/droneconfigurator/internal/envstruct"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/leads"
	"github.com/myrjola/droneconfigurator/internal/logging"
	"github.com/myrjola/droneconfigurator/internal/metrics"
	"github.com/myrjola/droneconfigurator/internal/repositories"
	"github.com/myrjola/droneconfigurator/internal/sqlite"
	"io/fs"
	"log/slog"
	"os"
	"sync/atomic"
	"time"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	catalog        *catalog.Catalog
	submitter      *leads.Submitter
	metrics        *metrics.Metrics
	// ready turns true once the initial load delay has passed. Until then the home page shows a loading screen.
	ready atomic.Bool
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"CONFIGURATOR_ADDR" envDefault:"localhost:4000"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"CONFIGURATOR_SQLITE_URL" envDefault:"./configurator.sqlite"`
	// DebugAddr serves pprof and Prometheus metrics. It has to be a loopback address. Empty disables it.
	DebugAddr string `env:"CONFIGURATOR_DEBUG_ADDR" envDefault:"localhost:6060"`
	// LoadDelay is how long the loading screen is shown after startup.
	LoadDelay time.Duration `env:"CONFIGURATOR_LOAD_DELAY" envDefault:"500ms"`
	// LeadDelay simulates the latency of the lead backend before notifiers run.
	LeadDelay time.Duration `env:"CONFIGURATOR_LEAD_DELAY" envDefault:"1s"`
	// TelegramBotToken and TelegramChatID enable lead notifications over Telegram when both are set.
	TelegramBotToken string `env:"CONFIGURATOR_TELEGRAM_BOT_TOKEN" envDefault:""`
	TelegramChatID   string `env:"CONFIGURATOR_TELEGRAM_CHAT_ID"   envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		err error
		cfg config
		db  *sqlite.Database
		cat *catalog.Catalog
	)

	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	if db, err = sqlite.NewDatabase(ctx, cfg.SqliteURL, logger); err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			closeErr = errors.Wrap(closeErr, "close db")
			logger.LogAttrs(ctx, slog.LevelError, "error closing db", errors.SlogError(closeErr))
		}
	}()

	if cat, err = repositories.NewCatalogRepository(db, logger).Load(ctx); err != nil {
		return errors.Wrap(err, "load catalog")
	}

	m := metrics.New()
	m.ObserveCatalog(cat)
	if err = debugserver.Launch(ctx, cfg.DebugAddr, m.Handler(), logger); err != nil {
		return errors.Wrap(err, "launch debug server")
	}

	notifiers := []leads.Notifier{leads.NewLogNotifier(logger)}
	if telegram := leads.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID); telegram != nil {
		notifiers = append(notifiers, telegram)
		logger.LogAttrs(ctx, slog.LevelInfo, "telegram lead notifications enabled")
	}

	app := application{
		logger:         logger,
		sessionManager: newSessionManager(db),
		htmx:           htmx.New(),
		catalog:        cat,
		submitter:      leads.NewSubmitter(logger, cat, m, cfg.LeadDelay, notifiers...),
		metrics:        m,
	}
	defer stopSessionCleanup(app.sessionManager)
	app.startLoading(cfg.LoadDelay)

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}

	return nil
}

// startLoading flips the application to ready after delay.
func (app *application) startLoading(delay time.Duration) {
	if delay <= 0 {
		app.ready.Store(true)
		return
	}
	time.AfterFunc(delay, func() {
		app.ready.Store(true)
	})
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		err = errors.Wrap(err, "load .env")
		logger.LogAttrs(ctx, slog.LevelError, "failure loading .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
