package main

import (
	"context"
	"encoding/gob"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/myrjola/droneconfigurator/internal/sqlite"
	"github.com/myrjola/droneconfigurator/internal/wizard"
	"net/http"
	"time"
)

type sessionKey string

const wizardSessionKey = sessionKey("wizard")
const flashSessionKey = sessionKey("flash")

func init() {
	gob.Register(wizard.Wizard{})
}

func newSessionManager(db *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour) //nolint:mnd // 1 day
	sessionManager.Lifetime = 12 * time.Hour                                                   //nolint:mnd // 12 hours
	sessionManager.Cookie.Name = "configurator_session"
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	return sessionManager
}

// wizard returns the configurator state of the session, or a fresh one.
func (app *application) wizard(ctx context.Context) *wizard.Wizard {
	w, ok := app.sessionManager.Get(ctx, string(wizardSessionKey)).(wizard.Wizard)
	if !ok {
		return wizard.New()
	}
	return &w
}

func (app *application) saveWizard(ctx context.Context, w *wizard.Wizard) {
	app.sessionManager.Put(ctx, string(wizardSessionKey), *w)
}

// stopSessionCleanup stops the background goroutine that purges expired sessions.
func stopSessionCleanup(sessionManager *scs.SessionManager) {
	if store, ok := sessionManager.Store.(*sqlite3store.SQLite3Store); ok {
		store.StopCleanup()
	}
}
