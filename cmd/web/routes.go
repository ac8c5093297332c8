package main

import (
	"github.com/justinas/alice"
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/wizard"
	"github.com/myrjola/droneconfigurator/ui"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", cacheForeverHeaders(http.FileServer(http.FS(ui.Files))))

	session := alice.New(app.sessionManager.LoadAndSave, app.noSurf, app.commonContext)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))

	mux.Handle("POST /selection/scenario", session.Then(app.selectOption(catalog.CategoryScenario,
		(*wizard.Wizard).SelectScenario)))
	mux.Handle("POST /selection/platform", session.Then(app.selectOption(catalog.CategoryPlatform,
		(*wizard.Wizard).SelectPlatform)))
	mux.Handle("POST /selection/payload", session.Then(app.selectOption(catalog.CategoryPayload,
		(*wizard.Wizard).SelectPayload)))
	mux.Handle("POST /selection/power-source", session.Then(app.selectOption(catalog.CategoryPowerSource,
		(*wizard.Wizard).SelectPowerSource)))
	mux.Handle("POST /selection/accessory", session.ThenFunc(app.toggleAccessory))
	mux.Handle("POST /selection/finish", session.ThenFunc(app.finishConfiguration))
	mux.Handle("POST /selection/reset", session.ThenFunc(app.resetConfiguration))

	mux.Handle("GET /lead", session.ThenFunc(app.leadForm))
	mux.Handle("POST /lead", session.ThenFunc(app.submitLead))

	mux.HandleFunc("GET /api/healthy", app.healthy)

	mux.HandleFunc("/", app.notFound)

	return alice.New(app.recoverPanic, app.logRequest, app.metrics.InstrumentHandler, app.secureHeaders).Then(mux)
}
