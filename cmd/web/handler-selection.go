package main

import (
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/contexthelpers"
	"github.com/myrjola/droneconfigurator/internal/wizard"
	"log/slog"
	"net/http"
	"strconv"
)

// selectOption returns a handler that sets the single-valued field of category from the posted id.
//
// Ids that the configurator does not offer under the current selection are rejected, e.g. a platform that does not
// support the chosen scenario.
func (app *application) selectOption(category catalog.Category, apply func(*wizard.Wizard, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
		ctx := r.Context()
		id := r.PostForm.Get("id")
		wiz := app.wizard(ctx)
		if !app.catalog.Selectable(category, wiz.Selection, id) {
			app.clientError(w, r, http.StatusUnprocessableEntity)
			return
		}

		apply(wiz, id)
		app.saveWizard(ctx, wiz)
		app.metrics.SelectionChanges.WithLabelValues(string(category)).Inc()
		app.logger.LogAttrs(ctx, slog.LevelDebug, "selection changed",
			slog.String("category", string(category)),
			slog.String("id", id),
			slog.String("cursor", wiz.Cursor.String()))

		app.respondConfigurator(w, r, wiz)
	}
}

func (app *application) toggleAccessory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	id := r.PostForm.Get("id")
	checked, err := strconv.ParseBool(r.PostForm.Get("checked"))
	if err != nil || id == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	wiz := app.wizard(ctx)
	// Removing is always allowed so that stale ids can be dropped.
	if checked && !app.catalog.Selectable(catalog.CategoryAccessory, wiz.Selection, id) {
		app.clientError(w, r, http.StatusUnprocessableEntity)
		return
	}

	wiz.ToggleAccessory(id, checked)
	app.saveWizard(ctx, wiz)
	app.metrics.SelectionChanges.WithLabelValues(string(catalog.CategoryAccessory)).Inc()

	app.respondConfigurator(w, r, wiz)
}

func (app *application) finishConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wiz := app.wizard(ctx)
	if wiz.Finish() {
		app.saveWizard(ctx, wiz)
	}
	app.respondConfigurator(w, r, wiz)
}

func (app *application) resetConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wiz := app.wizard(ctx)
	wiz.Reset()
	app.saveWizard(ctx, wiz)
	app.respondConfigurator(w, r, wiz)
}

// respondConfigurator re-renders the configurator for htmx and redirects plain form posts back home.
func (app *application) respondConfigurator(w http.ResponseWriter, r *http.Request, wiz *wizard.Wizard) {
	if !contexthelpers.IsHTMX(r.Context()) {
		redirectHome(w, r)
		return
	}
	data := app.newConfiguratorTemplateData(BaseTemplateData{}, wiz)
	app.renderPartial(w, r, http.StatusOK, "home", "configurator", data)
}
