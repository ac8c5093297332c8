package main

import (
	"net/http"
)

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	if !app.ready.Load() {
		app.render(w, r, http.StatusOK, "loading", BaseTemplateData{})
		return
	}

	data := app.newConfiguratorTemplateData(app.newBaseTemplateData(r), app.wizard(r.Context()))
	app.render(w, r, http.StatusOK, "home", data)
}
