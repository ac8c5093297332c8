package main

import (
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/leads"
	"github.com/myrjola/droneconfigurator/internal/models"
	"github.com/myrjola/droneconfigurator/internal/wizard"
	"net/http"
)

const leadSubmittedFlash = "Заявка успешно отправлена"

type leadTemplateData struct {
	BaseTemplateData
	Form   models.Contact
	Errors leads.FieldErrors
	Price  priceView
	Ready  bool
}

func (app *application) newLeadTemplateData(r *http.Request, wiz *wizard.Wizard) leadTemplateData {
	return leadTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Price:            app.newPriceView(wiz.Selection),
		Ready:            wiz.Ready(),
	}
}

func (app *application) leadForm(w http.ResponseWriter, r *http.Request) {
	wiz := app.wizard(r.Context())
	if !wiz.Ready() {
		redirectHome(w, r)
		return
	}
	app.render(w, r, http.StatusOK, "lead", app.newLeadTemplateData(r, wiz))
}

func (app *application) submitLead(w http.ResponseWriter, r *http.Request) {
	var err error
	if err = r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	wiz := app.wizard(ctx)

	contact := leads.NormalizeContact(models.Contact{
		Name:           r.PostForm.Get("name"),
		Company:        r.PostForm.Get("company"),
		Email:          r.PostForm.Get("email"),
		Phone:          r.PostForm.Get("phone"),
		AdditionalInfo: r.PostForm.Get("additionalInfo"),
	})
	var fieldErrors leads.FieldErrors
	if fieldErrors, err = leads.ValidateContact(contact); err != nil {
		app.serverError(w, r, err)
		return
	}
	if fieldErrors != nil {
		data := app.newLeadTemplateData(r, wiz)
		data.Form = contact
		data.Errors = fieldErrors
		app.render(w, r, http.StatusUnprocessableEntity, "lead", data)
		return
	}

	var lead models.Lead
	if lead, err = wiz.Submit(contact); err != nil {
		if errors.Is(err, wizard.ErrIncomplete) {
			redirectHome(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.submitter.Submit(ctx, lead)
	app.sessionManager.Put(ctx, string(flashSessionKey), leadSubmittedFlash)
	redirectHome(w, r)
}
