package main

import (
	"bytes"
	"fmt"
	"github.com/myrjola/droneconfigurator/internal/contexthelpers"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/leads"
	"github.com/myrjola/droneconfigurator/internal/money"
	"github.com/myrjola/droneconfigurator/ui"
	"html/template"
	"log/slog"
	"net/http"
)

type BaseTemplateData struct {
	Flash string
}

func (app *application) newBaseTemplateData(r *http.Request) BaseTemplateData {
	return BaseTemplateData{
		Flash: app.sessionManager.PopString(r.Context(), string(flashSessionKey)),
	}
}

// formField is the view of a single lead form input.
type formField struct {
	Name        string
	Label       string
	Placeholder string
	Type        string
	Value       string
	Error       string
}

var templateFuncs = template.FuncMap{
	// nonce and csrf are request specific and replaced in render.
	"nonce": func() template.HTMLAttr {
		panic("not implemented")
	},
	"csrf": func() template.HTML {
		panic("not implemented")
	},
	"money": money.Format,
	"field": func(name, label, placeholder, inputType, value string, fieldErrors leads.FieldErrors) formField {
		return formField{
			Name:        name,
			Label:       label,
			Placeholder: placeholder,
			Type:        inputType,
			Value:       value,
			Error:       fieldErrors[name],
		}
	},
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to directory inside ui/templates/pages folder. It has to include a template named "page".
func pageTemplate(pageName string) (*template.Template, error) {
	t, err := template.New(pageName).Funcs(templateFuncs).ParseFS(ui.Files,
		"templates/base.gohtml",
		"templates/partials/*.gohtml",
		fmt.Sprintf("templates/pages/%s/*.gohtml", pageName),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse templates", slog.String("page", pageName))
	}
	return t, nil
}

// render writes the full page.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	app.renderTemplate(w, r, status, page, "base", data)
}

// renderPartial writes only the named template of the page, used to answer htmx requests.
func (app *application) renderPartial(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	page string,
	name string,
	data any,
) {
	app.renderTemplate(w, r, status, page, name, data)
}

func (app *application) renderTemplate(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	page string,
	name string,
	data any,
) {
	var (
		err error
		t   *template.Template
	)

	if t, err = pageTemplate(page); err != nil {
		app.serverError(w, r, err)
		return
	}

	buf := new(bytes.Buffer)
	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=\"%s\"", contexthelpers.CSPNonce(ctx))
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>",
		template.HTMLEscapeString(contexthelpers.CSRFToken(ctx)))
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // we trust the nonce since it's not provided by user.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // the token is escaped above.
		},
	})
	if err = t.ExecuteTemplate(buf, name, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template",
			slog.String("page", page), slog.String("template", name)))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}
