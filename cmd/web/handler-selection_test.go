package main

import (
	"context"
	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/droneconfigurator/internal/e2etest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

// choose submits one selection form of the configurator page and returns the page it redirects to.
func choose(t *testing.T, client *e2etest.Client, action string, values url.Values) *goquery.Document {
	t.Helper()
	doc, status, err := client.SubmitForm(context.Background(), "/", action, values)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	return doc
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func buttonDisabled(doc *goquery.Document, action string, id string) bool {
	_, disabled := doc.Find("form[action='" + action + "'] button[value='" + id + "']").Attr("disabled")
	return disabled
}

func Test_application_selection(t *testing.T) {
	server := startTestServer(t, io.Discard, testLookupEnv(nil))
	client := server.Client()

	doc := choose(t, client, "/selection/scenario", url.Values{"id": {"security"}})
	require.Equal(t, 1, doc.Find("#step-platform").Length(), "platform step opens after choosing a scenario")
	assert.True(t, buttonDisabled(doc, "/selection/platform", "quad-surveyor"))
	assert.True(t, buttonDisabled(doc, "/selection/platform", "hex-carrier"))
	assert.False(t, buttonDisabled(doc, "/selection/platform", "quad-scout"))
	assert.False(t, buttonDisabled(doc, "/selection/platform", "octo-commander"))
	assert.Equal(t, 5, doc.Find("form[action='/selection/platform'] button[name=id]").Length(),
		"unsupported platforms are shown disabled")

	doc = choose(t, client, "/selection/platform", url.Values{"id": {"quad-scout"}})
	assert.Equal(t, "Квадрокоптер Scout", text(doc.Find("dd[data-line=platform]")))
	assert.Equal(t, "Оптимальное решение для задач: Охрана", text(doc.Find(".summary > p.muted")))
	payloads := doc.Find("form[action='/selection/payload'] button[name=id]")
	require.Equal(t, 1, payloads.Length(), "only payloads fitting the platform are offered")
	id, _ := payloads.Attr("value")
	assert.Equal(t, "camera-4k", id)

	doc = choose(t, client, "/selection/payload", url.Values{"id": {"camera-4k"}})
	assert.Equal(t, 2, doc.Find("form[action='/selection/power-source'] button[name=id]").Length())

	doc = choose(t, client, "/selection/power-source", url.Values{"id": {"battery-standard"}})
	assert.Equal(t, "210 000 ₽", text(doc.Find("#total")))
	assert.Equal(t, 0, doc.Find("#review-note").Length(), "standard package needs no review")
	assert.Equal(t, 1, doc.Find("#request-link").Length())
	assert.Equal(t, 3, doc.Find("form[action='/selection/accessory']").Length())

	doc = choose(t, client, "/selection/accessory", url.Values{"id": {"case"}, "checked": {"true"}})
	assert.Equal(t, "Транспортировочный кейс", text(doc.Find("dd[data-line=accessory]")))
	assert.Equal(t, "230 000 ₽", text(doc.Find("#total")))
	assert.Equal(t, 0, doc.Find("#review-note").Length(), "accessories do not affect the classification")

	doc = choose(t, client, "/selection/accessory", url.Values{"id": {"case"}, "checked": {"false"}})
	assert.Equal(t, "Не выбрано", text(doc.Find("dd[data-line=accessory]")))

	doc = choose(t, client, "/selection/platform", url.Values{"id": {"octo-commander"}})
	assert.Equal(t, "Не выбрано", text(doc.Find("dd[data-line=payload]")), "changing platform clears payload")
	assert.Equal(t, "Не выбрано", text(doc.Find("dd[data-line=power-source]")))
	assert.Equal(t, "680 000 ₽", text(doc.Find("#total")))
	assert.Equal(t, 1, doc.Find("#review-note").Length())
	assert.Equal(t, 0, doc.Find("#request-link").Length())

	doc = choose(t, client, "/selection/reset", nil)
	assert.Equal(t, 0, doc.Find("#step-platform").Length())
	assert.Equal(t, "0 ₽", text(doc.Find("#total")))
}

func Test_application_selection_rejected(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, io.Discard, testLookupEnv(nil))
	client := server.Client()

	choose(t, client, "/selection/scenario", url.Values{"id": {"security"}})

	tests := []struct {
		name   string
		action string
		values url.Values
		status int
	}{
		{"platform without scenario support", "/selection/platform", url.Values{"id": {"quad-surveyor"}},
			http.StatusUnprocessableEntity},
		{"unknown scenario", "/selection/scenario", url.Values{"id": {"space"}}, http.StatusUnprocessableEntity},
		{"empty id", "/selection/scenario", url.Values{"id": {""}}, http.StatusUnprocessableEntity},
		{"accessory without checked", "/selection/accessory", url.Values{"id": {"case"}}, http.StatusBadRequest},
	}
	csrfToken, err := client.CSRFToken(ctx, "/", "/selection/scenario")
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{"csrf_token": {csrfToken}}
			for k, v := range tt.values {
				values[k] = v
			}
			resp, postErr := client.PostForm(ctx, tt.action, values)
			require.NoError(t, postErr)
			_ = resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	t.Run("missing csrf token", func(t *testing.T) {
		resp, err := client.PostForm(ctx, "/selection/scenario", url.Values{"id": {"geodesy"}})
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func Test_application_selection_htmx(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t, io.Discard, testLookupEnv(nil))
	client := server.Client()

	csrfToken, err := client.CSRFToken(ctx, "/", "/selection/scenario")
	require.NoError(t, err)

	resp, err := client.PostHTMX(ctx, "/selection/scenario", url.Values{"id": {"geodesy"}, "csrf_token": {csrfToken}})
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/selection/scenario", resp.Request.URL.Path, "htmx requests are not redirected")

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("header.site-header").Length(), "only the configurator is rendered")
	assert.Equal(t, 1, doc.Find("#price").Length())
	assert.True(t, buttonDisabled(doc, "/selection/platform", "quad-scout"))
	assert.False(t, buttonDisabled(doc, "/selection/platform", "quad-surveyor"))
}

func Test_application_finish(t *testing.T) {
	server := startTestServer(t, io.Discard, testLookupEnv(nil))
	client := server.Client()

	choose(t, client, "/selection/scenario", url.Values{"id": {"geodesy"}})
	choose(t, client, "/selection/platform", url.Values{"id": {"quad-surveyor"}})
	choose(t, client, "/selection/payload", url.Values{"id": {"lidar"}})
	doc := choose(t, client, "/selection/power-source", url.Values{"id": {"battery-extended"}})

	_, disabled := doc.Find("form[action='/selection/finish'] button").Attr("disabled")
	assert.False(t, disabled)

	doc = choose(t, client, "/selection/finish", nil)
	assert.Equal(t, "555 000 ₽", text(doc.Find("#total")))
	assert.Equal(t, 1, doc.Find("#request-link").Length())
}
