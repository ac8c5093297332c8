package main

import (
	"context"
	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/droneconfigurator/internal/e2etest"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/logging"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// TestConfigurator walks through the configurator up to the lead form without submitting a lead.
func TestConfigurator(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	// A fresh client starts with an empty session.
	steps := []struct {
		action string
		id     string
	}{
		{"/selection/scenario", "security"},
		{"/selection/platform", "quad-scout"},
		{"/selection/payload", "camera-4k"},
		{"/selection/power-source", "battery-standard"},
	}
	var (
		doc    *goquery.Document
		status int
		err    error
	)
	for _, step := range steps {
		values := url.Values{"id": {step.id}}
		if doc, status, err = client.SubmitForm(ctx, "/", step.action, values); err != nil {
			return errors.Wrap(err, "submit selection", slog.String("action", step.action))
		}
		if status != http.StatusOK {
			return errors.New("unexpected status", slog.String("action", step.action), slog.Int("status", status))
		}
	}

	if total := strings.Join(strings.Fields(doc.Find("#total").Text()), " "); total != "210 000 ₽" {
		return errors.New("unexpected total", slog.String("total", total))
	}
	if doc, err = client.GetDoc(ctx, "/lead"); err != nil {
		return errors.Wrap(err, "get lead form")
	}
	if doc.Find("form[action='/lead']").Length() != 1 {
		return errors.New("lead form not found")
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestConfigurator(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing configurator", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
