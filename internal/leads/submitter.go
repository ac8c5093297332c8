// Package leads dispatches completed configurations together with the contact details of the requester.
//
// Dispatch is fire-and-forget. Submit never reports the outcome of the notifiers to its caller and the user is always
// told that the request was sent. Failures only show up in the logs and the lead_notify_failures_total metric.
package leads

import (
	"context"
	"github.com/google/uuid"
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/metrics"
	"github.com/myrjola/droneconfigurator/internal/models"
	"log/slog"
	"sync"
	"time"
)

type Submitter struct {
	logger    *slog.Logger
	catalog   *catalog.Catalog
	metrics   *metrics.Metrics
	notifiers []Notifier
	// delay simulates the latency of a backend call before the notifiers run.
	delay time.Duration
	wg    sync.WaitGroup
}

func NewSubmitter(
	logger *slog.Logger,
	c *catalog.Catalog,
	m *metrics.Metrics,
	delay time.Duration,
	notifiers ...Notifier,
) *Submitter {
	return &Submitter{
		logger:    logger,
		catalog:   c,
		metrics:   m,
		notifiers: notifiers,
		delay:     delay,
	}
}

// Submit assigns an id to the lead and dispatches it in the background.
//
// The dispatch is detached from ctx cancellation so it outlives the request, but keeps the context values used for
// log enrichment.
func (s *Submitter) Submit(ctx context.Context, lead models.Lead) uuid.UUID {
	lead.ID = uuid.New()
	if lead.SubmittedAt.IsZero() {
		lead.SubmittedAt = time.Now()
	}

	n := Notification{
		Lead:  lead,
		Quote: s.catalog.Quote(lead.Selection),
	}
	if scenario, ok := s.catalog.Scenario(lead.Selection.Scenario); ok {
		n.Scenario = scenario.Name
	}
	s.metrics.LeadSubmitted(n.Quote.Standard)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "lead submitted",
		slog.String("lead_id", lead.ID.String()),
		slog.Int64("total", n.Quote.Total),
		slog.Bool("standard", n.Quote.Standard))

	bgCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.dispatch(bgCtx, n)
	}()

	return lead.ID
}

func (s *Submitter) dispatch(ctx context.Context, n Notification) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.New("panic in lead dispatch", slog.Any("panic", r))
			s.logger.LogAttrs(ctx, slog.LevelError, "lead dispatch failed", errors.SlogError(err))
		}
	}()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	for _, notifier := range s.notifiers {
		if err := notifier.Notify(ctx, n); err != nil {
			s.metrics.NotifyFailures.WithLabelValues(notifier.Name()).Inc()
			err = errors.Wrap(err, "notify lead",
				slog.String("notifier", notifier.Name()),
				slog.String("lead_id", n.Lead.ID.String()))
			s.logger.LogAttrs(ctx, slog.LevelError, "lead notification failed", errors.SlogError(err))
		}
	}
}

// Wait blocks until all dispatches started so far have finished.
func (s *Submitter) Wait() {
	s.wg.Wait()
}
