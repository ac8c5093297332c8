package leads

import (
	"context"
	"fmt"
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/money"
	"github.com/myrjola/droneconfigurator/internal/models"
	"log/slog"
	"strings"
)

// Notification is a lead with its configuration resolved against the catalog.
type Notification struct {
	Lead     models.Lead
	Scenario string
	Quote    catalog.Quote
}

// Notifier delivers a notification to whoever follows up on leads.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier writes the lead to the application log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Name() string {
	return "log"
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) error {
	sel := n.Lead.Selection
	l.logger.LogAttrs(ctx, slog.LevelInfo, "lead received",
		slog.String("lead_id", n.Lead.ID.String()),
		slog.Group("contact",
			slog.String("name", n.Lead.Contact.Name),
			slog.String("company", n.Lead.Contact.Company),
			slog.String("email", n.Lead.Contact.Email),
			slog.String("phone", n.Lead.Contact.Phone),
		),
		slog.Group("selection",
			slog.String("scenario", sel.Scenario),
			slog.String("platform", sel.Platform),
			slog.String("payload", sel.Payload),
			slog.String("power_source", sel.PowerSource),
			slog.Any("accessories", sel.Accessories),
		),
		slog.Int64("total", n.Quote.Total),
		slog.Bool("standard", n.Quote.Standard),
	)
	return nil
}

// formatMessage renders the notification as the plain text body of a chat message.
func formatMessage(n Notification) string {
	var b strings.Builder
	c := n.Lead.Contact
	fmt.Fprintf(&b, "🛩 Новая заявка на конфигурацию БАС\n\n")
	fmt.Fprintf(&b, "ФИО: %s\nКомпания: %s\nEmail: %s\nТелефон: %s\n", c.Name, c.Company, c.Email, c.Phone)
	if c.AdditionalInfo != "" {
		fmt.Fprintf(&b, "Дополнительно: %s\n", c.AdditionalInfo)
	}
	b.WriteString("\n")
	if n.Scenario != "" {
		fmt.Fprintf(&b, "Сценарий: %s\n", n.Scenario)
	}
	for _, line := range n.Quote.Lines {
		fmt.Fprintf(&b, "%s: %s\n", line.Name, money.Format(line.Price))
	}
	fmt.Fprintf(&b, "\nИтого: %s", money.Format(n.Quote.Total))
	if n.Quote.NeedsReview() {
		b.WriteString("\nНестандартная конфигурация, требуется проверка специалистом")
	}
	return b.String()
}
