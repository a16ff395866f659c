// Package notify delivers user-facing outcome messages produced by the services.
package notify

import (
	"context"
	"log/slog"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/middleware"
)

// LogNotifier writes every notification to the request logger.
type LogNotifier struct{}

var _ portssvc.Notifier = LogNotifier{}

func (LogNotifier) Notify(ctx context.Context, n domain.Notification) {
	level := slog.LevelInfo
	switch n.Severity {
	case domain.SeverityWarning:
		level = slog.LevelWarn
	case domain.SeverityError:
		level = slog.LevelError
	}
	middleware.GetLoggerFromCtx(ctx).Log(ctx, level, "Notification",
		slog.String("action", n.Action),
		slog.String("severity", string(n.Severity)),
		slog.String("message", n.Message),
	)
}

// Multi fans a notification out to several notifiers in order.
type Multi []portssvc.Notifier

var _ portssvc.Notifier = Multi{}

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(ctx, n)
		}
	}
}
