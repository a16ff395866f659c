package services

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
)

// Notifier delivers user-facing outcome messages. Implementations must not block
// the caller for long and must not fail the triggering action.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
