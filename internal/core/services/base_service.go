package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock    func() time.Time
	location *time.Location
	notifier portssvc.Notifier
}

// ServiceOption is a functional option for configuring the shared parts of a service
type ServiceOption func(*BaseService)

// WithClock overrides the wall clock. Used by tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLocation sets the time zone in which "today" and the current month are evaluated.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithNotifier sets the notifier that receives mutation outcomes.
func WithNotifier(n portssvc.Notifier) ServiceOption {
	return func(s *BaseService) {
		s.notifier = n
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		clock:    time.Now,
		location: time.UTC,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Now returns the current time in the display location.
func (s *BaseService) Now() time.Time {
	return s.clock().In(s.location)
}

// Today returns the current calendar date in the display location.
func (s *BaseService) Today() domain.Date {
	return domain.DateOf(s.Now())
}

// Notify sends a notification when a notifier is configured.
func (s *BaseService) Notify(ctx context.Context, severity domain.Severity, action, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, domain.Notification{
		Message:  message,
		Severity: severity,
		Action:   action,
		At:       s.Now(),
	})
}

// notifyFailure reports a failed mutation. Validation errors carry their own message,
// anything else is reported generically.
func (s *BaseService) notifyFailure(ctx context.Context, action string, err error) {
	s.Notify(ctx, domain.SeverityError, action, failureMessage(err))
}
