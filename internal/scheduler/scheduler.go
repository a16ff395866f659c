package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/SscSPs/business_hub_app/internal/backup"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
)

const backupTimeout = 2 * time.Minute

// Scheduler runs periodic export backups.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	exporter portssvc.DataTransferSvc
	sink     backup.Sink
	logger   *slog.Logger
}

// NewScheduler creates a scheduler that exports on schedule (standard 5-field cron) in loc.
func NewScheduler(schedule string, exporter portssvc.DataTransferSvc, sink backup.Sink, loc *time.Location, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		schedule: schedule,
		exporter: exporter,
		sink:     sink,
		logger:   logger.With(slog.String("component", "scheduler")),
	}
}

// Start registers the backup job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runScheduled); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.schedule, err)
	}
	s.logger.Info("Starting scheduler", slog.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running backup to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
	defer cancel()

	if _, err := s.RunBackup(ctx); err != nil {
		s.logger.Error("Backup failed", slog.String("error", err.Error()))
	}
}

// RunBackup exports the current state and writes it to the sink. It returns the object name.
func (s *Scheduler) RunBackup(ctx context.Context) (string, error) {
	doc, err := s.exporter.BackupExport(ctx)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	data, err := backup.Encode(*doc)
	if err != nil {
		return "", err
	}
	name := backup.ObjectName(*doc)
	if err := s.sink.Put(ctx, name, data); err != nil {
		return "", err
	}
	s.logger.Info("Backup written",
		slog.String("name", name),
		slog.Int("clients", len(doc.Clients)),
		slog.Int("expenses", len(doc.Expenses)),
		slog.Int("employees", len(doc.Employees)))
	return name, nil
}
