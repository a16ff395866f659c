package services

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
)

// DataTransferSvc moves the whole business state in and out of the system.
type DataTransferSvc interface {
	// Export returns the current state as an export document.
	Export(ctx context.Context) (*domain.ExportDocument, error)

	// BackupExport builds the same document for unattended backups. It sends no notification.
	BackupExport(ctx context.Context) (*domain.ExportDocument, error)

	// Import replaces every collection whose field in payload is an array.
	// Malformed payloads are rejected with apperrors.ErrImportParse and change nothing.
	Import(ctx context.Context, payload []byte) (*domain.ImportResult, error)

	// Restore replaces all three collections with the snapshot.
	Restore(ctx context.Context, snapshot domain.Snapshot) error

	// SeedIfEmpty restores the snapshot only when the store holds no records.
	SeedIfEmpty(ctx context.Context, snapshot domain.Snapshot) (bool, error)
}
