package interfaces

import (
	"context"

	"teledias_workflow/internal/domain/entities"
)

// IAuditLogRepository abstracts the append-only audit sink. Entries are
// never updated or deleted; the log is the system of record for who did
// what when.

type IAuditLogRepository interface {
	Append(ctx context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error)
	// ListByOrder returns the entries for an order, newest first.
	ListByOrder(ctx context.Context, orderID string) ([]entities.AuditLogEntry, error)
}
