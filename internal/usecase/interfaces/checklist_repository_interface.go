package interfaces

import (
	"context"

	"teledias_workflow/internal/domain/entities"
)

// IChecklistRepository abstracts DynamoDB persistence for ChecklistItem.
//
// Items are written once in bulk when the order is created; afterwards only
// the completion flag ever changes.

type IChecklistRepository interface {
	BulkCreate(ctx context.Context, items []entities.ChecklistItem) error
	ListByOrder(ctx context.Context, orderID string) ([]entities.ChecklistItem, error)
	// SetCompleted sets the completion flag and returns the updated item, or
	// the zero value when the item does not exist.
	SetCompleted(ctx context.Context, itemID string, completed bool) (entities.ChecklistItem, error)
	// CountByOrderPhase returns how many items exist for (order, phase) and
	// how many of them are completed.
	CountByOrderPhase(ctx context.Context, orderID string, phase entities.Phase) (total int, completed int, err error)
}
