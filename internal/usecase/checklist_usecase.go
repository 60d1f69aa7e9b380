package usecase

import (
	"context"
	"errors"
	"strings"

	"teledias_workflow/internal/domain/entities"
	"teledias_workflow/internal/usecase/interfaces"
)

var (
	ErrChecklistItemNotFound  = errors.New("checklist item not found")
	ErrInvalidChecklistItemID = errors.New("invalid checklist item id")
)

// IChecklistUseCase mutates checklist completion flags. Toggling is an
// idempotent set-by-value: re-sending the same flag is a no-op. Any
// authenticated caller may toggle any item by id; ownership is not checked
// beyond item existence.

type IChecklistUseCase interface {
	Toggle(ctx context.Context, itemID string, completed bool) (entities.ChecklistItem, error)
}

type ChecklistUseCase struct {
	checklist interfaces.IChecklistRepository
}

var _ IChecklistUseCase = (*ChecklistUseCase)(nil)

func NewChecklistUseCase(checklist interfaces.IChecklistRepository) *ChecklistUseCase {
	return &ChecklistUseCase{checklist: checklist}
}

func (u *ChecklistUseCase) Toggle(ctx context.Context, itemID string, completed bool) (entities.ChecklistItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ChecklistItem{}, ErrInvalidChecklistItemID
	}

	item, err := u.checklist.SetCompleted(ctx, itemID, completed)
	if err != nil {
		return entities.ChecklistItem{}, err
	}
	if item.ID == "" {
		return entities.ChecklistItem{}, ErrChecklistItemNotFound
	}
	return item, nil
}
