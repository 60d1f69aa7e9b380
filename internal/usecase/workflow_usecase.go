package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"teledias_workflow/internal/domain/entities"
	"teledias_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderConcluded = errors.New("order already concluded")
	ErrNoNextPhase    = errors.New("no next phase")
	// ErrChecklistIncomplete is the gating block: the current phase still has
	// unfinished required tasks. Callers must surface it as a hard block.
	ErrChecklistIncomplete = errors.New("current phase checklist incomplete")
	// ErrPhaseConflict means another transition won the conditional update
	// between our read and our write.
	ErrPhaseConflict = errors.New("order phase changed concurrently")
)

// IWorkflowUseCase is the phase transition engine. All phase mutations go
// through it; nothing else touches the phase field.

type IWorkflowUseCase interface {
	Advance(ctx context.Context, orderID string, actor Actor) (entities.Phase, error)
	SignAndConclude(ctx context.Context, orderID string, actor Actor, agreedValue *float64) (entities.Order, error)
}

type WorkflowUseCase struct {
	orders    interfaces.IOrderRepository
	checklist interfaces.IChecklistRepository
	audit     interfaces.IAuditLogRepository
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(
	orders interfaces.IOrderRepository,
	checklist interfaces.IChecklistRepository,
	audit interfaces.IAuditLogRepository,
) *WorkflowUseCase {
	return &WorkflowUseCase{orders: orders, checklist: checklist, audit: audit}
}

// Advance moves an order to the next phase of the pipeline.
//
// Gating rule: the order may not leave its current phase while any of that
// phase's checklist items is incomplete. A phase with zero items is trivially
// passable. The phase swap is conditional on the phase we read, so two
// concurrent calls cannot both advance the same order or double-write the
// audit trail.
func (u *WorkflowUseCase) Advance(ctx context.Context, orderID string, actor Actor) (entities.Phase, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if o.ID == "" {
		return "", ErrOrderNotFound
	}
	if o.Phase.IsTerminal() {
		return "", ErrOrderConcluded
	}

	total, completed, err := u.checklist.CountByOrderPhase(ctx, o.ID, o.Phase)
	if err != nil {
		return "", err
	}
	if total > 0 && completed < total {
		log.Printf("[workflow] advance blocked order=%s phase=%s completed=%d/%d", o.ID, o.Phase, completed, total)
		return "", ErrChecklistIncomplete
	}

	next, ok := o.Phase.Next()
	if !ok {
		// Unreachable given the terminal check above; kept as a guard.
		return "", ErrNoNextPhase
	}

	now := time.Now().UTC()
	updated, err := u.orders.AdvancePhase(ctx, o.ID, o.Phase, next, now)
	if err != nil {
		return "", err
	}
	if updated.ID == "" {
		return "", ErrPhaseConflict
	}

	_, err = u.audit.Append(ctx, entities.AuditLogEntry{
		ID:            uuid.NewString(),
		OrderID:       o.ID,
		Action:        entities.AuditActionPhaseAdvance,
		PreviousPhase: o.Phase,
		NewPhase:      next,
		ActorID:       actor.ID,
		ActorName:     actor.Name,
		CreatedAt:     now,
	})
	if err != nil {
		return "", err
	}

	log.Printf("[workflow] advance order=%s %s -> %s actor=%s", o.ID, o.Phase, next, actor.ID)
	return next, nil
}

// SignAndConclude is the external-consultant side channel: the signed O.S.
// at delivery substitutes for the checklist gate, moving the order straight
// into the financial phase while stamping the delivery date and, when given,
// the agreed value. It still writes an audit entry, under its own tag.
func (u *WorkflowUseCase) SignAndConclude(ctx context.Context, orderID string, actor Actor, agreedValue *float64) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.Phase.IsTerminal() {
		return entities.Order{}, ErrOrderConcluded
	}

	now := time.Now().UTC()
	updated, err := u.orders.SignAndConclude(ctx, o.ID, o.Phase, agreedValue, now)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrPhaseConflict
	}

	_, err = u.audit.Append(ctx, entities.AuditLogEntry{
		ID:            uuid.NewString(),
		OrderID:       o.ID,
		Action:        entities.AuditActionSignConclude,
		PreviousPhase: o.Phase,
		NewPhase:      entities.PhaseFinanceiro,
		ActorID:       actor.ID,
		ActorName:     actor.Name,
		CreatedAt:     now,
	})
	if err != nil {
		return entities.Order{}, err
	}

	log.Printf("[workflow] sign-and-conclude order=%s %s -> %s actor=%s", o.ID, o.Phase, entities.PhaseFinanceiro, actor.ID)
	return updated, nil
}
