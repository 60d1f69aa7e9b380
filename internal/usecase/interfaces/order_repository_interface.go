package interfaces

import (
	"context"
	"time"

	"teledias_workflow/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for the Order aggregate.
//
// Conventions (shared by every repository here):
//   - lookups return the zero value, not an error, when nothing matches;
//   - phase mutations are conditional on the phase the caller read, so two
//     concurrent transitions cannot both win. A failed condition also
//     returns the zero value.
//
// Child lists (equipment, parts, solicitations) live on the order item and
// are replaced wholesale, never diffed: callers submit the complete desired
// state every time.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// List returns all orders, most recently updated first.
	List(ctx context.Context) ([]entities.Order, error)

	// UpdateFreight merges the non-nil fields of upd into the stored order.
	UpdateFreight(ctx context.Context, id string, upd entities.FreightUpdate) (entities.Order, error)

	// AdvancePhase swaps the phase from "from" to "to" and resets the phase
	// entry timestamp, only if the stored phase still equals "from".
	AdvancePhase(ctx context.Context, id string, from, to entities.Phase, now time.Time) (entities.Order, error)

	// SignAndConclude moves the order into the financial phase, stamping the
	// delivery date and, when non-nil, the agreed value. Conditional on
	// "from" like AdvancePhase.
	SignAndConclude(ctx context.Context, id string, from entities.Phase, agreedValue *float64, now time.Time) (entities.Order, error)

	ReplaceEquipment(ctx context.Context, orderID string, items []entities.Equipment) error
	ReplaceParts(ctx context.Context, orderID string, items []entities.Part) error
	ReplaceSolicitations(ctx context.Context, orderID string, items []entities.Solicitation) error

	ListEquipment(ctx context.Context, orderID string) ([]entities.Equipment, error)
	ListParts(ctx context.Context, orderID string) ([]entities.Part, error)
	ListSolicitations(ctx context.Context, orderID string) ([]entities.Solicitation, error)
}
