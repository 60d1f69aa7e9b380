package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"teledias_workflow/internal/domain/checklists"
	"teledias_workflow/internal/domain/entities"
	"teledias_workflow/internal/domain/sla"
	"teledias_workflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrNoFreightFields   = errors.New("no freight fields to update")
)

// Actor identifies the authenticated user performing an operation. It comes
// from the identity middleware; this service does not own authentication.
type Actor struct {
	ID   string
	Name string
}

// CreateOrderInput is the domain command for order creation. Type accepts
// raw input and is normalized with the standard-sale fallback.
type CreateOrderInput struct {
	CustomerID   string
	CustomerName string
	Type         string
	Notes        string
}

// ListedOrder is an order annotated with its SLA status, computed fresh at
// read time and never stored.
type ListedOrder struct {
	entities.Order
	Overdue        bool
	RemainingHours int
	SLAHours       *int
}

// OrderDetail aggregates everything a single order screen needs.
type OrderDetail struct {
	Order         entities.Order
	Equipment     []entities.Equipment
	Checklists    map[entities.Phase][]entities.ChecklistItem
	AuditLog      []entities.AuditLogEntry
	Parts         []entities.Part
	Solicitations []entities.Solicitation
}

// IOrderUseCase exposes order lifecycle operations other than phase
// transitions (those live in IWorkflowUseCase).

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, actor Actor, in CreateOrderInput) (entities.Order, error)
	GetOrderDetail(ctx context.Context, id string) (OrderDetail, error)
	ListOrders(ctx context.Context) ([]ListedOrder, error)
	UpdateFreight(ctx context.Context, id string, upd entities.FreightUpdate) (entities.Order, error)
	ReplaceEquipment(ctx context.Context, id string, items []entities.Equipment) error
	ReplaceParts(ctx context.Context, id string, items []entities.Part) error
	ReplaceSolicitations(ctx context.Context, id string, items []entities.Solicitation) error
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	checklist interfaces.IChecklistRepository
	audit     interfaces.IAuditLogRepository
	settings  interfaces.ISettingsRepository
	templates *checklists.Registry
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	checklist interfaces.IChecklistRepository,
	audit interfaces.IAuditLogRepository,
	settings interfaces.ISettingsRepository,
	templates *checklists.Registry,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		checklist: checklist,
		audit:     audit,
		settings:  settings,
		templates: templates,
	}
}

// CreateOrder persists a new order in the initial phase, seeds its checklist
// rows from the template for its type and writes the synthetic creation
// audit entry.
func (u *OrderUseCase) CreateOrder(ctx context.Context, actor Actor, in CreateOrderInput) (entities.Order, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Order{}, ErrInvalidCustomerID
	}

	orderType := entities.NormalizeOrderType(strings.TrimSpace(in.Type))
	now := time.Now().UTC()

	o := entities.Order{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		CustomerName:   strings.TrimSpace(in.CustomerName),
		CreatedBy:      actor.ID,
		CreatorName:    actor.Name,
		Type:           orderType,
		Phase:          entities.PhaseComercial,
		PhaseEnteredAt: now,
		Notes:          strings.TrimSpace(in.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	if err := u.seedChecklists(ctx, created.ID, orderType); err != nil {
		return entities.Order{}, err
	}

	_, err = u.audit.Append(ctx, entities.AuditLogEntry{
		ID:        uuid.NewString(),
		OrderID:   created.ID,
		Action:    entities.AuditActionCreation,
		NewPhase:  entities.PhaseComercial,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		CreatedAt: now,
	})
	if err != nil {
		return entities.Order{}, err
	}

	return created, nil
}

// seedChecklists materializes the template for orderType into per-order
// rows. Descriptions are copied verbatim so later template edits do not
// touch this order.
func (u *OrderUseCase) seedChecklists(ctx context.Context, orderID string, orderType entities.OrderType) error {
	var items []entities.ChecklistItem
	for _, phase := range entities.Phases() {
		for i, task := range u.templates.Tasks(orderType, phase) {
			items = append(items, entities.ChecklistItem{
				ID:          uuid.NewString(),
				OrderID:     orderID,
				Phase:       phase,
				Description: task,
				Completed:   false,
				Position:    i,
			})
		}
	}
	if len(items) == 0 {
		return nil
	}
	return u.checklist.BulkCreate(ctx, items)
}

func (u *OrderUseCase) GetOrderDetail(ctx context.Context, id string) (OrderDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderDetail{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}
	if o.ID == "" {
		return OrderDetail{}, ErrOrderNotFound
	}

	equipment, err := u.orders.ListEquipment(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}
	parts, err := u.orders.ListParts(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}
	solicitations, err := u.orders.ListSolicitations(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}

	items, err := u.checklist.ListByOrder(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}

	logs, err := u.audit.ListByOrder(ctx, id)
	if err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{
		Order:         o,
		Equipment:     equipment,
		Checklists:    groupChecklistByPhase(items),
		AuditLog:      logs,
		Parts:         parts,
		Solicitations: solicitations,
	}, nil
}

// groupChecklistByPhase buckets items by phase. Every phase of the pipeline
// is present as a key even with zero items, so callers can render all phase
// tabs uniformly.
func groupChecklistByPhase(items []entities.ChecklistItem) map[entities.Phase][]entities.ChecklistItem {
	grouped := make(map[entities.Phase][]entities.ChecklistItem, len(entities.Phases()))
	for _, phase := range entities.Phases() {
		grouped[phase] = []entities.ChecklistItem{}
	}
	for _, item := range items {
		if _, ok := grouped[item.Phase]; ok {
			grouped[item.Phase] = append(grouped[item.Phase], item)
		}
	}
	for phase := range grouped {
		bucket := grouped[phase]
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Position < bucket[j].Position })
	}
	return grouped
}

// ListOrders returns every order, newest-updated first, annotated with the
// SLA projection for its current phase.
func (u *OrderUseCase) ListOrders(ctx context.Context) ([]ListedOrder, error) {
	settings, err := u.settings.GetSLASettings(ctx)
	if err != nil {
		return nil, err
	}
	cfg := sla.ConfigFromSettings(settings)

	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	listed := make([]ListedOrder, 0, len(orders))
	for _, o := range orders {
		status := cfg.Evaluate(o.Phase, o.PhaseEnteredAt, now)
		listed = append(listed, ListedOrder{
			Order:          o,
			Overdue:        status.Overdue,
			RemainingHours: status.RemainingHours,
			SLAHours:       status.BudgetHours,
		})
	}
	return listed, nil
}

// UpdateFreight merges the provided freight fields into the order. Fields
// left nil are untouched.
func (u *OrderUseCase) UpdateFreight(ctx context.Context, id string, upd entities.FreightUpdate) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if upd.Empty() {
		return entities.Order{}, ErrNoFreightFields
	}

	updated, err := u.orders.UpdateFreight(ctx, id, upd)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// ReplaceEquipment swaps the order's equipment list for the submitted one.
// Full replacement, not a merge: omitted rows are removed.
func (u *OrderUseCase) ReplaceEquipment(ctx context.Context, id string, items []entities.Equipment) error {
	o, err := u.requireOrder(ctx, id)
	if err != nil {
		return err
	}

	replacement := make([]entities.Equipment, 0, len(items))
	for _, item := range items {
		item.ID = uuid.NewString()
		item.OrderID = o.ID
		replacement = append(replacement, item)
	}
	return u.orders.ReplaceEquipment(ctx, o.ID, replacement)
}

// ReplaceParts swaps the order's parts list. Rows without a component are
// skipped; quantity defaults to 1.
func (u *OrderUseCase) ReplaceParts(ctx context.Context, id string, items []entities.Part) error {
	o, err := u.requireOrder(ctx, id)
	if err != nil {
		return err
	}

	replacement := make([]entities.Part, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Component) == "" {
			continue
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		item.ID = uuid.NewString()
		item.OrderID = o.ID
		replacement = append(replacement, item)
	}
	return u.orders.ReplaceParts(ctx, o.ID, replacement)
}

// ReplaceSolicitations swaps the commercial stock-request list. Rows with an
// empty model or non-positive quantity are skipped.
func (u *OrderUseCase) ReplaceSolicitations(ctx context.Context, id string, items []entities.Solicitation) error {
	o, err := u.requireOrder(ctx, id)
	if err != nil {
		return err
	}

	replacement := make([]entities.Solicitation, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Model) == "" || item.Quantity <= 0 {
			continue
		}
		item.ID = uuid.NewString()
		item.OrderID = o.ID
		replacement = append(replacement, item)
	}
	return u.orders.ReplaceSolicitations(ctx, o.ID, replacement)
}

func (u *OrderUseCase) requireOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
