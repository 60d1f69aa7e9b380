package response

import (
	"time"

	"teledias_workflow/internal/domain/entities"
	"teledias_workflow/internal/usecase"
)

type CreatedOrderResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func FromCreatedOrder(o entities.Order) CreatedOrderResponse {
	return CreatedOrderResponse{ID: o.ID, Message: "Pedido criado com sucesso"}
}

// OrderResponse is one order row. The SLA fields are computed at read time:
// SLAHours is null for phases without a budget, and RemainingHours goes
// negative once the order is overdue.
type OrderResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"cliente_id"`
	CustomerName   string     `json:"cliente_nome,omitempty"`
	CreatedBy      string     `json:"usuario_id"`
	CreatorName    string     `json:"criador_nome,omitempty"`
	Type           string     `json:"tipo"`
	Phase          string     `json:"status_atual"`
	PhaseEnteredAt time.Time  `json:"data_entrada_status"`
	Notes          string     `json:"observacoes,omitempty"`
	FreightCarrier string     `json:"transportadora,omitempty"`
	FreightValue   *float64   `json:"frete_valor,omitempty"`
	FreightData    string     `json:"dados_frete,omitempty"`
	FreightStatus  string     `json:"frete_status,omitempty"`
	AgreedValue    *float64   `json:"valor_acordado,omitempty"`
	DeliveryDate   *time.Time `json:"data_entrega,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Overdue        bool `json:"em_atraso"`
	RemainingHours int  `json:"horas_restantes"`
	SLAHours       *int `json:"sla_horas"`
}

func fromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		CreatedBy:      o.CreatedBy,
		CreatorName:    o.CreatorName,
		Type:           string(o.Type),
		Phase:          string(o.Phase),
		PhaseEnteredAt: o.PhaseEnteredAt,
		Notes:          o.Notes,
		FreightCarrier: o.FreightCarrier,
		FreightValue:   o.FreightValue,
		FreightData:    o.FreightData,
		FreightStatus:  o.FreightStatus,
		AgreedValue:    o.AgreedValue,
		DeliveryDate:   o.DeliveryDate,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromListedOrder(lo usecase.ListedOrder) OrderResponse {
	resp := fromOrder(lo.Order)
	resp.Overdue = lo.Overdue
	resp.RemainingHours = lo.RemainingHours
	resp.SLAHours = lo.SLAHours
	return resp
}

func FromListedOrders(listed []usecase.ListedOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(listed))
	for _, lo := range listed {
		out = append(out, FromListedOrder(lo))
	}
	return out
}

type ChecklistItemResponse struct {
	ID          string `json:"id"`
	Phase       string `json:"fase_setor"`
	Description string `json:"descricao"`
	Completed   bool   `json:"concluido"`
}

func FromChecklistItem(i entities.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:          i.ID,
		Phase:       string(i.Phase),
		Description: i.Description,
		Completed:   i.Completed,
	}
}

type AuditLogResponse struct {
	ID            string    `json:"id"`
	Action        string    `json:"acao"`
	PreviousPhase string    `json:"status_anterior,omitempty"`
	NewPhase      string    `json:"status_novo"`
	ActorID       string    `json:"usuario_id"`
	ActorName     string    `json:"usuario_nome,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromAuditLogEntry(e entities.AuditLogEntry) AuditLogResponse {
	return AuditLogResponse{
		ID:            e.ID,
		Action:        string(e.Action),
		PreviousPhase: string(e.PreviousPhase),
		NewPhase:      string(e.NewPhase),
		ActorID:       e.ActorID,
		ActorName:     e.ActorName,
		CreatedAt:     e.CreatedAt,
	}
}

// OrderDetailResponse is the single-order screen payload. Checklists carry
// every pipeline phase as a key, empty phases included, so clients can
// render all tabs uniformly.
type OrderDetailResponse struct {
	Order         OrderResponse                      `json:"pedido"`
	Equipment     []entities.Equipment               `json:"equipamentos"`
	Checklists    map[string][]ChecklistItemResponse `json:"checklists"`
	AuditLog      []AuditLogResponse                 `json:"audit_logs"`
	Parts         []entities.Part                    `json:"pecas"`
	Solicitations []entities.Solicitation            `json:"solicitacoes"`
}

func FromOrderDetail(d usecase.OrderDetail) OrderDetailResponse {
	checklists := make(map[string][]ChecklistItemResponse, len(d.Checklists))
	for phase, items := range d.Checklists {
		bucket := make([]ChecklistItemResponse, 0, len(items))
		for _, item := range items {
			bucket = append(bucket, FromChecklistItem(item))
		}
		checklists[string(phase)] = bucket
	}

	logs := make([]AuditLogResponse, 0, len(d.AuditLog))
	for _, e := range d.AuditLog {
		logs = append(logs, FromAuditLogEntry(e))
	}

	return OrderDetailResponse{
		Order:         fromOrder(d.Order),
		Equipment:     d.Equipment,
		Checklists:    checklists,
		AuditLog:      logs,
		Parts:         d.Parts,
		Solicitations: d.Solicitations,
	}
}

// AdvanceResponse reports a successful phase transition.
type AdvanceResponse struct {
	Message  string `json:"message"`
	NewPhase string `json:"novo_status"`
}

func FromAdvance(next entities.Phase) AdvanceResponse {
	return AdvanceResponse{Message: "Avançou para próxima fase", NewPhase: string(next)}
}

// GatingBlockedResponse is the distinguished payload for the checklist
// gate: GatingBlocked is always true so callers can tell a hard process
// block apart from a generic error.
type GatingBlockedResponse struct {
	Error         string `json:"error"`
	GatingBlocked bool   `json:"gating_blocked"`
}

func NewGatingBlocked() GatingBlockedResponse {
	return GatingBlockedResponse{
		Error:         "Trava de Processo: preencha 100% do checklist da fase atual antes de avançar.",
		GatingBlocked: true,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
