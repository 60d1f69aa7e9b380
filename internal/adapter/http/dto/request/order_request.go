package request

import "teledias_workflow/internal/domain/entities"

// CreateOrderRequest creates an order. The type is validated against the
// supported enumeration and falls back to the standard sale when absent or
// unrecognized; the customer display name is denormalized onto the order.
type CreateOrderRequest struct {
	CustomerID   string `json:"cliente_id" binding:"required"`
	CustomerName string `json:"cliente_nome"`
	Type         string `json:"tipo"`
	Notes        string `json:"observacoes"`
}

// FreightUpdateRequest is a partial update: nil fields are left untouched.
type FreightUpdateRequest struct {
	Value   *float64 `json:"frete_valor"`
	Carrier *string  `json:"transportadora"`
	Data    *string  `json:"dados_frete"`
	Status  *string  `json:"frete_status"`
}

func (r FreightUpdateRequest) ToUpdate() entities.FreightUpdate {
	return entities.FreightUpdate{
		Carrier: r.Carrier,
		Value:   r.Value,
		Data:    r.Data,
		Status:  r.Status,
	}
}

type EquipmentRequest struct {
	SerialNumber string `json:"serial_number"`
	Model        string `json:"modelo"`
	Accessories  string `json:"acessorios"`
}

// EquipmentListRequest replaces the order's equipment list wholesale:
// callers submit the complete desired state every time.
type EquipmentListRequest struct {
	Equipment []EquipmentRequest `json:"equipamentos" binding:"required"`
}

func (r EquipmentListRequest) ToEntities() []entities.Equipment {
	out := make([]entities.Equipment, 0, len(r.Equipment))
	for _, e := range r.Equipment {
		out = append(out, entities.Equipment{
			SerialNumber: e.SerialNumber,
			Model:        e.Model,
			Accessories:  e.Accessories,
		})
	}
	return out
}

type PartRequest struct {
	EquipmentID    string  `json:"equipamento_id"`
	Component      string  `json:"componente"`
	Quantity       int     `json:"quantidade"`
	UnitValue      float64 `json:"valor_base"`
	LaborValue     float64 `json:"valor_mao_de_obra"`
	SafePlanExempt bool    `json:"isenta_plano_safe"`
}

// PartsListRequest replaces the order's parts list wholesale.
type PartsListRequest struct {
	Parts []PartRequest `json:"pecas" binding:"required"`
}

func (r PartsListRequest) ToEntities() []entities.Part {
	out := make([]entities.Part, 0, len(r.Parts))
	for _, p := range r.Parts {
		out = append(out, entities.Part{
			EquipmentID:    p.EquipmentID,
			Component:      p.Component,
			Quantity:       p.Quantity,
			UnitValue:      p.UnitValue,
			LaborValue:     p.LaborValue,
			SafePlanExempt: p.SafePlanExempt,
		})
	}
	return out
}

type SolicitationRequest struct {
	Model    string `json:"modelo"`
	Quantity int    `json:"quantidade"`
}

// SolicitationListRequest replaces the commercial stock-request list
// wholesale.
type SolicitationListRequest struct {
	Solicitations []SolicitationRequest `json:"solicitacoes" binding:"required"`
}

func (r SolicitationListRequest) ToEntities() []entities.Solicitation {
	out := make([]entities.Solicitation, 0, len(r.Solicitations))
	for _, s := range r.Solicitations {
		out = append(out, entities.Solicitation{Model: s.Model, Quantity: s.Quantity})
	}
	return out
}

// ToggleChecklistRequest sets a checklist item's completion flag. A pointer
// so that an explicit false is distinguishable from a missing field.
type ToggleChecklistRequest struct {
	Completed *bool `json:"concluido" binding:"required"`
}

// SignConcludeRequest optionally updates the agreed value while signing the
// O.S. at delivery.
type SignConcludeRequest struct {
	AgreedValue *float64 `json:"valor_acordado"`
}
