package entities

import "time"

// Phase is one stage of the fixed order pipeline.
//
// Domain notes:
//   - Every order walks the same seven phases in the same sequence; the order
//     type only changes which checklist items gate each phase.
//   - PhaseComercial is the initial phase and PhaseConcluido is terminal: an
//     order that reached it accepts no further transitions.

type Phase string

const (
	PhaseComercial         Phase = "comercial"
	PhaseLogistica         Phase = "logistica"
	PhaseLaboratorio       Phase = "laboratorio"
	PhaseConsultorExterno  Phase = "consultor_externo"
	PhaseFinanceiro        Phase = "financeiro"
	PhaseControleQualidade Phase = "controle_qualidade"
	PhaseConcluido         Phase = "concluido"
)

// phaseSequence is the single source of truth for pipeline ordering.
var phaseSequence = []Phase{
	PhaseComercial,
	PhaseLogistica,
	PhaseLaboratorio,
	PhaseConsultorExterno,
	PhaseFinanceiro,
	PhaseControleQualidade,
	PhaseConcluido,
}

// Phases returns the pipeline sequence, first to last.
func Phases() []Phase {
	out := make([]Phase, len(phaseSequence))
	copy(out, phaseSequence)
	return out
}

// IsValid reports whether p is a member of the pipeline sequence.
func (p Phase) IsValid() bool {
	for _, f := range phaseSequence {
		if f == p {
			return true
		}
	}
	return false
}

// IsTerminal reports whether p is the terminal phase.
func (p Phase) IsTerminal() bool {
	return p == PhaseConcluido
}

// Next returns the successor phase. ok is false for the terminal phase and
// for values outside the sequence, so callers can never skip stages.
func (p Phase) Next() (next Phase, ok bool) {
	for i, f := range phaseSequence {
		if f == p && i+1 < len(phaseSequence) {
			return phaseSequence[i+1], true
		}
	}
	return "", false
}

// OrderType classifies the business process an order follows.

type OrderType string

const (
	OrderTypeVenda            OrderType = "venda"
	OrderTypeVendaSeminovos   OrderType = "venda_seminovos"
	OrderTypeManutencaoRadios OrderType = "manutencao_radios"
	OrderTypeEventos          OrderType = "eventos"
	OrderTypeClienteFixo      OrderType = "cliente_fixo"
	OrderTypeAditivo          OrderType = "aditivo"
	OrderTypeCancelamento     OrderType = "cancelamento"
	OrderTypeChamadoTecnico   OrderType = "chamado_tecnico"
)

var orderTypes = []OrderType{
	OrderTypeVenda,
	OrderTypeVendaSeminovos,
	OrderTypeManutencaoRadios,
	OrderTypeEventos,
	OrderTypeClienteFixo,
	OrderTypeAditivo,
	OrderTypeCancelamento,
	OrderTypeChamadoTecnico,
}

// NormalizeOrderType maps raw input to a supported type. Unknown or empty
// values fall back to the standard sale so a data-entry typo never blocks
// order creation.
func NormalizeOrderType(raw string) OrderType {
	for _, t := range orderTypes {
		if string(t) == raw {
			return t
		}
	}
	return OrderTypeVenda
}

// Order is the tracked unit of work (pedido).
//
// Storage model (DynamoDB):
//   - table: pedidos, PK: id
//
// Customer and creator display names are denormalized at write time; the
// order row is the read model for listings. Orders are never deleted: the
// row plus its audit trail form a permanent record.

type Order struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"cliente_id"`
	CustomerName   string    `json:"cliente_nome,omitempty"`
	CreatedBy      string    `json:"usuario_id"`
	CreatorName    string    `json:"criador_nome,omitempty"`
	Type           OrderType `json:"tipo"`
	Phase          Phase     `json:"status_atual"`
	PhaseEnteredAt time.Time `json:"data_entrada_status"`
	Notes          string    `json:"observacoes,omitempty"`

	// Workflow fields accumulated as the order moves.
	FreightCarrier string     `json:"transportadora,omitempty"`
	FreightValue   *float64   `json:"frete_valor,omitempty"`
	FreightData    string     `json:"dados_frete,omitempty"`
	FreightStatus  string     `json:"frete_status,omitempty"`
	AgreedValue    *float64   `json:"valor_acordado,omitempty"`
	DeliveryDate   *time.Time `json:"data_entrega,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FreightUpdate carries a partial freight mutation. Nil fields are left
// untouched (merge semantics, not replace).
type FreightUpdate struct {
	Carrier *string
	Value   *float64
	Data    *string
	Status  *string
}

// Empty reports whether the update would touch no field.
func (f FreightUpdate) Empty() bool {
	return f.Carrier == nil && f.Value == nil && f.Data == nil && f.Status == nil
}

// Equipment is one physical unit linked to an order. The list is replaced
// wholesale on every save.
type Equipment struct {
	ID           string `json:"id"`
	OrderID      string `json:"pedido_id"`
	SerialNumber string `json:"serial_number"`
	Model        string `json:"modelo"`
	Accessories  string `json:"acessorios"`
}

// Part is one indemnity-priced component consumed by an order, with the
// price-table fields denormalized onto the row.
type Part struct {
	ID             string  `json:"id"`
	OrderID        string  `json:"pedido_id"`
	EquipmentID    string  `json:"equipamento_id,omitempty"`
	Component      string  `json:"componente"`
	Quantity       int     `json:"quantidade"`
	UnitValue      float64 `json:"valor_base"`
	LaborValue     float64 `json:"valor_mao_de_obra"`
	SafePlanExempt bool    `json:"isenta_plano_safe"`
}

// Solicitation is one commercial stock request (model + quantity).
type Solicitation struct {
	ID       string `json:"id"`
	OrderID  string `json:"pedido_id"`
	Model    string `json:"modelo"`
	Quantity int    `json:"quantidade"`
}
