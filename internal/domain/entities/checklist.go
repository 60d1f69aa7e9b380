package entities

// ChecklistItem is one required task within a specific order+phase.
//
// Storage model (DynamoDB):
//   - table: pedido_checklists, PK: id
//   - GSI1 (pedido_id-index): pedido_id
//
// The description is copied verbatim from the template at order-creation
// time, so later template edits never retroactively alter existing orders.
// The phase is fixed at creation and never changes.

type ChecklistItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"pedido_id"`
	Phase       Phase  `json:"fase_setor"`
	Description string `json:"descricao"`
	Completed   bool   `json:"concluido"`
	Position    int    `json:"posicao"`
}
