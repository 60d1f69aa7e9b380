package entities

import "time"

// AuditAction tags an audit log entry with the operation that produced it.

type AuditAction string

const (
	AuditActionCreation     AuditAction = "CRIACAO"
	AuditActionPhaseAdvance AuditAction = "AVANCO_FASE"
	AuditActionSignConclude AuditAction = "ASSINATURA_CONCLUSAO"
)

// AuditLogEntry is one immutable record of a workflow transition.
//
// Storage model (DynamoDB):
//   - table: audit_logs, PK: id
//   - GSI1 (pedido_id-index): pedido_id
//
// Entries are append-only: never mutated, never deleted. PreviousPhase is
// empty for the synthetic creation entry.

type AuditLogEntry struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"pedido_id"`
	Action        AuditAction `json:"acao"`
	PreviousPhase Phase       `json:"status_anterior,omitempty"`
	NewPhase      Phase       `json:"status_novo"`
	ActorID       string      `json:"usuario_id"`
	ActorName     string      `json:"usuario_nome,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
