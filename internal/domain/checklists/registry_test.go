package checklists

import (
	"testing"

	"teledias_workflow/internal/domain/entities"
)

func TestRegistryForType(t *testing.T) {
	r := NewRegistry()

	t.Run("every order type has a template", func(t *testing.T) {
		types := []entities.OrderType{
			entities.OrderTypeVenda,
			entities.OrderTypeVendaSeminovos,
			entities.OrderTypeManutencaoRadios,
			entities.OrderTypeEventos,
			entities.OrderTypeClienteFixo,
			entities.OrderTypeAditivo,
			entities.OrderTypeCancelamento,
			entities.OrderTypeChamadoTecnico,
		}
		for _, ot := range types {
			tpl := r.ForType(ot)
			if len(tpl) == 0 {
				t.Fatalf("expected template for %s", ot)
			}
		}
	})

	t.Run("unknown type falls back to venda", func(t *testing.T) {
		fallback := r.ForType(entities.OrderType("aluguel_mensal"))
		venda := r.ForType(entities.OrderTypeVenda)
		if len(fallback) != len(venda) {
			t.Fatalf("expected fallback to venda template")
		}
		if fallback[entities.PhaseComercial][0] != venda[entities.PhaseComercial][0] {
			t.Fatalf("fallback template differs from venda")
		}
	})
}

func TestRegistryTasks(t *testing.T) {
	r := NewRegistry()

	t.Run("venda comercial has tasks", func(t *testing.T) {
		tasks := r.Tasks(entities.OrderTypeVenda, entities.PhaseComercial)
		if len(tasks) == 0 {
			t.Fatalf("expected comercial tasks for venda")
		}
	})

	t.Run("terminal phase has no tasks", func(t *testing.T) {
		for _, ot := range []entities.OrderType{entities.OrderTypeVenda, entities.OrderTypeEventos} {
			if tasks := r.Tasks(ot, entities.PhaseConcluido); len(tasks) != 0 {
				t.Fatalf("expected no tasks in concluido for %s, got %d", ot, len(tasks))
			}
		}
	})

	t.Run("tasks keep template order", func(t *testing.T) {
		first := r.Tasks(entities.OrderTypeVenda, entities.PhaseLaboratorio)
		second := r.Tasks(entities.OrderTypeVenda, entities.PhaseLaboratorio)
		if len(first) != len(second) {
			t.Fatalf("expected stable task list")
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("task order changed between calls at %d", i)
			}
		}
	})
}
