package usecase

import (
	"context"
	"errors"
	"testing"

	"teledias_workflow/internal/domain/entities"
	mock_interfaces "teledias_workflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newWorkflowUseCaseForTest(ctrl *gomock.Controller) (
	*WorkflowUseCase,
	*mock_interfaces.MockIOrderRepository,
	*mock_interfaces.MockIChecklistRepository,
	*mock_interfaces.MockIAuditLogRepository,
) {
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	checklist := mock_interfaces.NewMockIChecklistRepository(ctrl)
	audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	return NewWorkflowUseCase(orders, checklist, audit), orders, checklist, audit
}

func TestWorkflowUseCase_Advance(t *testing.T) {
	actor := Actor{ID: "user-1", Name: "Maria"}

	t.Run("invalid order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newWorkflowUseCaseForTest(ctrl)

		_, err := uc.Advance(context.Background(), "  ", actor)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, _, _ := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{}, nil)

		_, err := uc.Advance(context.Background(), "p-1", actor)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("concluded order never advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, _, _ := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseConcluido}, nil)

		_, err := uc.Advance(context.Background(), "p-1", actor)
		if !errors.Is(err, ErrOrderConcluded) {
			t.Fatalf("expected ErrOrderConcluded, got %v", err)
		}
	})

	t.Run("incomplete checklist blocks the transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, checklist, _ := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseLogistica}, nil)
		checklist.EXPECT().CountByOrderPhase(gomock.Any(), "p-1", entities.PhaseLogistica).Return(7, 5, nil)

		_, err := uc.Advance(context.Background(), "p-1", actor)
		if !errors.Is(err, ErrChecklistIncomplete) {
			t.Fatalf("expected ErrChecklistIncomplete, got %v", err)
		}
	})

	t.Run("phase with zero items is trivially passable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, checklist, audit := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseControleQualidade}, nil)
		checklist.EXPECT().CountByOrderPhase(gomock.Any(), "p-1", entities.PhaseControleQualidade).Return(0, 0, nil)
		orders.EXPECT().AdvancePhase(gomock.Any(), "p-1", entities.PhaseControleQualidade, entities.PhaseConcluido, gomock.Any()).
			Return(entities.Order{ID: "p-1", Phase: entities.PhaseConcluido}, nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.AuditLogEntry{}, nil)

		next, err := uc.Advance(context.Background(), "p-1", actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != entities.PhaseConcluido {
			t.Fatalf("expected concluido, got %s", next)
		}
	})

	t.Run("successful advance writes the audit entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, checklist, audit := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseComercial}, nil)
		checklist.EXPECT().CountByOrderPhase(gomock.Any(), "p-1", entities.PhaseComercial).Return(10, 10, nil)
		orders.EXPECT().AdvancePhase(gomock.Any(), "p-1", entities.PhaseComercial, entities.PhaseLogistica, gomock.Any()).
			Return(entities.Order{ID: "p-1", Phase: entities.PhaseLogistica}, nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != entities.AuditActionPhaseAdvance {
					t.Fatalf("expected phase advance action, got %s", e.Action)
				}
				if e.PreviousPhase != entities.PhaseComercial || e.NewPhase != entities.PhaseLogistica {
					t.Fatalf("unexpected transition in audit: %+v", e)
				}
				if e.ActorID != "user-1" || e.ActorName != "Maria" {
					t.Fatalf("unexpected actor in audit: %+v", e)
				}
				return e, nil
			},
		)

		next, err := uc.Advance(context.Background(), "p-1", actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != entities.PhaseLogistica {
			t.Fatalf("expected logistica, got %s", next)
		}
	})

	t.Run("conditional update lost to a concurrent transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, checklist, _ := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseComercial}, nil)
		checklist.EXPECT().CountByOrderPhase(gomock.Any(), "p-1", entities.PhaseComercial).Return(0, 0, nil)
		orders.EXPECT().AdvancePhase(gomock.Any(), "p-1", entities.PhaseComercial, entities.PhaseLogistica, gomock.Any()).
			Return(entities.Order{}, nil)

		_, err := uc.Advance(context.Background(), "p-1", actor)
		if !errors.Is(err, ErrPhaseConflict) {
			t.Fatalf("expected ErrPhaseConflict, got %v", err)
		}
	})

	t.Run("checklist count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, checklist, _ := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseComercial}, nil)
		checklist.EXPECT().CountByOrderPhase(gomock.Any(), "p-1", entities.PhaseComercial).Return(0, 0, errors.New("db"))

		_, err := uc.Advance(context.Background(), "p-1", actor)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWorkflowUseCase_SignAndConclude(t *testing.T) {
	actor := Actor{ID: "user-2", Name: "Carlos"}
	agreed := 1500.0

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, _, _ := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{}, nil)

		_, err := uc.SignAndConclude(context.Background(), "p-1", actor, nil)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("concluded order rejects the side channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, _, _ := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseConcluido}, nil)

		_, err := uc.SignAndConclude(context.Background(), "p-1", actor, nil)
		if !errors.Is(err, ErrOrderConcluded) {
			t.Fatalf("expected ErrOrderConcluded, got %v", err)
		}
	})

	t.Run("bypasses the checklist gate straight into financeiro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, _, audit := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseConsultorExterno}, nil)
		orders.EXPECT().SignAndConclude(gomock.Any(), "p-1", entities.PhaseConsultorExterno, &agreed, gomock.Any()).
			Return(entities.Order{ID: "p-1", Phase: entities.PhaseFinanceiro, AgreedValue: &agreed}, nil)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
				if e.Action != entities.AuditActionSignConclude {
					t.Fatalf("expected sign-conclude action, got %s", e.Action)
				}
				if e.PreviousPhase != entities.PhaseConsultorExterno || e.NewPhase != entities.PhaseFinanceiro {
					t.Fatalf("unexpected transition in audit: %+v", e)
				}
				return e, nil
			},
		)

		res, err := uc.SignAndConclude(context.Background(), "p-1", actor, &agreed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Phase != entities.PhaseFinanceiro {
			t.Fatalf("expected financeiro, got %s", res.Phase)
		}
		if res.AgreedValue == nil || *res.AgreedValue != agreed {
			t.Fatalf("expected agreed value to be stamped")
		}
	})

	t.Run("conditional update lost to a concurrent transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, orders, _, _ := newWorkflowUseCaseForTest(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Order{ID: "p-1", Phase: entities.PhaseLaboratorio}, nil)
		orders.EXPECT().SignAndConclude(gomock.Any(), "p-1", entities.PhaseLaboratorio, nil, gomock.Any()).
			Return(entities.Order{}, nil)

		_, err := uc.SignAndConclude(context.Background(), "p-1", actor, nil)
		if !errors.Is(err, ErrPhaseConflict) {
			t.Fatalf("expected ErrPhaseConflict, got %v", err)
		}
	})
}
