package usecase

import (
	"context"
	"log/slog"
	"time"

	"user-sync-service/app/domain"
	apperrors "user-sync-service/app/utils/errors"
	applogger "user-sync-service/app/utils/logger"
)

// sagaStep is one forward action in a saga, with an optional compensating
// action that undoes it. Steps with nothing to undo leave compensate nil.
type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// sagaFailure is the outcome of a failed saga run. The driver returns it
// instead of an error so callers decide how to surface the original failure
// and any compensation failure separately.
type sagaFailure struct {
	step         string
	original     error
	rolledBack   bool
	rollbackStep string
	rollbackErr  error
}

// runSteps executes steps forward in order. On the first failure it runs the
// compensations of the already-completed steps in reverse order, attempting
// each exactly once, and stops compensating at the first compensation
// failure. Returns nil when every step succeeds.
func runSteps(ctx context.Context, logger *slog.Logger, op *domain.SagaOperation, steps []sagaStep) *sagaFailure {
	log := applogger.WithOperation(logger, op.ID)
	start := time.Now()
	completed := make([]sagaStep, 0, len(steps))

	for _, step := range steps {
		op.Step = step.name
		log.Info("saga step starting", "operation", op.Kind, "step", step.name)

		if err := step.run(ctx); err != nil {
			log.Error("saga step failed",
				"operation", op.Kind, "step", step.name, "error", err)
			return compensateCompleted(ctx, log, op, completed, step.name, err)
		}

		completed = append(completed, step)
	}

	applogger.LogDuration(log, start, string(op.Kind))
	return nil
}

// compensateCompleted undoes completed steps in reverse order after failedStep
// failed with original.
func compensateCompleted(ctx context.Context, logger *slog.Logger, op *domain.SagaOperation, completed []sagaStep, failedStep string, original error) *sagaFailure {
	failure := &sagaFailure{
		step:       failedStep,
		original:   original,
		rolledBack: true,
	}

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.compensate == nil {
			continue
		}

		logger.Warn("compensating saga step", "operation", op.Kind, "step", step.name)

		if err := step.compensate(ctx); err != nil {
			logger.Error("saga compensation failed",
				"operation", op.Kind, "step", step.name,
				"original_error", original, "rollback_error", err)

			failure.rolledBack = false
			failure.rollbackStep = step.name
			failure.rollbackErr = err
			return failure
		}
	}

	return failure
}

// annotateWithOperation tags err with the saga operation ID. Predefined
// error values are shared, so the AppError is cloned before mutation.
func annotateWithOperation(err error, op *domain.SagaOperation) error {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return apperrors.NewInternalError(err).WithOperationID(op.ID)
	}

	clone := *appErr
	if appErr.Context != nil {
		clone.Context = make(map[string]interface{}, len(appErr.Context)+1)
		for k, v := range appErr.Context {
			clone.Context[k] = v
		}
	}

	return clone.WithOperationID(op.ID)
}
