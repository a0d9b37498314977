package cycles

import (
	"context"
	"errors"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type StateRepo struct {
	db *pgxpool.Pool
}

func NewStateRepo(db *pgxpool.Pool) *StateRepo {
	return &StateRepo{
		db: db,
	}
}

func (r *StateRepo) Get(ctx context.Context, userID string) (_ *UserCycleState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	state := &UserCycleState{UserID: userID}
	err = r.db.QueryRow(ctx, `
		SELECT cycle_id, start_date, phase_index, week_in_phase
		FROM user_cycle_state
		WHERE user_id = $1;
	`, userID).Scan(&state.CycleID, &state.StartDate, &state.PhaseIndex, &state.WeekInPhase)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}

	return state, nil
}

func (r *StateRepo) Save(ctx context.Context, state UserCycleState) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycles.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", state.UserID),
		attribute.String("cycle.id", state.CycleID),
	)

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_cycle_state (user_id, cycle_id, start_date, phase_index, week_in_phase, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id) DO UPDATE
		SET cycle_id = EXCLUDED.cycle_id,
		    start_date = EXCLUDED.start_date,
		    phase_index = EXCLUDED.phase_index,
		    week_in_phase = EXCLUDED.week_in_phase,
		    updated_at = now();
	`, state.UserID, state.CycleID, state.StartDate, state.PhaseIndex, state.WeekInPhase)
	return err
}
