package sessions

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores a session together with all its sets in a single transaction.
func (r *Repo) Add(ctx context.Context, session WorkoutSession) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err := tx.QueryRow(ctx, `
		INSERT INTO workout_session (user_id, started_at, completed_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`, session.UserID, session.StartedAt, session.CompletedAt).Scan(&session.ID); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	position := 0
	for _, entry := range session.Entries {
		for _, set := range entry.Sets {
			if _, err := tx.Exec(ctx, `
				INSERT INTO session_set (session_id, exercise_id, position, weight, reps, unit, completed_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);
			`, session.ID, entry.ExerciseID, position, set.Weight, set.Reps, string(set.Unit), set.CompletedAt); err != nil {
				return nil, fmt.Errorf("insert set %d: %w", position, err)
			}
			position++
		}
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

// ListCompleted returns completed sessions of the user, newest first.
// A nil since lists the whole history.
func (r *Repo) ListCompleted(ctx context.Context, userID string, since *time.Time) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list-completed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.started_at, s.completed_at, ss.exercise_id, ss.weight, ss.reps, ss.unit, ss.completed_at
		FROM workout_session s
		LEFT JOIN session_set ss ON ss.session_id = s.id
		WHERE s.user_id = $1
		  AND s.completed_at IS NOT NULL
		  AND ($2::timestamptz IS NULL OR s.started_at >= $2)
		ORDER BY s.started_at DESC, s.id, ss.position;
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []WorkoutSession
	id2idx := make(map[int]int)
	for rows.Next() {
		var (
			id          int
			startedAt   time.Time
			completedAt *time.Time
			exerciseID  *string
			weight      *float64
			reps        *int
			unit        *string
			setDoneAt   *time.Time
		)
		if err := rows.Scan(&id, &startedAt, &completedAt, &exerciseID, &weight, &reps, &unit, &setDoneAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		idx, ok := id2idx[id]
		if !ok {
			sessions = append(sessions, WorkoutSession{
				ID:          id,
				UserID:      userID,
				StartedAt:   startedAt,
				CompletedAt: completedAt,
			})
			idx = len(sessions) - 1
			id2idx[id] = idx
		}

		// session without any sets
		if exerciseID == nil {
			continue
		}

		set := CompletedSet{
			Weight:      *weight,
			Reps:        *reps,
			Unit:        WeightUnit(*unit),
			CompletedAt: *setDoneAt,
		}
		session := &sessions[idx]
		if n := len(session.Entries); n > 0 && session.Entries[n-1].ExerciseID == *exerciseID {
			session.Entries[n-1].Sets = append(session.Entries[n-1].Sets, set)
		} else {
			session.Entries = append(session.Entries, ExerciseEntry{
				ExerciseID: *exerciseID,
				Sets:       []CompletedSet{set},
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}
