package catalog

import (
	"context"
	"fmt"

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

func (r *Repo) ListCustom(ctx context.Context, userID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list-custom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, name, type, muscle_groups
		FROM custom_exercise
		WHERE user_id = $1
		ORDER BY name;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("custom exercises [query]: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		ex := Exercise{Custom: true}
		var exType string
		if err := rows.Scan(&ex.ID, &ex.Name, &exType, &ex.MuscleGroups); err != nil {
			return nil, fmt.Errorf("custom exercises [rows scan]: %w", err)
		}
		ex.Type = ExerciseType(exType)
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *Repo) AddCustom(ctx context.Context, userID string, ex Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add-custom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO custom_exercise (id, user_id, name, type, muscle_groups)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id, user_id) DO UPDATE
		SET name = EXCLUDED.name, type = EXCLUDED.type, muscle_groups = EXCLUDED.muscle_groups;
	`, ex.ID, userID, ex.Name, string(ex.Type), ex.MuscleGroups)
	return err
}
