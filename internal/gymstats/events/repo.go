package events

import (
	"context"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
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

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO gymstats_event (type, data, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id;
	`,
		event.Type,
		event.Data,
		event.Timestamp,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListWeightReports returns the user's weight reports since the given time, oldest first.
// Reports with an unparsable weight are skipped.
func (r *Repo) ListWeightReports(ctx context.Context, userID string, since time.Time) (_ []WeightReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.list-weight-reports")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("since", since.String()),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, type, data, timestamp
		FROM gymstats_event
		WHERE type = $1
		  AND data->>'user_id' = $2
		  AND timestamp >= $3
		ORDER BY timestamp ASC;
	`, EventTypeWeightReport, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []WeightReport
	for rows.Next() {
		event := Event{}
		if err := rows.Scan(&event.ID, &event.Type, &event.Data, &event.Timestamp); err != nil {
			return nil, err
		}
		wr, err := WeightReportFromEvent(event)
		if err != nil {
			log.Warnf("skipping weight report: %s", err)
			continue
		}
		reports = append(reports, wr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
