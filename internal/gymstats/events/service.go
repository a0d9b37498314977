package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"
)

var ErrInvalidWeight = errors.New("invalid weight")

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) AddWeightReport(ctx context.Context, wr WeightReport) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.events.add.weightreport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if wr.Weight <= 0 {
		return 0, ErrInvalidWeight
	}

	event, err := s.repo.Add(ctx, NewWeightReportEvent(wr))
	if err != nil {
		return 0, fmt.Errorf("add weight report event: %w", err)
	}
	return event.ID, nil
}
