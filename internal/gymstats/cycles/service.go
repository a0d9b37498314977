package cycles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=cycles_test

type stateRepo interface {
	Get(ctx context.Context, userID string) (*UserCycleState, error)
	Save(ctx context.Context, state UserCycleState) error
}

// Position is a resolved view of a user's cycle state.
type Position struct {
	State               UserCycleState `json:"state"`
	Cycle               CycleConfig    `json:"cycle"`
	CurrentPhase        *Phase         `json:"currentPhase"`
	TotalWeeksCompleted int            `json:"totalWeeksCompleted"`
	TotalWeeks          int            `json:"totalWeeks"`
	Complete            bool           `json:"complete"`
}

type Service struct {
	catalog *Catalog
	repo    stateRepo
	now     func() time.Time
}

func NewService(catalog *Catalog, repo stateRepo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog: catalog,
		repo:    repo,
		now:     now,
	}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Start puts the user at the first week of the given cycle.
func (s *Service) Start(ctx context.Context, userID, cycleID string, start time.Time) (_ *Position, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycles.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cfg, err := s.catalog.Get(cycleID)
	if err != nil {
		return nil, err
	}

	state := UserCycleState{
		UserID:      userID,
		CycleID:     cfg.ID,
		StartDate:   start,
		PhaseIndex:  0,
		WeekInPhase: 1,
	}
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}

	return resolve(cfg, state), nil
}

// Current resolves where the user is in their cycle, moving the stored state
// forward when weeks have passed since it was last saved.
func (s *Service) Current(ctx context.Context, userID string) (_ *Position, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycles.current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	state, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.catalog.Get(state.CycleID)
	if err != nil {
		return nil, err
	}

	phaseIndex, weekInPhase := PositionAt(cfg, state.StartDate, s.now())
	if phaseIndex != state.PhaseIndex || weekInPhase != state.WeekInPhase {
		state.PhaseIndex = phaseIndex
		state.WeekInPhase = weekInPhase
		if err := s.repo.Save(ctx, *state); err != nil {
			// the resolved position is still correct, persisting can be retried next time
			log.Errorf("cycles: save advanced state for %s: %s", userID, err)
		}
	}

	return resolve(cfg, *state), nil
}

// CurrentOrDefault is like Current, but users that never started a cycle get
// the default cycle for their level and goal, positioned at its first week.
func (s *Service) CurrentOrDefault(ctx context.Context, userID string, level ExperienceLevel, goal Goal) (*Position, error) {
	pos, err := s.Current(ctx, userID)
	if err == nil {
		return pos, nil
	}
	if !errors.Is(err, ErrStateNotFound) {
		return nil, err
	}

	cfg := s.catalog.DefaultCycleFor(level, goal)
	return resolve(cfg, UserCycleState{
		UserID:      userID,
		CycleID:     cfg.ID,
		StartDate:   s.now(),
		PhaseIndex:  0,
		WeekInPhase: 1,
	}), nil
}

func resolve(cfg CycleConfig, state UserCycleState) *Position {
	pos := &Position{
		State:               state,
		Cycle:               cfg,
		TotalWeeksCompleted: TotalWeeksCompleted(cfg, state),
		TotalWeeks:          cfg.TotalWeeks(),
		Complete:            IsComplete(cfg, state),
	}
	if phase, ok := CurrentPhase(cfg, state); ok {
		pos.CurrentPhase = &phase
	}
	return pos
}
