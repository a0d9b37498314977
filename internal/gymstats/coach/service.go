package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/analysis"
	"github.com/2beens/gymcoach/internal/gymstats/catalog"
	"github.com/2beens/gymcoach/internal/gymstats/cycles"
	"github.com/2beens/gymcoach/internal/gymstats/sessions"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=coach_test

var (
	ErrInvalidSession  = errors.New("invalid workout session")
	ErrInvalidExercise = errors.New("invalid exercise")
)

type sessionsRepo interface {
	Add(ctx context.Context, session sessions.WorkoutSession) (*sessions.WorkoutSession, error)
	ListCompleted(ctx context.Context, userID string, since *time.Time) ([]sessions.WorkoutSession, error)
}

type cycleService interface {
	Catalog() *cycles.Catalog
	Start(ctx context.Context, userID, cycleID string, start time.Time) (*cycles.Position, error)
	CurrentOrDefault(ctx context.Context, userID string, level cycles.ExperienceLevel, goal cycles.Goal) (*cycles.Position, error)
}

type exerciseCatalog interface {
	Lookup(ctx context.Context, userID, exerciseID string) (catalog.Exercise, bool)
	List(ctx context.Context, userID string) []catalog.Exercise
}

type customExercises interface {
	AddCustom(ctx context.Context, userID string, ex catalog.Exercise) error
}

type ServiceParams struct {
	Sessions        sessionsRepo
	Cycles          cycleService
	Catalog         exerciseCatalog
	CustomExercises customExercises
	Analyzer        *analysis.Analyzer
	Now             func() time.Time
}

// Service answers read questions about a user's training: per exercise
// analysis, history density and where they are in their training cycle.
type Service struct {
	sessions        sessionsRepo
	cycles          cycleService
	catalog         exerciseCatalog
	customExercises customExercises
	analyzer        *analysis.Analyzer
	now             func() time.Time
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		sessions:        params.Sessions,
		cycles:          params.Cycles,
		catalog:         params.Catalog,
		customExercises: params.CustomExercises,
		analyzer:        params.Analyzer,
		now:             params.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.analyzer == nil {
		s.analyzer = analysis.NewAnalyzer(analysis.AnalyzerParams{Now: s.now})
	}
	return s
}

// ExerciseAnalysis analyzes one exercise over the user's whole history. Plateau
// detection is only enabled when the history passes the sufficiency gate.
func (s *Service) ExerciseAnalysis(ctx context.Context, userID, exerciseID string, targetReps int) (_ *analysis.ExerciseAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.exerciseAnalysis")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("exercise.id", exerciseID),
	)

	history, err := s.sessions.ListCompleted(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	exercise, _ := s.catalog.Lookup(ctx, userID, exerciseID)
	return s.analyzer.Analyze(ctx, userID, history, analysis.Params{
		ExerciseID:       exerciseID,
		ExerciseName:     exercise.Name,
		TargetReps:       targetReps,
		PlateauDetection: analysis.HasSufficientHistory(s.now(), history),
	}), nil
}

func (s *Service) HistorySufficiency(ctx context.Context, userID string) (_ analysis.HistorySufficiency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.historySufficiency")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	history, err := s.sessions.ListCompleted(ctx, userID, nil)
	if err != nil {
		return analysis.HistorySufficiency{}, fmt.Errorf("list sessions: %w", err)
	}
	return analysis.CheckHistory(s.now(), history), nil
}

func (s *Service) TrainingPhase(ctx context.Context, userID string, level cycles.ExperienceLevel, goal cycles.Goal) (*cycles.Position, error) {
	return s.cycles.CurrentOrDefault(ctx, userID, level, goal)
}

func (s *Service) StartCycle(ctx context.Context, userID, cycleID string, start time.Time) (*cycles.Position, error) {
	if start.IsZero() {
		start = s.now()
	}
	return s.cycles.Start(ctx, userID, cycleID, start)
}

func (s *Service) Cycles() []cycles.CycleConfig {
	return s.cycles.Catalog().List()
}

func (s *Service) Exercises(ctx context.Context, userID string) []catalog.Exercise {
	return s.catalog.List(ctx, userID)
}

func (s *Service) AddCustomExercise(ctx context.Context, userID string, ex catalog.Exercise) error {
	if ex.ID == "" || ex.Name == "" {
		return fmt.Errorf("%w: custom exercise needs an id and a name", ErrInvalidExercise)
	}
	if ex.Type == "" {
		ex.Type = catalog.TypeCompound
	}
	return s.customExercises.AddCustom(ctx, userID, ex)
}

// RecordSession stores a workout session. Completing a session changes the
// completed session count, which invalidates every cached analysis of the user.
func (s *Service) RecordSession(ctx context.Context, session sessions.WorkoutSession) (*sessions.WorkoutSession, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	return s.sessions.Add(ctx, session)
}

func validateSession(session sessions.WorkoutSession) error {
	if session.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidSession)
	}
	if session.StartedAt.IsZero() {
		return fmt.Errorf("%w: missing start time", ErrInvalidSession)
	}
	if session.CompletedAt != nil && session.CompletedAt.Before(session.StartedAt) {
		return fmt.Errorf("%w: completed before it started", ErrInvalidSession)
	}
	for _, entry := range session.Entries {
		if entry.ExerciseID == "" {
			return fmt.Errorf("%w: entry without exercise id", ErrInvalidSession)
		}
		for _, set := range entry.Sets {
			if set.Weight < 0 || set.Reps < 0 {
				return fmt.Errorf("%w: negative weight or reps for %s", ErrInvalidSession, entry.ExerciseID)
			}
		}
	}
	return nil
}
