package suggestions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymcoach/internal/generation"
	"github.com/2beens/gymcoach/internal/gymstats/analysis"
	"github.com/2beens/gymcoach/internal/gymstats/catalog"
	"github.com/2beens/gymcoach/internal/gymstats/cycles"
	"github.com/2beens/gymcoach/internal/gymstats/events"
	"github.com/2beens/gymcoach/internal/gymstats/sessions"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=suggestions_test

const (
	MaxExercisesPerWorkout = 20
	maxConcurrentRequests  = 8
)

var ErrInvalidRequest = errors.New("invalid workout request")

type sessionsRepo interface {
	ListCompleted(ctx context.Context, userID string, since *time.Time) ([]sessions.WorkoutSession, error)
}

type weightRepo interface {
	ListWeightReports(ctx context.Context, userID string, since time.Time) ([]events.WeightReport, error)
}

type cycleService interface {
	CurrentOrDefault(ctx context.Context, userID string, level cycles.ExperienceLevel, goal cycles.Goal) (*cycles.Position, error)
}

type exerciseCatalog interface {
	Lookup(ctx context.Context, userID, exerciseID string) (catalog.Exercise, bool)
}

type PlannedExercise struct {
	ExerciseID string `json:"exerciseId"`
	TargetReps int    `json:"targetReps"`
}

type WorkoutRequest struct {
	UserID    string                 `json:"userId"`
	Goal      cycles.Goal            `json:"goal"`
	Level     cycles.ExperienceLevel `json:"level"`
	Exercises []PlannedExercise      `json:"exercises"`
}

// Diagnostics describe how a single suggestion was produced.
type Diagnostics struct {
	FromCache    bool                 `json:"fromCache"`
	UsedFallback bool                 `json:"usedFallback"`
	ParseKind    string               `json:"parseKind,omitempty"`
	Attempts     []generation.Attempt `json:"attempts,omitempty"`
}

type ExerciseSuggestion struct {
	Suggestion  Suggestion                 `json:"suggestion"`
	Analysis    *analysis.ExerciseAnalysis `json:"analysis"`
	Diagnostics Diagnostics                `json:"diagnostics"`
}

type WorkoutSuggestions struct {
	BatchID     string                      `json:"batchId"`
	UserID      string                      `json:"userId"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	History     analysis.HistorySufficiency `json:"history"`
	BodyWeight  *BodyWeightTrend            `json:"bodyWeight,omitempty"`
	Phase       *cycles.Phase               `json:"phase,omitempty"`
	Exercises   []ExerciseSuggestion        `json:"exercises"`
}

type ServiceParams struct {
	Sessions    sessionsRepo
	Weights     weightRepo
	Cycles      cycleService
	Catalog     exerciseCatalog
	Analyzer    *analysis.Analyzer
	Generator   generation.Generator
	Store       Store
	Metrics     *metrics.Manager
	MaxAttempts int
	CallTimeout time.Duration
	Now         func() time.Time
}

type Service struct {
	sessions    sessionsRepo
	weights     weightRepo
	cycles      cycleService
	catalog     exerciseCatalog
	analyzer    *analysis.Analyzer
	generator   generation.Generator
	store       Store
	metrics     *metrics.Manager
	maxAttempts int
	callTimeout time.Duration
	now         func() time.Time
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		sessions:    params.Sessions,
		weights:     params.Weights,
		cycles:      params.Cycles,
		catalog:     params.Catalog,
		analyzer:    params.Analyzer,
		generator:   params.Generator,
		store:       params.Store,
		metrics:     params.Metrics,
		maxAttempts: params.MaxAttempts,
		callTimeout: params.CallTimeout,
		now:         params.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.analyzer == nil {
		s.analyzer = analysis.NewAnalyzer(analysis.AnalyzerParams{Metrics: params.Metrics, Now: s.now})
	}
	return s
}

func (r WorkoutRequest) validate() error {
	if r.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidRequest)
	}
	if len(r.Exercises) == 0 {
		return fmt.Errorf("%w: no exercises", ErrInvalidRequest)
	}
	if len(r.Exercises) > MaxExercisesPerWorkout {
		return fmt.Errorf("%w: too many exercises: %d", ErrInvalidRequest, len(r.Exercises))
	}
	for _, ex := range r.Exercises {
		if ex.ExerciseID == "" {
			return fmt.Errorf("%w: missing exercise id", ErrInvalidRequest)
		}
		if ex.TargetReps < 0 || ex.TargetReps > maxSuggestedReps {
			return fmt.Errorf("%w: target reps out of range: %d", ErrInvalidRequest, ex.TargetReps)
		}
	}
	return nil
}

// SuggestWorkout returns one suggestion per planned exercise, in the order of the plan.
// Only a failure to read the session history is returned as an error, every other
// dependency (generator, cache, body weight, cycle state) degrades the result instead.
func (s *Service) SuggestWorkout(ctx context.Context, req WorkoutRequest) (_ *WorkoutSuggestions, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.suggestions.suggestWorkout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if req.Goal == "" {
		req.Goal = cycles.GoalGeneral
	}
	if req.Level == "" {
		req.Level = cycles.LevelIntermediate
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	batchID := uuid.NewString()
	span.SetAttributes(
		attribute.String("batch.id", batchID),
		attribute.String("user.id", req.UserID),
		attribute.Int("exercises", len(req.Exercises)),
	)

	history, err := s.sessions.ListCompleted(ctx, req.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	now := s.now()
	sufficiency := analysis.CheckHistory(now, history)
	user, phase := s.userContext(ctx, req, now, sufficiency)

	result := &WorkoutSuggestions{
		BatchID:     batchID,
		UserID:      req.UserID,
		GeneratedAt: now,
		History:     sufficiency,
		BodyWeight:  user.BodyWeight,
		Phase:       phase,
		Exercises:   make([]ExerciseSuggestion, len(req.Exercises)),
	}

	// every exercise is an independent request, results keep the plan order
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRequests)
	for i, planned := range req.Exercises {
		g.Go(func() error {
			result.Exercises[i] = s.suggestExercise(gCtx, batchID, user, history, planned)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.HistogramSuggestionLatency.Observe(time.Since(started).Seconds())
	}

	return result, nil
}

func (s *Service) userContext(
	ctx context.Context,
	req WorkoutRequest,
	now time.Time,
	sufficiency analysis.HistorySufficiency,
) (UserContext, *cycles.Phase) {
	user := UserContext{
		UserID:           req.UserID,
		Goal:             req.Goal,
		Level:            req.Level,
		PlateauDetection: sufficiency.Sufficient,
	}

	if s.weights != nil {
		reports, err := s.weights.ListWeightReports(ctx, req.UserID, now.AddDate(0, 0, -bodyWeightWindowDays))
		if err != nil {
			log.Warnf("suggestions: list weight reports for %s: %s", req.UserID, err)
		} else {
			user.BodyWeight = BodyWeightTrendFrom(now, reports)
		}
	}

	var phase *cycles.Phase
	if s.cycles != nil {
		pos, err := s.cycles.CurrentOrDefault(ctx, req.UserID, req.Level, req.Goal)
		if err != nil {
			log.Warnf("suggestions: resolve training cycle for %s: %s", req.UserID, err)
		} else {
			user.Guidance = cycles.Guidance(req.Goal, req.Level, pos.Cycle, pos.State)
			phase = pos.CurrentPhase
		}
	}

	return user, phase
}

func (s *Service) suggestExercise(
	ctx context.Context,
	batchID string,
	user UserContext,
	history []sessions.WorkoutSession,
	planned PlannedExercise,
) ExerciseSuggestion {
	exercise, _ := s.catalog.Lookup(ctx, user.UserID, planned.ExerciseID)
	exCtx := ExerciseContext{
		Exercise:   exercise,
		TargetReps: planned.TargetReps,
		RecentSets: RecentSets(history, planned.ExerciseID, recentSetsLimit),
		Analysis: s.analyzer.Analyze(ctx, user.UserID, history, analysis.Params{
			ExerciseID:       planned.ExerciseID,
			ExerciseName:     exercise.Name,
			TargetReps:       planned.TargetReps,
			PlateauDetection: user.PlateauDetection,
		}),
	}

	key := storeKey(user.UserID, planned.ExerciseID, planned.TargetReps)
	hash := ContentHash(user, exCtx)
	if cached := s.cached(ctx, key, hash); cached != nil {
		return ExerciseSuggestion{
			Suggestion:  *cached,
			Analysis:    exCtx.Analysis,
			Diagnostics: Diagnostics{FromCache: true},
		}
	}

	fallback := fallbackFor(exCtx)
	outcome := generation.Run(ctx, s.generator.Generate, buildPrompt(user, exCtx), generation.Policy[generated]{
		Parse:       generation.JSONParser(fallback),
		Validate:    validator(exCtx),
		Fallback:    fallback,
		MaxAttempts: s.maxAttempts,
		CallTimeout: s.callTimeout,
	})
	s.report(batchID, planned.ExerciseID, outcome)

	suggestion := outcome.Value.toSuggestion(exCtx)
	if !outcome.UsedFallback {
		s.save(ctx, key, Entry{Suggestion: suggestion, CreatedAt: s.now(), Hash: hash})
	}

	return ExerciseSuggestion{
		Suggestion: suggestion,
		Analysis:   exCtx.Analysis,
		Diagnostics: Diagnostics{
			UsedFallback: outcome.UsedFallback,
			ParseKind:    outcome.ParseKind.String(),
			Attempts:     outcome.Attempts,
		},
	}
}

// cached returns a stored suggestion still valid for the given inputs.
// Store failures and corrupt entries are misses.
func (s *Service) cached(ctx context.Context, key string, hash uint64) *Suggestion {
	if s.store == nil {
		return nil
	}

	entry, err := s.store.Get(ctx, key)
	if err != nil {
		log.Debugf("suggestions: cache get %s: %s", key, err)
		s.countCache("miss")
		return nil
	}
	if entry == nil || !entry.Usable(s.now(), hash) {
		s.countCache("miss")
		return nil
	}

	s.countCache("hit")
	return &entry.Suggestion
}

func (s *Service) save(ctx context.Context, key string, entry Entry) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, key, entry); err != nil {
		log.Errorf("suggestions: cache set %s: %s", key, err)
	}
}

// report logs the attempt trail and records attempt metrics.
func (s *Service) report(batchID, exerciseID string, outcome generation.Outcome[generated]) {
	for _, a := range outcome.Attempts {
		if s.metrics != nil {
			s.metrics.CounterGeneratorAttempts.WithLabelValues(attemptOutcome(a.Stage)).Inc()
		}
		if a.Stage == generation.StageOK {
			continue
		}
		log.WithFields(log.Fields{
			"batch":    batchID,
			"exercise": exerciseID,
			"attempt":  a.Number,
			"stage":    string(a.Stage),
			"took":     a.Duration.String(),
		}).Warnf("suggestion attempt failed: %s", a.Reason)
	}

	if outcome.UsedFallback {
		if s.metrics != nil {
			s.metrics.CounterSuggestionFallbacks.Inc()
		}
		log.WithFields(log.Fields{
			"batch":    batchID,
			"exercise": exerciseID,
			"attempts": len(outcome.Attempts),
		}).Warn("suggestion generation failed, using fallback")
	}
}

func attemptOutcome(stage generation.Stage) string {
	switch stage {
	case generation.StageOK:
		return metrics.AttemptOK
	case generation.StageTransport, generation.StageTimeout, generation.StageCanceled:
		return metrics.AttemptTransportError
	case generation.StageParse:
		return metrics.AttemptParseError
	case generation.StageValidate:
		return metrics.AttemptInvalid
	default:
		panic(fmt.Sprintf("unhandled attempt stage: %q", string(stage)))
	}
}

func (s *Service) countCache(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterSuggestionCache.WithLabelValues(result).Inc()
}
