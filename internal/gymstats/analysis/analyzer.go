package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/gymcoach/internal/cache"
	"github.com/2beens/gymcoach/internal/gymstats/sessions"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type cacheKey struct {
	exerciseID       string
	targetReps       int
	plateauDetection bool
}

const defaultMaxCachedUsers = 1024

type AnalyzerParams struct {
	Metrics *metrics.Manager
	Now     func() time.Time
	// MaxUsers bounds how many users have cached analyses, 0 means the default.
	MaxUsers int
}

// Analyzer memoizes analyses per user and exercise. Every user has a cache of its own whose
// epoch is the number of completed sessions in the user's history, so finishing any
// session invalidates all of that user's analyses.
type Analyzer struct {
	mu       sync.Mutex
	caches   map[string]*cache.EpochCache[cacheKey, *ExerciseAnalysis]
	maxUsers int
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewAnalyzer(params AnalyzerParams) *Analyzer {
	a := &Analyzer{
		caches:   make(map[string]*cache.EpochCache[cacheKey, *ExerciseAnalysis]),
		maxUsers: params.MaxUsers,
		metrics:  params.Metrics,
		now:      params.Now,
	}
	if a.maxUsers <= 0 {
		a.maxUsers = defaultMaxCachedUsers
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// Analyze returns the analysis of params.ExerciseID over the user's history.
func (a *Analyzer) Analyze(ctx context.Context, userID string, history []sessions.WorkoutSession, params Params) *ExerciseAnalysis {
	_, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymstats.analyze")
	defer span.End()

	key := cacheKey{
		exerciseID:       params.ExerciseID,
		targetReps:       params.TargetReps,
		plateauDetection: params.PlateauDetection,
	}
	epoch := sessions.CountCompleted(history)
	span.SetAttributes(
		attribute.String("exercise.id", params.ExerciseID),
		attribute.Int("epoch", epoch),
	)

	userCache := a.cacheFor(userID)
	if cached, ok := userCache.Get(key, epoch); ok {
		a.countCache("hit")
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached
	}
	a.countCache("miss")

	result := Analyze(a.now(), history, params)
	userCache.Set(key, epoch, result)
	span.SetAttributes(attribute.String("status", result.Status.String()))

	return result
}

// ClearCache drops every memoized analysis of every user.
func (a *Analyzer) ClearCache() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, c := range a.caches {
		c.Clear()
	}
}

func (a *Analyzer) cacheFor(userID string) *cache.EpochCache[cacheKey, *ExerciseAnalysis] {
	a.mu.Lock()
	defer a.mu.Unlock()
	c, ok := a.caches[userID]
	if !ok {
		if len(a.caches) >= a.maxUsers {
			// full, start over rather than track recency per user
			a.caches = make(map[string]*cache.EpochCache[cacheKey, *ExerciseAnalysis])
		}
		c = cache.NewEpochCache[cacheKey, *ExerciseAnalysis]()
		a.caches[userID] = c
	}
	return c
}

func (a *Analyzer) countCache(result string) {
	if a.metrics == nil {
		return
	}
	a.metrics.CounterAnalysisCache.WithLabelValues(result).Inc()
}
