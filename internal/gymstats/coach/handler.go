package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/analysis"
	"github.com/2beens/gymcoach/internal/gymstats/catalog"
	"github.com/2beens/gymcoach/internal/gymstats/cycles"
	"github.com/2beens/gymcoach/internal/gymstats/sessions"
	"github.com/2beens/gymcoach/internal/gymstats/suggestions"
	"github.com/2beens/gymcoach/internal/middleware"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=coach_test

type coachService interface {
	ExerciseAnalysis(ctx context.Context, userID, exerciseID string, targetReps int) (*analysis.ExerciseAnalysis, error)
	HistorySufficiency(ctx context.Context, userID string) (analysis.HistorySufficiency, error)
	TrainingPhase(ctx context.Context, userID string, level cycles.ExperienceLevel, goal cycles.Goal) (*cycles.Position, error)
	StartCycle(ctx context.Context, userID, cycleID string, start time.Time) (*cycles.Position, error)
	Cycles() []cycles.CycleConfig
	Exercises(ctx context.Context, userID string) []catalog.Exercise
	AddCustomExercise(ctx context.Context, userID string, ex catalog.Exercise) error
	RecordSession(ctx context.Context, session sessions.WorkoutSession) (*sessions.WorkoutSession, error)
}

type suggester interface {
	SuggestWorkout(ctx context.Context, req suggestions.WorkoutRequest) (*suggestions.WorkoutSuggestions, error)
}

type StartCycleRequest struct {
	CycleID   string    `json:"cycleId"`
	StartDate time.Time `json:"startDate"`
}

type CyclesResponse struct {
	Cycles []cycles.CycleConfig `json:"cycles"`
}

type ExercisesResponse struct {
	Exercises []catalog.Exercise `json:"exercises"`
}

type Handler struct {
	service   coachService
	suggester suggester
}

func NewHandler(service coachService, suggester suggester) *Handler {
	return &Handler{
		service:   service,
		suggester: suggester,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	suggestionsPerMinute int,
) {
	mainRouter.HandleFunc("/gymstats/analysis/{exerciseId}", handler.HandleExerciseAnalysis).Methods("GET", "OPTIONS").Name("exercise-analysis")
	mainRouter.HandleFunc("/gymstats/history/sufficiency", handler.HandleHistorySufficiency).Methods("GET", "OPTIONS").Name("history-sufficiency")
	mainRouter.HandleFunc("/gymstats/cycle/{userId}", handler.HandleGetCycle).Methods("GET", "OPTIONS").Name("get-cycle")
	mainRouter.HandleFunc("/gymstats/cycle/{userId}", handler.HandleStartCycle).Methods("POST").Name("start-cycle")
	mainRouter.HandleFunc("/gymstats/cycles", handler.HandleListCycles).Methods("GET", "OPTIONS").Name("list-cycles")
	mainRouter.HandleFunc("/gymstats/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	mainRouter.HandleFunc("/gymstats/exercises", handler.HandleAddCustomExercise).Methods("POST").Name("add-exercise")
	mainRouter.HandleFunc("/gymstats/sessions", handler.HandleRecordSession).Methods("POST", "OPTIONS").Name("record-session")

	// every suggested exercise costs generator calls
	mainRouter.Handle(
		"/gymstats/suggestions",
		middleware.RateLimit(rateLimiter, "suggestions", suggestionsPerMinute, metricsManager)(
			http.HandlerFunc(handler.HandleSuggestWorkout),
		),
	).Methods("POST", "OPTIONS").Name("suggest-workout")
}

func userIDFrom(r *http.Request) string {
	if userID := r.Header.Get(middleware.UserIDHeader); userID != "" {
		return userID
	}
	return r.URL.Query().Get("user_id")
}

var errUserMismatch = errors.New("user id in body does not match the request user")

// actingUser returns the user a write is made for. The request identity wins,
// a body naming a different user is rejected.
func actingUser(r *http.Request, bodyUserID string) (string, error) {
	requestUser := userIDFrom(r)
	switch {
	case requestUser == "":
		return bodyUserID, nil
	case bodyUserID != "" && bodyUserID != requestUser:
		return "", errUserMismatch
	default:
		return requestUser, nil
	}
}

func (handler *Handler) HandleExerciseAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.analysis")
	defer span.End()

	exerciseID := mux.Vars(r)["exerciseId"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	userID := userIDFrom(r)
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	targetReps := 0
	if targetRepsStr := r.URL.Query().Get("target_reps"); targetRepsStr != "" {
		var err error
		targetReps, err = strconv.Atoi(targetRepsStr)
		if err != nil || targetReps < 0 {
			http.Error(w, "error, target reps invalid", http.StatusBadRequest)
			return
		}
	}

	result, err := handler.service.ExerciseAnalysis(ctx, userID, exerciseID, targetReps)
	if err != nil {
		log.Errorf("exercise analysis [%s] for %s: %s", exerciseID, userID, err)
		http.Error(w, "failed to analyze exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleHistorySufficiency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.sufficiency")
	defer span.End()

	userID := userIDFrom(r)
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.service.HistorySufficiency(ctx, userID)
	if err != nil {
		log.Errorf("history sufficiency for %s: %s", userID, err)
		http.Error(w, "failed to check history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleGetCycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.cycle")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	level := cycles.ExperienceLevel(r.URL.Query().Get("level"))
	if level == "" {
		level = cycles.LevelIntermediate
	}
	goal := cycles.Goal(r.URL.Query().Get("goal"))
	if goal == "" {
		goal = cycles.GoalGeneral
	}

	pos, err := handler.service.TrainingPhase(ctx, userID, level, goal)
	if err != nil {
		log.Errorf("training phase for %s: %s", userID, err)
		http.Error(w, "failed to get training phase", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, pos, http.StatusOK)
}

func (handler *Handler) HandleStartCycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.startCycle")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StartCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("start cycle, unmarshal json params: %s", err)
		http.Error(w, "start cycle failed", http.StatusBadRequest)
		return
	}
	if req.CycleID == "" {
		http.Error(w, "error, cycle id empty", http.StatusBadRequest)
		return
	}

	pos, err := handler.service.StartCycle(ctx, userID, req.CycleID, req.StartDate)
	if err != nil {
		if errors.Is(err, cycles.ErrUnknownCycle) {
			http.Error(w, "unknown cycle", http.StatusBadRequest)
			return
		}
		log.Errorf("start cycle %s for %s: %s", req.CycleID, userID, err)
		http.Error(w, "start cycle failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, pos, http.StatusCreated)
}

func (handler *Handler) HandleListCycles(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, CyclesResponse{Cycles: handler.service.Cycles()}, http.StatusOK)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.exercises")
	defer span.End()

	pkg.WriteJSON(w, ExercisesResponse{Exercises: handler.service.Exercises(ctx, userIDFrom(r))}, http.StatusOK)
}

func (handler *Handler) HandleAddCustomExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.addExercise")
	defer span.End()

	userID := userIDFrom(r)
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var ex catalog.Exercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		log.Errorf("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	ex.Custom = true

	if err := handler.service.AddCustomExercise(ctx, userID, ex); err != nil {
		if errors.Is(err, ErrInvalidExercise) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add custom exercise %s for %s: %s", ex.ID, userID, err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ex, http.StatusCreated)
}

func (handler *Handler) HandleRecordSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.recordSession")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session sessions.WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("record session, unmarshal json params: %s", err)
		http.Error(w, "record session failed", http.StatusBadRequest)
		return
	}
	userID, err := actingUser(r, session.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session.UserID = userID

	added, err := handler.service.RecordSession(ctx, session)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("record session for %s: %s", session.UserID, err)
		http.Error(w, "record session failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout session recorded: %d [%s]", added.ID, added.UserID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleSuggestWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.suggest")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req suggestions.WorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("suggest workout, unmarshal json params: %s", err)
		http.Error(w, "suggest workout failed", http.StatusBadRequest)
		return
	}
	userID, err := actingUser(r, req.UserID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.UserID = userID

	result, err := handler.suggester.SuggestWorkout(ctx, req)
	if err != nil {
		if errors.Is(err, suggestions.ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("suggest workout for %s: %s", req.UserID, err)
		http.Error(w, "suggest workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}
