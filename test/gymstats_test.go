package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/analysis"
	"github.com/2beens/gymcoach/internal/gymstats/catalog"
	"github.com/2beens/gymcoach/internal/gymstats/coach"
	"github.com/2beens/gymcoach/internal/gymstats/cycles"
	"github.com/2beens/gymcoach/internal/gymstats/events"
	"github.com/2beens/gymcoach/internal/gymstats/sessions"
	"github.com/2beens/gymcoach/internal/gymstats/suggestions"
	"github.com/2beens/gymcoach/internal/middleware"
	testingpkg "github.com/2beens/gymcoach/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) deleteAllGymstats() {
	for _, table := range []string{
		"session_set", "workout_session", "user_cycle_state", "custom_exercise", "gymstats_event",
	} {
		_, err := s.DB.Exec("DELETE FROM " + table)
		require.NoError(s.T(), err)
	}
}

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	withToken bool,
) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(middleware.UserIDHeader, testUserID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken {
		req.Header.Set(middleware.TokenHeader, testAPISecret)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return resp.StatusCode, respBytes
}

// recordWeeklySessions records one completed session per week, oldest first,
// adding 2.5kg every week on top of startWeight.
func (s *IntegrationTestSuite) recordWeeklySessions(ctx context.Context, exerciseID string, weeks int, startWeight float64) {
	now := time.Now().UTC()
	for i := weeks - 1; i >= 0; i-- {
		startedAt := now.AddDate(0, 0, -7*i).Add(-time.Hour)
		completedAt := startedAt.Add(time.Hour)
		weight := startWeight + 2.5*float64(weeks-1-i)

		session := sessions.WorkoutSession{
			UserID:      testUserID,
			StartedAt:   startedAt,
			CompletedAt: &completedAt,
			Entries: []sessions.ExerciseEntry{
				{
					ExerciseID: exerciseID,
					Sets: []sessions.CompletedSet{
						{Weight: weight, Reps: 5, Unit: sessions.UnitKilos, CompletedAt: completedAt},
						{Weight: weight, Reps: 5, Unit: sessions.UnitKilos, CompletedAt: completedAt},
						{Weight: weight, Reps: 5, Unit: sessions.UnitKilos, CompletedAt: completedAt},
					},
				},
			},
		}

		status, respBytes := s.doRequest(ctx, http.MethodPost, "/gymstats/sessions", session, true)
		require.Equal(s.T(), http.StatusCreated, status, string(respBytes))

		var added sessions.WorkoutSession
		require.NoError(s.T(), json.Unmarshal(respBytes, &added))
		require.Positive(s.T(), added.ID)
	}
}

func (s *IntegrationTestSuite) TestVersionAndAuth() {
	ctx := context.Background()

	status, _ := s.doRequest(ctx, http.MethodGet, "/version", nil, false)
	s.Equal(http.StatusOK, status, "version is public")

	status, _ = s.doRequest(ctx, http.MethodGet, "/gymstats/history/sufficiency", nil, false)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.doRequest(ctx, http.MethodGet, "/gymstats/history/sufficiency", nil, true)
	s.Equal(http.StatusOK, status)

	// the api token does not open the mcp endpoint
	status, _ = s.doRequest(ctx, http.MethodPost, "/mcp", map[string]string{}, true)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestSessionsAnalysisAndSufficiency() {
	ctx := context.Background()
	s.deleteAllGymstats()
	defer s.deleteAllGymstats()

	status, respBytes := s.doRequest(ctx, http.MethodGet, "/gymstats/analysis/back_squat?target_reps=5", nil, true)
	s.Require().Equal(http.StatusOK, status)
	var empty analysis.ExerciseAnalysis
	s.Require().NoError(json.Unmarshal(respBytes, &empty))
	s.Equal(analysis.StatusInsufficientData, empty.Status)
	s.Empty(empty.RecentSessions)

	s.recordWeeklySessions(ctx, "back_squat", 5, 100)

	status, respBytes = s.doRequest(ctx, http.MethodGet, "/gymstats/analysis/back_squat?target_reps=5", nil, true)
	s.Require().Equal(http.StatusOK, status)
	var result analysis.ExerciseAnalysis
	s.Require().NoError(json.Unmarshal(respBytes, &result))
	s.Equal("back_squat", result.ExerciseID)
	s.Equal("Back Squat", result.ExerciseName)
	s.Equal(analysis.StatusImproving, result.Status)
	s.Len(result.Weekly, 5)
	s.Len(result.RecentSessions, 5)
	s.Equal(110.0, result.RecentSessions[0].MaxWeight)
	s.Greater(result.Trends.OneRepMax, 0.0)

	status, respBytes = s.doRequest(ctx, http.MethodGet, "/gymstats/history/sufficiency", nil, true)
	s.Require().Equal(http.StatusOK, status)
	var sufficiency analysis.HistorySufficiency
	s.Require().NoError(json.Unmarshal(respBytes, &sufficiency))
	s.Equal(analysis.HistorySufficiency{SessionsInWindow: 5, DistinctWeeks: 5, Sufficient: false}, sufficiency)

	// one more session is visible right away, the cached analysis is stale
	s.recordWeeklySessions(ctx, "back_squat", 1, 112.5)
	status, respBytes = s.doRequest(ctx, http.MethodGet, "/gymstats/analysis/back_squat?target_reps=5", nil, true)
	s.Require().Equal(http.StatusOK, status)
	var updated analysis.ExerciseAnalysis
	s.Require().NoError(json.Unmarshal(respBytes, &updated))
	s.Equal(112.5, updated.RecentSessions[0].MaxWeight)
}

func (s *IntegrationTestSuite) TestInvalidSessionRejected() {
	ctx := context.Background()

	status, _ := s.doRequest(ctx, http.MethodPost, "/gymstats/sessions", sessions.WorkoutSession{
		UserID: testUserID,
	}, true)
	s.Equal(http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestCycleLifecycle() {
	ctx := context.Background()
	s.deleteAllGymstats()
	defer s.deleteAllGymstats()

	status, respBytes := s.doRequest(ctx, http.MethodGet, "/gymstats/cycles", nil, false)
	s.Require().Equal(http.StatusOK, status)
	var catalogResp coach.CyclesResponse
	s.Require().NoError(json.Unmarshal(respBytes, &catalogResp))
	s.NotEmpty(catalogResp.Cycles)

	cyclePath := fmt.Sprintf("/gymstats/cycle/%s", testUserID)
	status, _ = s.doRequest(ctx, http.MethodPost, cyclePath, coach.StartCycleRequest{CycleID: "no-such-cycle"}, true)
	s.Equal(http.StatusBadRequest, status)

	start := time.Now().UTC().AddDate(0, 0, -8)
	status, respBytes = s.doRequest(ctx, http.MethodPost, cyclePath, coach.StartCycleRequest{
		CycleID:   "general-strength-8",
		StartDate: start,
	}, true)
	s.Require().Equal(http.StatusCreated, status, string(respBytes))

	status, respBytes = s.doRequest(ctx, http.MethodGet, cyclePath+"?level=beginner&goal=strength", nil, true)
	s.Require().Equal(http.StatusOK, status)
	var pos cycles.Position
	s.Require().NoError(json.Unmarshal(respBytes, &pos))
	s.Equal("general-strength-8", pos.State.CycleID)
	s.Equal("general-strength-8", pos.Cycle.ID)
	s.False(pos.Complete)
	s.Require().NotNil(pos.CurrentPhase)
	s.Equal(2, pos.TotalWeeksCompleted)
}

func (s *IntegrationTestSuite) TestCustomExercises() {
	ctx := context.Background()
	s.deleteAllGymstats()
	defer s.deleteAllGymstats()

	status, respBytes := s.doRequest(ctx, http.MethodPost, "/gymstats/exercises", catalog.Exercise{
		ID:           "landmine_press",
		Name:         "Landmine Press",
		MuscleGroups: []string{"shoulders"},
	}, true)
	s.Require().Equal(http.StatusCreated, status, string(respBytes))

	status, respBytes = s.doRequest(ctx, http.MethodGet, "/gymstats/exercises", nil, true)
	s.Require().Equal(http.StatusOK, status)
	var exercisesResp coach.ExercisesResponse
	s.Require().NoError(json.Unmarshal(respBytes, &exercisesResp))

	var found *catalog.Exercise
	for i := range exercisesResp.Exercises {
		if exercisesResp.Exercises[i].ID == "landmine_press" {
			found = &exercisesResp.Exercises[i]
		}
	}
	s.Require().NotNil(found)
	s.True(found.Custom)
	s.Equal(catalog.TypeCompound, found.Type)
}

func (s *IntegrationTestSuite) TestWeightReport() {
	ctx := context.Background()
	s.deleteAllGymstats()
	defer s.deleteAllGymstats()

	status, respBytes := s.doRequest(ctx, http.MethodPost, "/gymstats/events/report/weight", events.WeightReport{
		UserID: testUserID,
		Weight: 82.4,
	}, true)
	s.Require().Equal(http.StatusCreated, status, string(respBytes))

	var report events.WeightReport
	s.Require().NoError(json.Unmarshal(respBytes, &report))
	s.Positive(report.ID)
	s.False(report.Timestamp.IsZero())

	var eventsCount int
	s.Require().NoError(s.DB.QueryRow(
		"SELECT count(*) FROM gymstats_event WHERE type = $1", string(events.EventTypeWeightReport),
	).Scan(&eventsCount))
	s.Equal(1, eventsCount)

	status, _ = s.doRequest(ctx, http.MethodPost, "/gymstats/events/report/weight", events.WeightReport{
		UserID: testUserID,
		Weight: -1,
	}, true)
	s.Equal(http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestSuggestWorkout() {
	ctx := context.Background()
	s.deleteAllGymstats()
	defer s.deleteAllGymstats()

	s.recordWeeklySessions(ctx, "back_squat", 4, 90)

	req := suggestions.WorkoutRequest{
		UserID: testUserID,
		Goal:   cycles.GoalStrength,
		Level:  cycles.LevelIntermediate,
		Exercises: []suggestions.PlannedExercise{
			{ExerciseID: "back_squat", TargetReps: 5},
		},
	}

	callsBefore := s.generatorCalls.Load()
	status, respBytes := s.doRequest(ctx, http.MethodPost, "/gymstats/suggestions", req, true)
	s.Require().Equal(http.StatusOK, status, string(respBytes))

	var first suggestions.WorkoutSuggestions
	s.Require().NoError(json.Unmarshal(respBytes, &first))
	s.Require().Len(first.Exercises, 1)
	suggested := first.Exercises[0]
	s.Equal("back_squat", suggested.Suggestion.ExerciseID)
	s.Equal(102.5, suggested.Suggestion.SuggestedWeight)
	s.Equal(5, suggested.Suggestion.SuggestedReps)
	s.Equal(suggestions.ConfidenceMedium, suggested.Suggestion.Confidence)
	s.Empty(suggested.Suggestion.TechniqueTip, "tips belong to plateau answers only")
	s.False(suggested.Diagnostics.UsedFallback)
	s.False(suggested.Diagnostics.FromCache)
	s.Equal("embedded", suggested.Diagnostics.ParseKind)
	s.Equal(callsBefore+1, s.generatorCalls.Load())

	// nothing changed, so the redis entry answers without calling the generator
	status, respBytes = s.doRequest(ctx, http.MethodPost, "/gymstats/suggestions", req, true)
	s.Require().Equal(http.StatusOK, status)
	var second suggestions.WorkoutSuggestions
	s.Require().NoError(json.Unmarshal(respBytes, &second))
	s.Require().Len(second.Exercises, 1)
	s.True(second.Exercises[0].Diagnostics.FromCache)
	s.Equal(102.5, second.Exercises[0].Suggestion.SuggestedWeight)
	s.Equal(callsBefore+1, s.generatorCalls.Load())

	redisCtx, rdb := testingpkg.GetRedisClientAndCtx(s.T(), s.redisPort)
	keys, err := rdb.Keys(redisCtx, fmt.Sprintf("suggestion::%s::*", testUserID)).Result()
	s.Require().NoError(err)
	assert.Len(s.T(), keys, 1)
}
