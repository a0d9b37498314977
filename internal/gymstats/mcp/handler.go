package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/gymcoach/internal/gymstats/cycles"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetGymstatsContextTool returns the MCP tool handler for get_gymstats_context.
func (h *Handler) GetGymstatsContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ExerciseAnalysisInput is the input for get_exercise_analysis.
type ExerciseAnalysisInput struct {
	UserID     string `json:"user_id" jsonschema:"User whose history is analyzed"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise id (e.g. back_squat, bench_press)"`
	TargetReps int    `json:"target_reps,omitempty" jsonschema:"Planned reps per set, enables the missed rep target signal"`
}

// GetExerciseAnalysisTool returns the MCP tool handler for get_exercise_analysis.
func (h *Handler) GetExerciseAnalysisTool() func(context.Context, *mcp.CallToolRequest, ExerciseAnalysisInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseAnalysisInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" || in.ExerciseID == "" {
			return errorResult("user_id and exercise_id are required"), nil, nil
		}
		if in.TargetReps < 0 {
			return errorResult("target_reps must not be negative"), nil, nil
		}
		result, err := h.service.ExerciseAnalysis(ctx, in.UserID, in.ExerciseID, in.TargetReps)
		if err != nil {
			return errorResult("Error analyzing exercise: " + err.Error()), nil, nil
		}
		return jsonResult(result), nil, nil
	}
}

// TrainingPhaseInput is the input for get_training_phase.
type TrainingPhaseInput struct {
	UserID string `json:"user_id" jsonschema:"User whose training cycle is resolved"`
	Level  string `json:"level,omitempty" jsonschema:"beginner, intermediate or advanced (default intermediate)"`
	Goal   string `json:"goal,omitempty" jsonschema:"strength, hypertrophy, general or endurance (default general)"`
}

// GetTrainingPhaseTool returns the MCP tool handler for get_training_phase.
func (h *Handler) GetTrainingPhaseTool() func(context.Context, *mcp.CallToolRequest, TrainingPhaseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in TrainingPhaseInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		level := cycles.ExperienceLevel(in.Level)
		if level == "" {
			level = cycles.LevelIntermediate
		}
		goal := cycles.Goal(in.Goal)
		if goal == "" {
			goal = cycles.GoalGeneral
		}

		phase, err := h.service.TrainingPhase(ctx, in.UserID, level, goal)
		if err != nil {
			return errorResult("Error resolving training phase: " + err.Error()), nil, nil
		}
		return jsonResult(phase), nil, nil
	}
}

// UserInput is the input for tools that only need a user.
type UserInput struct {
	UserID string `json:"user_id" jsonschema:"User id"`
}

// GetHistorySufficiencyTool returns the MCP tool handler for get_history_sufficiency.
func (h *Handler) GetHistorySufficiencyTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		result, err := h.service.HistorySufficiency(ctx, in.UserID)
		if err != nil {
			return errorResult("Error checking history: " + err.Error()), nil, nil
		}
		return jsonResult(result), nil, nil
	}
}

// GetExercisesTool returns the MCP tool handler for get_exercises.
func (h *Handler) GetExercisesTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.Exercises(ctx, in.UserID)), nil, nil
	}
}
