package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with gymcoach tools: schema, exercise analysis,
// training phase, history sufficiency and the exercise catalog.
// Used by the main backend when mounting MCP at /mcp and by the stdio command.
func NewServer(schemaRepo SchemaRepo, coach coachService) *mcp.Server {
	h := NewHandler(NewContextService(schemaRepo, coach))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymcoach-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymstats_context",
		Description: "Returns the DB schema for gymcoach tables (workout_session, session_set, user_cycle_state, custom_exercise, gymstats_event): table names, columns, types, nullable, default.",
	}, h.GetGymstatsContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_analysis",
		Description: "Returns the progress analysis of one exercise for a user: weekly performance over the last 10 weeks, weight/reps/1RM trends, plateau signals and the status (improving, plateau, declining, insufficient_data). Args: user_id, exercise_id; optional: target_reps.",
	}, h.GetExerciseAnalysisTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_phase",
		Description: "Returns where the user is in their training cycle (phase, week in phase, weeks completed) and the coaching guidance for it. Users without a cycle get the default cycle for their level and goal. Args: user_id; optional: level, goal.",
	}, h.GetTrainingPhaseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_history_sufficiency",
		Description: "Returns whether the user's history is dense enough for plateau detection (10+ completed sessions across 8+ distinct weeks in the last 70 days). Arg: user_id.",
	}, h.GetHistorySufficiencyTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercises",
		Description: "Returns the exercise catalog: built-in exercises plus the user's custom ones. Optional arg: user_id.",
	}, h.GetExercisesTool())

	return s
}
