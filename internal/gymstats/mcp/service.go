package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymcoach/internal/gymstats/analysis"
	"github.com/2beens/gymcoach/internal/gymstats/catalog"
	"github.com/2beens/gymcoach/internal/gymstats/cycles"
)

// coachService is the subset of the coach service exposed to MCP clients.
type coachService interface {
	ExerciseAnalysis(ctx context.Context, userID, exerciseID string, targetReps int) (*analysis.ExerciseAnalysis, error)
	HistorySufficiency(ctx context.Context, userID string) (analysis.HistorySufficiency, error)
	TrainingPhase(ctx context.Context, userID string, level cycles.ExperienceLevel, goal cycles.Goal) (*cycles.Position, error)
	Exercises(ctx context.Context, userID string) []catalog.Exercise
}

// contextService provides gymcoach context data (schema, analyses, training phase).
// Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ExerciseAnalysis(ctx context.Context, userID, exerciseID string, targetReps int) (*analysis.ExerciseAnalysis, error)
	HistorySufficiency(ctx context.Context, userID string) (analysis.HistorySufficiency, error)
	TrainingPhase(ctx context.Context, userID string, level cycles.ExperienceLevel, goal cycles.Goal) (*TrainingPhase, error)
	Exercises(ctx context.Context, userID string) []catalog.Exercise
}

// TrainingPhase is the cycle position plus the prompt guidance built from it.
type TrainingPhase struct {
	Position *cycles.Position `json:"position"`
	Guidance string           `json:"guidance"`
}

// ContextService holds dependencies and implements the gymcoach context business logic.
type ContextService struct {
	schema SchemaRepo
	coach  coachService
}

func NewContextService(schemaRepo SchemaRepo, coach coachService) *ContextService {
	return &ContextService{
		schema: schemaRepo,
		coach:  coach,
	}
}

// GetSchema returns the DB schema (table names, columns, types) for gymcoach tables.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetGymstatsColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatGymstatsSchema(cols), nil
}

func formatGymstatsSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymcoach DB Schema\n\nNo gymcoach tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymcoach DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(gymstatsTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) ExerciseAnalysis(ctx context.Context, userID, exerciseID string, targetReps int) (*analysis.ExerciseAnalysis, error) {
	return s.coach.ExerciseAnalysis(ctx, userID, exerciseID, targetReps)
}

func (s *ContextService) HistorySufficiency(ctx context.Context, userID string) (analysis.HistorySufficiency, error) {
	return s.coach.HistorySufficiency(ctx, userID)
}

// TrainingPhase resolves the user's cycle position, falling back to the default
// cycle for level and goal, and attaches the guidance text for that position.
func (s *ContextService) TrainingPhase(ctx context.Context, userID string, level cycles.ExperienceLevel, goal cycles.Goal) (*TrainingPhase, error) {
	pos, err := s.coach.TrainingPhase(ctx, userID, level, goal)
	if err != nil {
		return nil, err
	}
	return &TrainingPhase{
		Position: pos,
		Guidance: cycles.Guidance(goal, level, pos.Cycle, pos.State),
	}, nil
}

func (s *ContextService) Exercises(ctx context.Context, userID string) []catalog.Exercise {
	return s.coach.Exercises(ctx, userID)
}
