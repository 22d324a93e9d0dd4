// ABOUTME: MCP tool implementations for workouts, sessions, hints, and stats.
// ABOUTME: Sessions arrive as plain entry data, mirroring the UI boundary.
package mcp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hsouza/gymlog/internal/metrics"
	"github.com/hsouza/gymlog/internal/models"
	"github.com/hsouza/gymlog/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Create a new workout template",
	}, s.handleAddWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Rename or re-describe an existing workout template",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Append an exercise to an existing workout template",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List all workout templates",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout template with its exercises",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout and all sessions logged against it",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Record a completed workout session with its measurements",
	}, s.handleLogSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List recorded sessions, most recent first",
	}, s.handleListSessions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a single session by ID",
	}, s.handleDeleteSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_hints",
		Description: "Get last and average values for an exercise across the history",
	}, s.handleExerciseHints)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "yearly_frequency",
		Description: "Count sessions per calendar month of a year",
	}, s.handleYearlyFrequency)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cardio_stats",
		Description: "Cardio minutes per workout over a sliding window of days",
	}, s.handleCardioStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "progress_report",
		Description: "Weight and cardio progression plus monthly session frequency",
	}, s.handleProgressReport)
}

// Tool input/output types

type addWorkoutInput struct {
	Name        string `json:"name" jsonschema:"Workout name"`
	Description string `json:"description,omitempty" jsonschema:"Optional workout description"`
}

type workoutOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type updateWorkoutInput struct {
	ID          string `json:"id" jsonschema:"Workout ID"`
	Name        string `json:"name,omitempty" jsonschema:"New workout name"`
	Description string `json:"description,omitempty" jsonschema:"New workout description"`
}

type addExerciseInput struct {
	WorkoutID   string `json:"workout_id" jsonschema:"Workout ID"`
	Name        string `json:"name" jsonschema:"Exercise name"`
	Type        string `json:"type" jsonschema:"Exercise type: PESO (weighted sets) / ALONGAMENTO (timed stretch) / AEROBICO (timed cardio)"`
	Description string `json:"description,omitempty" jsonschema:"Optional exercise notes"`
}

type workoutIDInput struct {
	ID string `json:"id" jsonschema:"Workout ID"`
}

type entryInput struct {
	ExerciseName string     `json:"exercise_name" jsonschema:"Exercise name as it appears in the workout"`
	Type         string     `json:"type" jsonschema:"Exercise type: PESO / ALONGAMENTO / AEROBICO"`
	Sets         []*float64 `json:"sets,omitempty" jsonschema:"Up to three set weights for PESO entries; null for sets not entered"`
	Seconds      *float64   `json:"seconds,omitempty" jsonschema:"Stretch duration for ALONGAMENTO entries"`
	Minutes      *float64   `json:"minutes,omitempty" jsonschema:"Cardio duration for AEROBICO entries"`
}

type logSessionInput struct {
	WorkoutID string       `json:"workout_id" jsonschema:"Workout the session was run against"`
	StartedAt string       `json:"started_at,omitempty" jsonschema:"Start timestamp (ISO 8601); defaults to now"`
	EndedAt   string       `json:"ended_at,omitempty" jsonschema:"End timestamp (ISO 8601); defaults to started_at"`
	Entries   []entryInput `json:"entries" jsonschema:"One measurement per exercise"`
}

type sessionOutput struct {
	ID       string `json:"id"`
	Calories int    `json:"calories"`
	Message  string `json:"message"`
}

type listSessionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type sessionIDInput struct {
	ID string `json:"id" jsonschema:"Session ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type exerciseHintsInput struct {
	ExerciseName string `json:"exercise_name" jsonschema:"Exercise name (matching is case- and whitespace-insensitive)"`
	WorkoutID    string `json:"workout_id,omitempty" jsonschema:"Limit the last-sets hint to sessions of this workout"`
}

type yearlyFrequencyInput struct {
	Year int `json:"year" jsonschema:"Calendar year"`
}

type cardioStatsInput struct {
	WindowDays int `json:"window_days,omitempty" jsonschema:"Sliding window in days (default 30)"`
}

// Tool handlers

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	if input.Name == "" {
		return nil, workoutOutput{}, fmt.Errorf("workout name must not be empty")
	}

	w, err := s.store.CreateWorkout(input.Name)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}
	if input.Description != "" {
		desc := input.Description
		w, err = s.store.UpdateWorkout(w.ID, store.WorkoutUpdate{Description: &desc})
		if err != nil {
			return nil, workoutOutput{}, fmt.Errorf("failed to set description: %w", err)
		}
	}

	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Message: fmt.Sprintf("Created workout %q (ID: %s)", w.Name, w.ID[:8]),
	}, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	if input.Name == "" && input.Description == "" {
		return nil, workoutOutput{}, fmt.Errorf("nothing to update: provide name or description")
	}

	upd := store.WorkoutUpdate{}
	if input.Name != "" {
		name := input.Name
		upd.Name = &name
	}
	if input.Description != "" {
		desc := input.Description
		upd.Description = &desc
	}

	w, err := s.store.UpdateWorkout(input.ID, upd)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to update workout: %w", err)
	}
	if w == nil {
		return nil, workoutOutput{}, fmt.Errorf("workout not found: %s", input.ID)
	}

	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Message: fmt.Sprintf("Updated workout %q", w.Name),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	exType := models.ExerciseType(input.Type)
	if !exType.Valid() {
		return nil, simpleOutput{}, fmt.Errorf("unknown exercise type: %s (expected PESO, ALONGAMENTO, or AEROBICO)", input.Type)
	}

	w, err := s.store.GetWorkout(input.WorkoutID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to get workout: %w", err)
	}
	if w == nil {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %s", input.WorkoutID)
	}

	exercises := append(w.Exercises, models.WorkoutExercise{
		Name:        input.Name,
		Type:        exType,
		Description: input.Description,
	})
	if _, err := s.store.UpdateWorkout(w.ID, store.WorkoutUpdate{Exercises: exercises}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s exercise %q to workout %q", input.Type, input.Name, w.Name),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	workouts, err := s.store.ListWorkouts()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, any, error) {
	w, err := s.store.GetWorkout(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workout: %w", err)
	}
	if w == nil {
		return nil, nil, fmt.Errorf("workout not found: %s", input.ID)
	}
	return nil, w, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := s.store.DeleteWorkout(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %s", input.ID)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout %s and its sessions", input.ID),
	}, nil
}

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	w, err := s.store.GetWorkout(input.WorkoutID)
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to get workout: %w", err)
	}
	if w == nil {
		return nil, sessionOutput{}, fmt.Errorf("workout not found: %s", input.WorkoutID)
	}

	entries := make(models.Entries, 0, len(input.Entries))
	for _, in := range input.Entries {
		e, err := toEntry(in)
		if err != nil {
			return nil, sessionOutput{}, err
		}
		entries = append(entries, e)
	}

	startedAt := time.Now()
	if input.StartedAt != "" {
		startedAt, err = time.Parse(time.RFC3339, input.StartedAt)
		if err != nil {
			return nil, sessionOutput{}, fmt.Errorf("invalid started_at: %s", input.StartedAt)
		}
	}
	endedAt := startedAt
	if input.EndedAt != "" {
		endedAt, err = time.Parse(time.RFC3339, input.EndedAt)
		if err != nil {
			return nil, sessionOutput{}, fmt.Errorf("invalid ended_at: %s", input.EndedAt)
		}
	}

	sess, err := s.store.CreateSession(*models.NewSession(w.ID, startedAt, endedAt, entries))
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to create session: %w", err)
	}

	return nil, sessionOutput{
		ID:       sess.ID,
		Calories: *sess.Calories,
		Message:  fmt.Sprintf("Logged session for %q, ~%d kcal (ID: %s)", w.Name, *sess.Calories, sess.ID[:8]),
	}, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No sessions found."}, nil
	}

	recent := recentSessions(sessions, input.Limit)
	return nil, recent, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, req *mcp.CallToolRequest, input sessionIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := s.store.DeleteSession(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete session: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{}, fmt.Errorf("session not found: %s", input.ID)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted session: %s", input.ID),
	}, nil
}

func (s *Server) handleExerciseHints(ctx context.Context, req *mcp.CallToolRequest, input exerciseHintsInput) (*mcp.CallToolResult, any, error) {
	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := map[string]interface{}{
		"exercise_name": input.ExerciseName,
		"weight": map[string]interface{}{
			"last_sets": metrics.GlobalLastBySet(sessions, input.ExerciseName),
			"avg_sets":  metrics.GlobalAveragesBySet(sessions, input.ExerciseName),
		},
		"stretch": map[string]interface{}{
			"last_seconds": metrics.GlobalLastSeconds(sessions, input.ExerciseName),
			"avg_seconds":  metrics.GlobalAvgSeconds(sessions, input.ExerciseName),
		},
		"cardio": map[string]interface{}{
			"last_minutes": metrics.GlobalLastMinutes(sessions, input.ExerciseName),
			"avg_minutes":  metrics.GlobalAvgMinutes(sessions, input.ExerciseName),
		},
	}
	if input.WorkoutID != "" {
		result["last_sets_same_workout"] = metrics.LastSameWorkoutSets(sessions, input.WorkoutID, input.ExerciseName)
	}

	return nil, result, nil
}

func (s *Server) handleYearlyFrequency(ctx context.Context, req *mcp.CallToolRequest, input yearlyFrequencyInput) (*mcp.CallToolResult, any, error) {
	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	counts := metrics.YearlyFrequency(sessions, input.Year)
	return nil, map[string]interface{}{
		"year":   input.Year,
		"months": counts,
	}, nil
}

func (s *Server) handleCardioStats(ctx context.Context, req *mcp.CallToolRequest, input cardioStatsInput) (*mcp.CallToolResult, any, error) {
	if input.WindowDays <= 0 {
		input.WindowDays = 30
	}

	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	now := time.Now()
	return nil, map[string]interface{}{
		"window_days":          input.WindowDays,
		"totals_per_workout":   metrics.CardioMinutesPerWorkout(sessions, input.WindowDays, now),
		"averages_per_workout": metrics.AvgCardioMinutesPerWorkout(sessions, input.WindowDays, now),
		"averages_per_month":   metrics.AvgCardioMinutesPerMonth(sessions),
	}, nil
}

func (s *Server) handleProgressReport(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := map[string]interface{}{
		"monthly_average_frequency": metrics.MonthlyAverageFrequency(sessions),
		"weight_evolution":          metrics.WeightEvolution(sessions),
	}
	if progress := metrics.CardioEvolution(sessions); progress != nil {
		result["cardio_evolution"] = progress
	}

	return nil, result, nil
}

// toEntry converts plain tool input into the matching entry variant.
func toEntry(in entryInput) (models.Entry, error) {
	switch models.ExerciseType(in.Type) {
	case models.ExerciseWeight:
		var sets models.SetTriple
		for i := 0; i < len(in.Sets) && i < 3; i++ {
			sets[i] = in.Sets[i]
		}
		return models.WeightEntry{ExerciseName: in.ExerciseName, Sets: sets}, nil
	case models.ExerciseStretch:
		return models.StretchEntry{ExerciseName: in.ExerciseName, Seconds: in.Seconds}, nil
	case models.ExerciseCardio:
		return models.CardioEntry{ExerciseName: in.ExerciseName, Minutes: in.Minutes}, nil
	default:
		return nil, fmt.Errorf("unknown exercise type: %s", in.Type)
	}
}

// recentSessions returns up to limit sessions, most recent first.
func recentSessions(sessions []models.Session, limit int) []models.Session {
	sorted := make([]models.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.After(sorted[j].StartedAt)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
