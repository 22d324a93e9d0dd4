// ABOUTME: MCP resource implementations for the gymlog store.
// ABOUTME: Provides gymlog://workouts, gymlog://recent, and gymlog://dashboard.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hsouza/gymlog/internal/metrics"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// gymlog://workouts - every workout template with its exercises
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gymlog://workouts",
		Name:        "Workout Templates",
		Description: "All workout templates with their exercise lists",
		MIMEType:    "application/json",
	}, s.handleWorkoutsResource)

	// gymlog://recent - last 10 sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gymlog://recent",
		Name:        "Recent Sessions",
		Description: "Last 10 recorded workout sessions",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// gymlog://dashboard - the statistics the app's dashboard renders
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gymlog://dashboard",
		Name:        "Statistics Dashboard",
		Description: "Monthly frequency, cardio averages, and progression metrics",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)
}

// Resource handlers

func (s *Server) handleWorkoutsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.store.ListWorkouts()
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	data, err := json.MarshalIndent(workouts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "gymlog://workouts",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := map[string]interface{}{
		"sessions": recentSessions(sessions, 10),
		"total":    len(sessions),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "gymlog://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions, err := s.store.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	now := time.Now()
	result := map[string]interface{}{
		"generated_at":              now.Format(time.RFC3339),
		"total_sessions":            len(sessions),
		"yearly_frequency":          metrics.YearlyFrequency(sessions, now.Year()),
		"monthly_average_frequency": metrics.MonthlyAverageFrequency(sessions),
		"cardio_per_workout_30d":    metrics.AvgCardioMinutesPerWorkout(sessions, 30, now),
		"stretch_per_workout_30d":   metrics.AvgStretchSecondsPerWorkout(sessions, 30, now),
		"cardio_per_month":          metrics.AvgCardioMinutesPerMonth(sessions),
		"weight_evolution":          metrics.WeightEvolution(sessions),
	}
	if progress := metrics.CardioEvolution(sessions); progress != nil {
		result["cardio_evolution"] = progress
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "gymlog://dashboard",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
