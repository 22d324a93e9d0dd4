// ABOUTME: Integration tests for the gymlog CLI.
// ABOUTME: Builds the binary and runs the full template-to-stats workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	gymlogBinary := filepath.Join(projectRoot, "gymlog")

	buildCmd := exec.Command("go", "build", "-o", gymlogBinary, "./cmd/gymlog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(gymlogBinary)

	// Use a temp data directory
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", tmpDir}, args...)
		cmd := exec.Command(gymlogBinary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Create a workout template
	output, err := run("workout", "add", "Upper body")
	if err != nil {
		t.Fatalf("Failed to add workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Created workout") {
		t.Errorf("Expected 'Created workout' in output, got: %s", output)
	}

	// The full ID is printed on the second line
	lines := strings.Split(strings.TrimSpace(output), "\n")
	workoutID := strings.TrimSpace(lines[len(lines)-1])
	if workoutID == "" {
		t.Fatalf("Could not extract workout ID from output: %s", output)
	}

	// Add exercises
	output, err = run("workout", "exercise", "add", workoutID, "Bench press", "--type", "PESO")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	output, err = run("workout", "exercise", "add", workoutID, "Treadmill", "--type", "AEROBICO")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}

	// Template shows up in the list
	output, err = run("workout", "list")
	if err != nil {
		t.Fatalf("Failed to list workouts: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Upper body") {
		t.Errorf("Expected 'Upper body' in workout list, got: %s", output)
	}
	if !strings.Contains(output, "2 exercises") {
		t.Errorf("Expected '2 exercises' in workout list, got: %s", output)
	}

	// Log a session from an entries file
	entriesPath := filepath.Join(tmpDir, "entries.json")
	entries := `[
		{"exerciseName": "Bench press", "type": "PESO", "sets": [60, 62.5, null]},
		{"exerciseName": "Treadmill", "type": "AEROBICO", "minutes": 15}
	]`
	if err := os.WriteFile(entriesPath, []byte(entries), 0600); err != nil {
		t.Fatalf("Failed to write entries file: %v", err)
	}

	output, err = run("session", "log", workoutID, "--entries", entriesPath)
	if err != nil {
		t.Fatalf("Failed to log session: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged session") {
		t.Errorf("Expected 'Logged session' in output, got: %s", output)
	}
	// 2 present sets x 6 + 15 cardio minutes x 6
	if !strings.Contains(output, "102 kcal") {
		t.Errorf("Expected '102 kcal' in output, got: %s", output)
	}

	// Session shows up in the list
	output, err = run("session", "list")
	if err != nil {
		t.Fatalf("Failed to list sessions: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Upper body") {
		t.Errorf("Expected 'Upper body' in session list, got: %s", output)
	}

	// Hints reflect the logged session regardless of name casing
	output, err = run("hints", "BENCH PRESS")
	if err != nil {
		t.Fatalf("Failed to get hints: %v\n%s", err, output)
	}
	if !strings.Contains(output, "60") {
		t.Errorf("Expected set weight in hints output, got: %s", output)
	}

	// Stats run without error over the fresh history
	output, err = run("stats", "cardio", "--days", "30")
	if err != nil {
		t.Fatalf("Failed to get cardio stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "15") {
		t.Errorf("Expected cardio minutes in stats output, got: %s", output)
	}

	// Deleting the workout cascades to its sessions
	output, err = run("workout", "delete", workoutID)
	if err != nil {
		t.Fatalf("Failed to delete workout: %v\n%s", err, output)
	}
	output, err = run("session", "list")
	if err != nil {
		t.Fatalf("Failed to list sessions: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No sessions found") {
		t.Errorf("Expected empty session list after cascade delete, got: %s", output)
	}
}
