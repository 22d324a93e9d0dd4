// ABOUTME: Tests for the session entry tagged union and its JSON codec.
// ABOUTME: Covers tag dispatch, null handling, and unknown-type rejection.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEntriesRoundTrip(t *testing.T) {
	entries := Entries{
		WeightEntry{ExerciseName: "Bench press", Sets: SetTriple{Float(60), Float(62.5), nil}},
		StretchEntry{ExerciseName: "Hamstring stretch", Seconds: Float(45)},
		CardioEntry{ExerciseName: "Treadmill", Minutes: nil},
	}

	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Entries
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(decoded) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(decoded))
	}

	w, ok := decoded[0].(WeightEntry)
	if !ok {
		t.Fatalf("Expected WeightEntry, got %T", decoded[0])
	}
	if w.ExerciseName != "Bench press" {
		t.Errorf("ExerciseName mismatch: got %q", w.ExerciseName)
	}
	if w.Sets[0] == nil || *w.Sets[0] != 60 {
		t.Errorf("Set 1 mismatch: got %v", w.Sets[0])
	}
	if w.Sets[2] != nil {
		t.Errorf("Expected absent set 3, got %v", *w.Sets[2])
	}

	st, ok := decoded[1].(StretchEntry)
	if !ok {
		t.Fatalf("Expected StretchEntry, got %T", decoded[1])
	}
	if st.Seconds == nil || *st.Seconds != 45 {
		t.Errorf("Seconds mismatch: got %v", st.Seconds)
	}

	c, ok := decoded[2].(CardioEntry)
	if !ok {
		t.Fatalf("Expected CardioEntry, got %T", decoded[2])
	}
	if c.Minutes != nil {
		t.Errorf("Expected absent minutes, got %v", *c.Minutes)
	}
}

func TestEntriesDecodeWireFormat(t *testing.T) {
	// The stored format uses explicit nulls for absent values
	wire := `[
		{"exerciseName": "Squat", "type": "PESO", "sets": [80, null, 85]},
		{"exerciseName": "Bike", "type": "AEROBICO", "minutes": null}
	]`

	var entries Entries
	if err := json.Unmarshal([]byte(wire), &entries); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	w := entries[0].(WeightEntry)
	if w.Sets[1] != nil {
		t.Errorf("Expected absent set 2, got %v", *w.Sets[1])
	}
	if w.Sets[2] == nil || *w.Sets[2] != 85 {
		t.Errorf("Set 3 mismatch: got %v", w.Sets[2])
	}
}

func TestEntriesUnknownTypeRejected(t *testing.T) {
	wire := `[{"exerciseName": "Plank", "type": "ISOMETRICO", "seconds": 60}]`

	var entries Entries
	err := json.Unmarshal([]byte(wire), &entries)
	if err == nil {
		t.Fatal("Expected error for unknown exercise type")
	}
	if !strings.Contains(err.Error(), "ISOMETRICO") {
		t.Errorf("Error should name the unknown type, got: %v", err)
	}
}

func TestEntriesMarshalTags(t *testing.T) {
	entries := Entries{
		StretchEntry{ExerciseName: "Calf stretch", Seconds: Float(30)},
	}

	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"type":"ALONGAMENTO"`) {
		t.Errorf("Expected ALONGAMENTO tag in output, got: %s", data)
	}
}

func TestSetTripleCount(t *testing.T) {
	if got := (SetTriple{}).Count(); got != 0 {
		t.Errorf("Empty triple count: got %d, want 0", got)
	}
	if got := (SetTriple{Float(20), nil, Float(22)}).Count(); got != 2 {
		t.Errorf("Partial triple count: got %d, want 2", got)
	}
}

func TestExerciseTypeValid(t *testing.T) {
	for _, et := range []ExerciseType{ExerciseWeight, ExerciseStretch, ExerciseCardio} {
		if !et.Valid() {
			t.Errorf("Expected %s to be valid", et)
		}
	}
	if ExerciseType("YOGA").Valid() {
		t.Error("Expected YOGA to be invalid")
	}
}
