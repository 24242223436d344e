package models

import (
	"encoding/json"
	"testing"
)

func TestOptionListPreservesOrder(t *testing.T) {
	raw := `{"options": {"C": "үч", "A": "бир", "D": "төрт", "B": "эки"}}`

	var q Question
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"C", "A", "D", "B"}
	got := q.Options.Letters()
	if len(got) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option %d: expected letter %q, got %q", i, want[i], got[i])
		}
	}

	if text, ok := q.Options.Get("D"); !ok || text != "төрт" {
		t.Errorf("Get(D) = %q, %v; want %q, true", text, ok, "төрт")
	}
	if _, ok := q.Options.Get("E"); ok {
		t.Error("Get(E) should report missing")
	}
}

func TestOptionListRejectsNonObject(t *testing.T) {
	var opts OptionList
	if err := json.Unmarshal([]byte(`["A", "B"]`), &opts); err == nil {
		t.Error("expected error for non-object options")
	}
}

func TestQuestionFallbacks(t *testing.T) {
	q := Question{QuestionKG: "кыргызча", Text: "english"}
	if got := q.DisplayText(); got != "кыргызча" {
		t.Errorf("DisplayText = %q, want Kyrgyz variant", got)
	}

	q = Question{Text: "english"}
	if got := q.DisplayText(); got != "english" {
		t.Errorf("DisplayText = %q, want fallback text", got)
	}

	q = Question{}
	if got := q.DisplayText(); got != "Суроо жок" {
		t.Errorf("DisplayText = %q, want placeholder", got)
	}

	q = Question{Answer: "A", Correct: "B"}
	if got := q.CorrectLetter(); got != "A" {
		t.Errorf("CorrectLetter = %q, want answer field to win", got)
	}
	q = Question{Correct: "B"}
	if got := q.CorrectLetter(); got != "B" {
		t.Errorf("CorrectLetter = %q, want legacy field", got)
	}

	q = Question{Explanation: "en"}
	if got := q.ExplanationText(); got != "en" {
		t.Errorf("ExplanationText = %q", got)
	}
	q = Question{}
	if got := q.ExplanationText(); got != "" {
		t.Errorf("ExplanationText = %q, want empty default", got)
	}

	q = Question{}
	if got := q.DifficultyTag(); got != "unknown" {
		t.Errorf("DifficultyTag = %q, want unknown", got)
	}
	q = Question{Difficulty: "easy"}
	if got := q.DifficultyTag(); got != "easy" {
		t.Errorf("DifficultyTag = %q, want easy", got)
	}
}
