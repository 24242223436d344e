package catalog

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bekmurza/satkgbot/models"
)

func testQuestions() []models.Question {
	return []models.Question{
		{ID: "q1", QuestionKG: "Биринчи", Options: models.OptionList{{Letter: "A", Text: "1"}, {Letter: "B", Text: "2"}}, Answer: "A", Difficulty: "easy", Topic: "Algebra"},
		{ID: "q2", QuestionKG: "Экинчи", Options: models.OptionList{{Letter: "A", Text: "3"}, {Letter: "B", Text: "4"}}, Answer: "B", Difficulty: "medium", Topic: "Geometry"},
		{ID: "q3", QuestionKG: "Үчүнчү", Options: models.OptionList{{Letter: "A", Text: "5"}, {Letter: "B", Text: "6"}}, Answer: "A", Difficulty: "easy", Topic: "Algebra"},
		{ID: "q4", QuestionKG: "Төртүнчү", Options: models.OptionList{{Letter: "A", Text: "7"}}, Answer: "A", Difficulty: "easy"},
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questions.json")

	bank := `[
		{"id": "q1", "question_kg": "Суроо", "options": {"A": "бир", "B": "эки"}, "answer": "A", "difficulty": "easy", "topic": "Algebra"},
		{"id": "q2", "text": "Question", "options": {"A": "one"}, "correct": "A"}
	]`
	if err := os.WriteFile(path, []byte(bank), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", c.Len())
	}

	q, ok := c.ByPosition("1")
	if !ok || q.ID != "q1" {
		t.Errorf("ByPosition(1) = %+v, %v", q, ok)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not": "a list"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed bank")
	}
}

func TestByPosition(t *testing.T) {
	c := New(testQuestions())

	for i, id := range []string{"q1", "q2", "q3", "q4"} {
		pos := strconv.Itoa(i + 1)
		q, ok := c.ByPosition(pos)
		if !ok {
			t.Fatalf("ByPosition(%s) not found", pos)
		}
		if q.ID != id {
			t.Errorf("ByPosition(%s).ID = %s, want %s", pos, q.ID, id)
		}
	}

	if _, ok := c.ByPosition("5"); ok {
		t.Error("ByPosition(5) should not exist")
	}
	if _, ok := c.ByPosition("0"); ok {
		t.Error("ByPosition(0) should not exist; positions are 1-based")
	}
}

func TestPositionOf(t *testing.T) {
	c := New(testQuestions())

	pos, ok := c.PositionOf("q3")
	if !ok || pos != "3" {
		t.Errorf("PositionOf(q3) = %q, %v; want 3, true", pos, ok)
	}
	if _, ok := c.PositionOf("nope"); ok {
		t.Error("PositionOf(nope) should report missing")
	}
}

func TestByDifficulty(t *testing.T) {
	c := New(testQuestions())

	easy := c.ByDifficulty("easy")
	if len(easy) != 3 {
		t.Fatalf("expected 3 easy questions, got %d", len(easy))
	}
	// Catalog order preserved
	if easy[0].ID != "q1" || easy[1].ID != "q3" || easy[2].ID != "q4" {
		t.Errorf("easy questions out of order: %s, %s, %s", easy[0].ID, easy[1].ID, easy[2].ID)
	}

	if got := c.ByDifficulty("hard"); len(got) != 0 {
		t.Errorf("expected no hard questions, got %d", len(got))
	}
}

func TestTopics(t *testing.T) {
	c := New(testQuestions())

	topics := c.Topics()
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	// Sorted by name
	if topics[0].Name != "Algebra" || topics[1].Name != "Geometry" {
		t.Errorf("topics out of order: %s, %s", topics[0].Name, topics[1].Name)
	}
	if topics[0].Count != 2 {
		t.Errorf("Algebra count = %d, want 2", topics[0].Count)
	}
}

func TestResolveTopicExact(t *testing.T) {
	c := New(testQuestions())

	canonical, positions, ok := c.ResolveTopic("algebra")
	if !ok {
		t.Fatal("expected match for algebra")
	}
	if canonical != "Algebra" {
		t.Errorf("canonical = %q, want Algebra", canonical)
	}
	if len(positions) != 2 || positions[0] != "1" || positions[1] != "3" {
		t.Errorf("positions = %v, want [1 3]", positions)
	}
}

func TestResolveTopicPrefix(t *testing.T) {
	c := New(testQuestions())

	canonical, _, ok := c.ResolveTopic("geo")
	if !ok || canonical != "Geometry" {
		t.Errorf("ResolveTopic(geo) = %q, %v; want Geometry", canonical, ok)
	}

	if _, _, ok := c.ResolveTopic("calculus"); ok {
		t.Error("ResolveTopic(calculus) should not match")
	}
	if _, _, ok := c.ResolveTopic("  "); ok {
		t.Error("blank query should not match")
	}
}

func TestResolveTopicExactBeatsPrefix(t *testing.T) {
	// "Stat" is both an exact topic and a prefix of "Statistics";
	// the exact match must win.
	c := New([]models.Question{
		{ID: "a", Topic: "Statistics"},
		{ID: "b", Topic: "Stat"},
	})

	canonical, _, ok := c.ResolveTopic("stat")
	if !ok || canonical != "Stat" {
		t.Errorf("ResolveTopic(stat) = %q, want exact match Stat", canonical)
	}
}

func TestResolveTopicPrefixDeterministic(t *testing.T) {
	// Two prefix candidates: lexicographically first canonical topic wins.
	c := New([]models.Question{
		{ID: "a", Topic: "Geometry B"},
		{ID: "b", Topic: "Geometry A"},
	})

	canonical, _, ok := c.ResolveTopic("geometry")
	if !ok || canonical != "Geometry A" {
		t.Errorf("ResolveTopic(geometry) = %q, want Geometry A", canonical)
	}
}
