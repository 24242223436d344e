package analytics

import "testing"

// Without a DATABASE_URL the store must come up disabled and every
// operation must quietly report its zero value. The bot depends on this:
// analytics can never take the response path down with it.
func TestDisabledStore(t *testing.T) {
	s := Open("")

	if s.Enabled() {
		t.Fatal("store without a database URL must be disabled")
	}

	if s.EnsureUser(1, "u", "f", "l") {
		t.Error("EnsureUser on disabled store should report false")
	}
	if s.LogEvent(1, "user_start", map[string]any{"k": "v"}) {
		t.Error("LogEvent on disabled store should report false")
	}
	if s.LogAttempt(1, "q1", "1", "A", "B", false, "easy", "Algebra") {
		t.Error("LogAttempt on disabled store should report false")
	}

	if got := s.DAUToday(); got != 0 {
		t.Errorf("DAUToday = %d, want 0", got)
	}
	if got := s.AttemptsToday(); got != 0 {
		t.Errorf("AttemptsToday = %d, want 0", got)
	}
	if got := s.AttemptsTotal(); got != 0 {
		t.Errorf("AttemptsTotal = %d, want 0", got)
	}
	if got := s.Accuracy(); got != 0 {
		t.Errorf("Accuracy = %f, want 0", got)
	}
	if got := s.RetentionD1(); got != 0 {
		t.Errorf("RetentionD1 = %f, want 0", got)
	}
	if got := s.AttemptsPerDay(14); got != nil {
		t.Errorf("AttemptsPerDay = %v, want nil", got)
	}
	if got := s.TopUsers(10); got != nil {
		t.Errorf("TopUsers = %v, want nil", got)
	}

	if err := s.Close(); err != nil {
		t.Errorf("Close on disabled store: %v", err)
	}
}

// A nil *Store behaves like a disabled one.
func TestNilStore(t *testing.T) {
	var s *Store

	if s.Enabled() {
		t.Error("nil store must be disabled")
	}
	if s.LogEvent(1, "user_start", nil) {
		t.Error("LogEvent on nil store should report false")
	}
	if got := s.AttemptsTotal(); got != 0 {
		t.Errorf("AttemptsTotal = %d, want 0", got)
	}
}
