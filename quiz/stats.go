package quiz

import "sync"

// DiffStats are the attempt counters for one difficulty tag.
type DiffStats struct {
	Total   int
	Correct int
}

// Stats is a read-only snapshot of one user's answer statistics. Wrong holds
// the positions of questions whose latest answer was incorrect; a position
// leaves the set the moment it is answered correctly.
type Stats struct {
	Total   int
	Correct int
	ByDiff  map[string]DiffStats
	Wrong   map[string]struct{}
}

type userStats struct {
	total   int
	correct int
	byDiff  map[string]*DiffStats
	wrong   map[string]struct{}
}

// Ledger owns all per-user answer statistics. Record is the single mutation
// entrypoint; everything else is read-only.
type Ledger struct {
	mu sync.RWMutex
	m  map[int64]*userStats
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{m: make(map[int64]*userStats)}
}

// Record registers one answered question: total and per-difficulty counters
// always advance, and the wrong-set is updated so it tracks the latest
// outcome for the position.
func (l *Ledger) Record(userID int64, difficulty string, correct bool, pos string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	us, ok := l.m[userID]
	if !ok {
		us = &userStats{
			byDiff: make(map[string]*DiffStats),
			wrong:  make(map[string]struct{}),
		}
		l.m[userID] = us
	}

	us.total++
	if correct {
		us.correct++
	}

	ds, ok := us.byDiff[difficulty]
	if !ok {
		ds = &DiffStats{}
		us.byDiff[difficulty] = ds
	}
	ds.Total++
	if correct {
		ds.Correct++
	}

	if correct {
		delete(us.wrong, pos)
	} else {
		us.wrong[pos] = struct{}{}
	}
}

// Snapshot returns a copy of the user's statistics, zero-valued when the
// user has never answered anything.
func (l *Ledger) Snapshot(userID int64) Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := Stats{
		ByDiff: make(map[string]DiffStats),
		Wrong:  make(map[string]struct{}),
	}

	us, ok := l.m[userID]
	if !ok {
		return out
	}

	out.Total = us.total
	out.Correct = us.correct
	for diff, ds := range us.byDiff {
		out.ByDiff[diff] = *ds
	}
	for pos := range us.wrong {
		out.Wrong[pos] = struct{}{}
	}
	return out
}

// WrongPositions returns the user's unresolved-mistake positions. Order is
// unspecified.
func (l *Ledger) WrongPositions(userID int64) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	us, ok := l.m[userID]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(us.wrong))
	for pos := range us.wrong {
		out = append(out, pos)
	}
	return out
}
