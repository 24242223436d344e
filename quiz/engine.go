// Package quiz is the navigation and answer-evaluation core of the bot:
// it decides which question to show next, grades submitted answers, and
// keeps per-user sessions and statistics. It performs no I/O itself and
// talks to the chat transport only through the Presenter interface.
package quiz

import (
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/bekmurza/satkgbot/catalog"
	"github.com/bekmurza/satkgbot/models"
)

// Mode tells the presenter (and later the answer handler) how a question was
// reached. Sequential answers advance the session cursor; manual and review
// answers do not.
type Mode string

const (
	ModeManual     Mode = "manual"
	ModeSequential Mode = "sequential"
	ModeReview     Mode = "review"
)

// Navigation and evaluation failures. All of them are user-visible notices,
// never process faults; the bot maps each to a Kyrgyz message.
var (
	ErrBadPosition      = errors.New("position is not a number")
	ErrQuestionNotFound = errors.New("no question at that position")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrNothingToReview  = errors.New("no wrong answers to review")
	ErrFirstQuestion    = errors.New("already at the first question")
	ErrLastQuestion     = errors.New("already at the last question")
	ErrLevelEmpty       = errors.New("no questions at this level")
	ErrLevelComplete    = errors.New("all questions at this level answered")
)

// Presenter delivers questions and grading feedback to the user. The engine
// supplies the global position, the catalog size and the navigation mode;
// the presenter owns message formatting, keyboards and image attachment.
type Presenter interface {
	Present(userID int64, q *models.Question, pos string, total int, mode Mode) error
	Feedback(userID int64, out *Outcome) error
}

// Outcome is the result of evaluating one submitted answer.
type Outcome struct {
	Correct       bool
	CorrectLetter string
	CorrectText   string
	Explanation   string
	Question      *models.Question
	Position      string
}

// Engine resolves navigation requests against the catalog and grades
// answers. Safe for concurrent use.
type Engine struct {
	catalog   *catalog.Catalog
	presenter Presenter
	sessions  *sessionStore
	ledger    *Ledger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewEngine creates an engine over a loaded catalog. rng may be nil, in
// which case a time-seeded source is used; tests pass a seeded one.
func NewEngine(cat *catalog.Catalog, p Presenter, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		catalog:   cat,
		presenter: p,
		sessions:  newSessionStore(),
		ledger:    NewLedger(),
		rng:       rng,
	}
}

// Ledger exposes the statistics ledger for read-side rendering (/stats).
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Session returns the user's current sequential session, if any.
func (e *Engine) Session(userID int64) (Session, bool) {
	return e.sessions.get(userID)
}

func (e *Engine) intn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}

// Goto presents the question at a user-supplied 1-based position token.
// Non-numeric tokens fail with ErrBadPosition, unknown positions with
// ErrQuestionNotFound; neither touches any user state.
func (e *Engine) Goto(userID int64, token string) error {
	if !isDigits(token) {
		return ErrBadPosition
	}
	q, ok := e.catalog.ByPosition(token)
	if !ok {
		return ErrQuestionNotFound
	}
	return e.presenter.Present(userID, q, token, e.catalog.Len(), ModeManual)
}

// Random presents a uniformly random question from the whole catalog.
func (e *Engine) Random(userID int64) error {
	n := e.catalog.Len()
	if n == 0 {
		return ErrQuestionNotFound
	}
	pos := strconv.Itoa(e.intn(n) + 1)
	q, _ := e.catalog.ByPosition(pos)
	return e.presenter.Present(userID, q, pos, n, ModeManual)
}

// Topic presents a random question from the topic matching the query.
func (e *Engine) Topic(userID int64, query string) error {
	_, positions, ok := e.catalog.ResolveTopic(query)
	if !ok || len(positions) == 0 {
		return ErrTopicNotFound
	}
	pos := positions[e.intn(len(positions))]
	q, ok := e.catalog.ByPosition(pos)
	if !ok {
		return ErrQuestionNotFound
	}
	return e.presenter.Present(userID, q, pos, e.catalog.Len(), ModeManual)
}

// Review presents a random question from the user's wrong-set.
func (e *Engine) Review(userID int64) error {
	wrong := e.ledger.WrongPositions(userID)
	if len(wrong) == 0 {
		return ErrNothingToReview
	}
	pos := wrong[e.intn(len(wrong))]
	q, ok := e.catalog.ByPosition(pos)
	if !ok {
		return ErrQuestionNotFound
	}
	return e.presenter.Present(userID, q, pos, e.catalog.Len(), ModeReview)
}

// Prev presents the question one position before the given one. Relative
// navigation walks the full catalog regardless of any difficulty session.
func (e *Engine) Prev(userID int64, pos string) error {
	return e.step(userID, pos, -1, ErrFirstQuestion)
}

// Next presents the question one position after the given one.
func (e *Engine) Next(userID int64, pos string) error {
	return e.step(userID, pos, +1, ErrLastQuestion)
}

func (e *Engine) step(userID int64, pos string, delta int, boundary error) error {
	cur, err := strconv.Atoi(pos)
	if err != nil {
		return ErrBadPosition
	}
	target := strconv.Itoa(cur + delta)
	q, ok := e.catalog.ByPosition(target)
	if !ok {
		return boundary
	}
	return e.presenter.Present(userID, q, target, e.catalog.Len(), ModeManual)
}

// SelectLevel starts (or restarts) sequential practice at the given
// difficulty: the session cursor resets to 0 and the first question is
// presented.
func (e *Engine) SelectLevel(userID int64, difficulty string) error {
	e.sessions.reset(userID, difficulty)
	return e.Sequential(userID, difficulty)
}

// Sequential presents the question at the user's cursor within the
// difficulty-filtered list. ErrLevelEmpty when the difficulty has no
// questions, ErrLevelComplete once the cursor has walked past the end
// (repeat calls stay complete, they do not error differently).
func (e *Engine) Sequential(userID int64, difficulty string) error {
	filtered := e.catalog.ByDifficulty(difficulty)
	if len(filtered) == 0 {
		return ErrLevelEmpty
	}

	sess, ok := e.sessions.get(userID)
	if !ok || sess.Difficulty != difficulty {
		e.sessions.reset(userID, difficulty)
		sess = Session{Difficulty: difficulty}
	}

	if sess.Index >= len(filtered) {
		return ErrLevelComplete
	}

	q := filtered[sess.Index]
	pos, ok := e.catalog.PositionOf(q.ID)
	if !ok {
		return ErrQuestionNotFound
	}
	return e.presenter.Present(userID, q, pos, e.catalog.Len(), ModeSequential)
}

// Evaluate grades a submitted answer. The position is the correlation key;
// the question id is cross-checked against the catalog entry so a stale or
// forged callback cannot grade the wrong question. The ledger is updated
// unconditionally on a successful lookup.
//
// Feedback goes out through the presenter before anything else so it
// always precedes a chained question. In sequential mode the session cursor
// then advances (correct or not) and the next question is pushed; the
// returned error carries the continuation notice (ErrLevelComplete and
// friends) while the Outcome still describes the answer just given.
func (e *Engine) Evaluate(userID int64, questionID, choice string, mode Mode, pos string) (*Outcome, error) {
	q, ok := e.catalog.ByPosition(pos)
	if !ok {
		return nil, ErrQuestionNotFound
	}
	if questionID != "" && q.ID != questionID {
		return nil, ErrQuestionNotFound
	}

	correct := q.CorrectLetter()
	isCorrect := choice == correct

	e.ledger.Record(userID, q.DifficultyTag(), isCorrect, pos)

	correctText, _ := q.Options.Get(correct)
	out := &Outcome{
		Correct:       isCorrect,
		CorrectLetter: correct,
		CorrectText:   correctText,
		Explanation:   q.ExplanationText(),
		Question:      q,
		Position:      pos,
	}

	if err := e.presenter.Feedback(userID, out); err != nil {
		return out, err
	}

	if mode == ModeSequential {
		if sess, ok := e.sessions.advance(userID); ok {
			return out, e.Sequential(userID, sess.Difficulty)
		}
	}

	return out, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
