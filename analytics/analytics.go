// Package analytics persists usage facts (users, events, answer attempts)
// to PostgreSQL. Every operation is best-effort: when the database is not
// configured or unreachable the store degrades to a no-op, writes report
// false, reads report zero values, and nothing ever reaches the caller as
// an error. The bot must keep working with no database at all.
package analytics

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// tzOffsetHours shifts day boundaries to Bishkek local time (UTC+6).
const tzOffsetHours = 6

// Store handles all analytics database operations. A nil or disabled Store
// is valid and does nothing.
type Store struct {
	db *sql.DB
}

// Open connects to PostgreSQL and prepares the schema. An empty databaseURL
// or a failed connection yields a disabled store with a logged warning, not
// an error: analytics must never keep the bot from starting.
func Open(databaseURL string) *Store {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, analytics disabled")
		return &Store{}
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Printf("analytics: open database: %v (analytics disabled)", err)
		return &Store{}
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("analytics: ping database: %v (analytics disabled)", err)
		db.Close()
		return &Store{}
	}

	if err := migrate(db); err != nil {
		log.Printf("analytics: migrate: %v (analytics disabled)", err)
		db.Close()
		return &Store{}
	}

	log.Println("analytics: database connected")
	return &Store{db: db}
}

// Enabled reports whether a database connection is live.
func (s *Store) Enabled() bool {
	return s != nil && s.db != nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.db.Close()
}

// migrate creates the analytics tables if they don't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			user_id    BIGINT PRIMARY KEY,
			username   TEXT,
			first_name TEXT,
			last_name  TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS events (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL REFERENCES users(user_id),
			event_type TEXT NOT NULL,
			metadata   JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at);
		CREATE INDEX IF NOT EXISTS idx_events_user ON events(user_id);

		CREATE TABLE IF NOT EXISTS attempts (
			id             BIGSERIAL PRIMARY KEY,
			user_id        BIGINT NOT NULL REFERENCES users(user_id),
			question_id    TEXT NOT NULL,
			question_num   TEXT,
			user_answer    TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			is_correct     BOOLEAN NOT NULL,
			difficulty     TEXT,
			topic          TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_attempts_created ON attempts(created_at);
		CREATE INDEX IF NOT EXISTS idx_attempts_user ON attempts(user_id)
	`)
	return err
}

// EnsureUser upserts a user row, keeping existing names when the update
// carries empty ones.
func (s *Store) EnsureUser(userID int64, username, firstName, lastName string) bool {
	if !s.Enabled() {
		return false
	}

	_, err := s.db.Exec(`
		INSERT INTO users (user_id, username, first_name, last_name)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (user_id) DO UPDATE SET
			username   = COALESCE(EXCLUDED.username, users.username),
			first_name = COALESCE(EXCLUDED.first_name, users.first_name),
			last_name  = COALESCE(EXCLUDED.last_name, users.last_name),
			updated_at = NOW()
	`, userID, username, firstName, lastName)
	if err != nil {
		log.Printf("analytics: ensure user %d: %v", userID, err)
		return false
	}
	return true
}

// LogEvent records one event with optional metadata.
func (s *Store) LogEvent(userID int64, eventType string, metadata map[string]any) bool {
	if !s.Enabled() {
		return false
	}

	s.EnsureUser(userID, "", "", "")

	meta := []byte("{}")
	if len(metadata) > 0 {
		if b, err := json.Marshal(metadata); err == nil {
			meta = b
		}
	}

	_, err := s.db.Exec(
		"INSERT INTO events (user_id, event_type, metadata) VALUES ($1, $2, $3)",
		userID, eventType, meta,
	)
	if err != nil {
		log.Printf("analytics: log event %s for user %d: %v", eventType, userID, err)
		return false
	}
	return true
}

// LogAttempt records one answered question.
func (s *Store) LogAttempt(userID int64, questionID, questionNum, userAnswer, correctAnswer string, isCorrect bool, difficulty, topic string) bool {
	if !s.Enabled() {
		return false
	}

	s.EnsureUser(userID, "", "", "")

	_, err := s.db.Exec(`
		INSERT INTO attempts (user_id, question_id, question_num, user_answer,
			correct_answer, is_correct, difficulty, topic)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
	`, userID, questionID, questionNum, userAnswer, correctAnswer, isCorrect, difficulty, topic)
	if err != nil {
		log.Printf("analytics: log attempt for user %d: %v", userID, err)
		return false
	}
	return true
}
