package analytics

import (
	"log"
	"time"
)

// DayCount is attempts on one local calendar day.
type DayCount struct {
	Date  string
	Count int
}

// UserCount is one leaderboard row.
type UserCount struct {
	UserID int64
	Count  int
}

// startOfLocalDay returns the UTC instant at which today began in local
// (UTC+6) time.
func startOfLocalDay() time.Time {
	offset := time.Duration(tzOffsetHours) * time.Hour
	local := time.Now().UTC().Add(offset)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return start.Add(-offset)
}

// DAUToday is the number of distinct users with at least one event today.
func (s *Store) DAUToday() int {
	if !s.Enabled() {
		return 0
	}

	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(DISTINCT user_id) FROM events WHERE created_at >= $1",
		startOfLocalDay(),
	).Scan(&count)
	if err != nil {
		log.Printf("analytics: dau: %v", err)
		return 0
	}
	return count
}

// AttemptsToday counts attempts since the local start of day.
func (s *Store) AttemptsToday() int {
	if !s.Enabled() {
		return 0
	}

	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM attempts WHERE created_at >= $1",
		startOfLocalDay(),
	).Scan(&count)
	if err != nil {
		log.Printf("analytics: attempts today: %v", err)
		return 0
	}
	return count
}

// AttemptsTotal counts all attempts ever recorded.
func (s *Store) AttemptsTotal() int {
	if !s.Enabled() {
		return 0
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM attempts").Scan(&count); err != nil {
		log.Printf("analytics: attempts total: %v", err)
		return 0
	}
	return count
}

// Accuracy is the all-time correct-answer percentage, 0 when there are no
// attempts.
func (s *Store) Accuracy() float64 {
	if !s.Enabled() {
		return 0
	}

	var total, correct int
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0)
		FROM attempts
	`).Scan(&total, &correct)
	if err != nil {
		log.Printf("analytics: accuracy: %v", err)
		return 0
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// AttemptsPerDay returns per-day attempt counts for the last N days, most
// recent day first. Days are bucketed at the local (UTC+6) boundary.
func (s *Store) AttemptsPerDay(days int) []DayCount {
	if !s.Enabled() {
		return nil
	}

	since := startOfLocalDay().AddDate(0, 0, -days)
	rows, err := s.db.Query(`
		SELECT TO_CHAR(DATE(created_at + make_interval(hours => $1)), 'YYYY-MM-DD'), COUNT(*)
		FROM attempts
		WHERE created_at >= $2
		GROUP BY 1
		ORDER BY 1 DESC
	`, tzOffsetHours, since)
	if err != nil {
		log.Printf("analytics: attempts per day: %v", err)
		return nil
	}
	defer rows.Close()

	var out []DayCount
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			log.Printf("analytics: attempts per day scan: %v", err)
			return nil
		}
		out = append(out, dc)
	}
	return out
}

// TopUsers returns the users with the most correct answers over the last
// seven days.
func (s *Store) TopUsers(limit int) []UserCount {
	if !s.Enabled() {
		return nil
	}

	since := time.Now().UTC().AddDate(0, 0, -7)
	rows, err := s.db.Query(`
		SELECT user_id, COUNT(*) AS cnt
		FROM attempts
		WHERE created_at >= $1 AND is_correct
		GROUP BY user_id
		ORDER BY cnt DESC
		LIMIT $2
	`, since, limit)
	if err != nil {
		log.Printf("analytics: top users: %v", err)
		return nil
	}
	defer rows.Close()

	var out []UserCount
	for rows.Next() {
		var uc UserCount
		if err := rows.Scan(&uc.UserID, &uc.Count); err != nil {
			log.Printf("analytics: top users scan: %v", err)
			return nil
		}
		out = append(out, uc)
	}
	return out
}

// RetentionD1 is the percentage of users who came back the day after their
// first "user_start" event.
func (s *Store) RetentionD1() float64 {
	if !s.Enabled() {
		return 0
	}

	var total, returned int
	err := s.db.QueryRow(`
		WITH first_visits AS (
			SELECT user_id, DATE(MIN(created_at)) AS first_date
			FROM events
			WHERE event_type = 'user_start'
			GROUP BY user_id
		),
		returned_users AS (
			SELECT DISTINCT fv.user_id
			FROM first_visits fv
			JOIN events e ON e.user_id = fv.user_id
			WHERE DATE(e.created_at) = fv.first_date + INTERVAL '1 day'
		)
		SELECT
			COUNT(DISTINCT fv.user_id),
			COUNT(DISTINCT ru.user_id)
		FROM first_visits fv
		LEFT JOIN returned_users ru ON ru.user_id = fv.user_id
	`).Scan(&total, &returned)
	if err != nil {
		log.Printf("analytics: retention d1: %v", err)
		return 0
	}
	if total == 0 {
		return 0
	}
	return float64(returned) / float64(total) * 100
}
