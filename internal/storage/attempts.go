package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecentWindow is the number of response times kept in Stats.RecentTimes.
const RecentWindow = 50

// Attempt is one graded answer.
type Attempt struct {
	AttemptID  string
	SessionID  string
	Drill      string
	Category   string
	Correct    bool
	ResponseMs int64
	Prompt     string
	Answer     string
	CreatedAt  time.Time
}

// CategoryStats counts attempts within one question category.
type CategoryStats struct {
	Attempts int
	Correct  int
}

// Stats summarizes every attempt recorded for a drill.
type Stats struct {
	Drill         string
	Attempts      int
	Correct       int
	CurrentStreak int
	BestStreak    int
	AvgResponse   time.Duration
	BestResponse  time.Duration
	RecentTimes   []time.Duration
	Categories    map[string]CategoryStats
}

// Accuracy returns the fraction of correct answers, or 0 with no attempts.
func (s Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// AttemptRepository records and summarizes attempts.
type AttemptRepository struct {
	db *DB
}

// NewAttemptRepository creates a new attempt repository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Record stores an attempt and returns its ID. AttemptID and CreatedAt are
// filled in when empty.
func (r *AttemptRepository) Record(a Attempt) (string, error) {
	if a.AttemptID == "" {
		a.AttemptID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	var sessionID *string
	if a.SessionID != "" {
		sessionID = &a.SessionID
	}

	_, err := r.db.Exec(`
		INSERT INTO attempts (attempt_id, session_id, drill, category, correct, response_ms, prompt, answer, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.AttemptID, sessionID, a.Drill, a.Category, boolToInt(a.Correct), a.ResponseMs,
		a.Prompt, a.Answer, a.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return "", fmt.Errorf("failed to record attempt: %w", err)
	}

	return a.AttemptID, nil
}

// List returns a drill's attempts in the order they were recorded.
func (r *AttemptRepository) List(drill string) ([]Attempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, session_id, drill, category, correct, response_ms, prompt, answer, created_at
		FROM attempts
		WHERE drill = ?
		ORDER BY rowid
	`, drill)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var sessionID, prompt, answer sql.NullString
		var correct int
		var createdAtStr string

		if err := rows.Scan(&a.AttemptID, &sessionID, &a.Drill, &a.Category, &correct,
			&a.ResponseMs, &prompt, &answer, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}

		a.SessionID = sessionID.String
		a.Prompt = prompt.String
		a.Answer = answer.String
		a.Correct = correct != 0
		a.CreatedAt, err = time.Parse(timeLayout, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse attempt time: %w", err)
		}

		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// Reset deletes every attempt and session of a drill.
func (r *AttemptRepository) Reset(drill string) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM attempts WHERE drill = ?", drill); err != nil {
			return fmt.Errorf("failed to delete attempts: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM sessions WHERE drill = ?", drill); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		return nil
	})
}

// Stats summarizes a drill's attempts.
func (r *AttemptRepository) Stats(drill string) (*Stats, error) {
	attempts, err := r.List(drill)
	if err != nil {
		return nil, err
	}
	return Summarize(drill, attempts), nil
}

// Summarize computes statistics over attempts given in chronological order.
func Summarize(drill string, attempts []Attempt) *Stats {
	s := &Stats{
		Drill:      drill,
		Categories: make(map[string]CategoryStats),
	}

	var total time.Duration
	streak := 0
	for i, a := range attempts {
		d := time.Duration(a.ResponseMs) * time.Millisecond

		s.Attempts++
		total += d
		if i == 0 || d < s.BestResponse {
			s.BestResponse = d
		}

		c := s.Categories[a.Category]
		c.Attempts++

		if a.Correct {
			s.Correct++
			c.Correct++
			streak++
			if streak > s.BestStreak {
				s.BestStreak = streak
			}
		} else {
			streak = 0
		}
		s.Categories[a.Category] = c
	}
	s.CurrentStreak = streak

	if s.Attempts > 0 {
		s.AvgResponse = total / time.Duration(s.Attempts)
	}

	start := len(attempts) - RecentWindow
	if start < 0 {
		start = 0
	}
	for _, a := range attempts[start:] {
		s.RecentTimes = append(s.RecentTimes, time.Duration(a.ResponseMs)*time.Millisecond)
	}

	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
