package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one sitting of a single drill.
type Session struct {
	SessionID    string
	Drill        string
	StartedAt    time.Time
	EndedAt      *time.Time
	SettingsYAML *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a new session for a drill and returns its ID. settings is
// the YAML snapshot of the drill settings in effect, and may be empty.
func (r *SessionRepository) Create(drill, settings string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var settingsPtr *string
	if settings != "" {
		settingsPtr = &settings
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, drill, started_at, settings_yaml)
		VALUES (?, ?, ?, ?)
	`, id, drill, startedAt.Format(timeLayout), settingsPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string) error {
	endedAt := time.Now().UTC()

	res, err := r.db.Exec(`
		UPDATE sessions SET ended_at = ? WHERE session_id = ?
	`, endedAt.Format(timeLayout), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}

	return nil
}

// Get retrieves a session by ID. It returns nil when no session matches.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, drill, started_at, ended_at, settings_yaml
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return s, nil
}

// List returns sessions newest first. An empty drill lists every drill.
func (r *SessionRepository) List(drill string, limit int) ([]Session, error) {
	query := `
		SELECT session_id, drill, started_at, ended_at, settings_yaml
		FROM sessions
	`
	var args []interface{}
	if drill != "" {
		query += " WHERE drill = ?"
		args = append(args, drill)
	}
	query += " ORDER BY started_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	if err := row.Scan(&s.SessionID, &s.Drill, &startedAtStr, &endedAtStr, &s.SettingsYAML); err != nil {
		return nil, err
	}

	startedAt, err := time.Parse(timeLayout, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time: %w", err)
	}
	s.StartedAt = startedAt

	if endedAtStr.Valid {
		endedAt, err := time.Parse(timeLayout, endedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end time: %w", err)
		}
		s.EndedAt = &endedAt
	}

	return &s, nil
}
