package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)
	assert.Equal(t, "test.db", filepath.Base(db.Path()))
}

func TestReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	require.NoError(t, err)
	_, err = NewAttemptRepository(db).Record(Attempt{Drill: "edge", Correct: true, ResponseMs: 100})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	attempts, err := NewAttemptRepository(db).List("edge")
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create("innereye", "level: 2\n")
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "innereye", s.Drill)
	assert.Nil(t, s.EndedAt)
	require.NotNil(t, s.SettingsYAML)
	assert.Equal(t, "level: 2\n", *s.SettingsYAML)

	require.NoError(t, repo.End(id))
	s, err = repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.EndedAt)
	assert.False(t, s.EndedAt.Before(s.StartedAt))

	assert.Error(t, repo.End("missing"))

	missing, err := repo.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	_, err := repo.Create("edge", "")
	require.NoError(t, err)
	_, err = repo.Create("f2l", "")
	require.NoError(t, err)

	all, err := repo.List("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	edge, err := repo.List("edge", 10)
	require.NoError(t, err)
	require.Len(t, edge, 1)
	assert.Nil(t, edge[0].SettingsYAML)
}

func TestAttemptStats(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	attempts := NewAttemptRepository(db)

	sid, err := sessions.Create("zanshin", "")
	require.NoError(t, err)

	results := []struct {
		category string
		correct  bool
		ms       int64
	}{
		{"pieceRecall", true, 900},
		{"pieceRecall", true, 700},
		{"stickerSetRecall", false, 1500},
		{"singleStickerRecall", true, 400},
		{"pieceRecall", true, 1000},
	}
	for _, r := range results {
		_, err := attempts.Record(Attempt{
			SessionID:  sid,
			Drill:      "zanshin",
			Category:   r.category,
			Correct:    r.correct,
			ResponseMs: r.ms,
		})
		require.NoError(t, err)
	}
	_, err = attempts.Record(Attempt{Drill: "edge", Correct: false, ResponseMs: 50})
	require.NoError(t, err)

	st, err := attempts.Stats("zanshin")
	require.NoError(t, err)

	assert.Equal(t, 5, st.Attempts)
	assert.Equal(t, 4, st.Correct)
	assert.InDelta(t, 0.8, st.Accuracy(), 1e-9)
	assert.Equal(t, 2, st.CurrentStreak)
	assert.Equal(t, 2, st.BestStreak)
	assert.Equal(t, 900*time.Millisecond, st.AvgResponse)
	assert.Equal(t, 400*time.Millisecond, st.BestResponse)
	assert.Len(t, st.RecentTimes, 5)
	assert.Equal(t, CategoryStats{Attempts: 3, Correct: 3}, st.Categories["pieceRecall"])
	assert.Equal(t, CategoryStats{Attempts: 1, Correct: 0}, st.Categories["stickerSetRecall"])
}

func TestResetClearsOneDrill(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	attempts := NewAttemptRepository(db)

	sid, err := sessions.Create("edge", "")
	require.NoError(t, err)
	_, err = attempts.Record(Attempt{SessionID: sid, Drill: "edge", Correct: true, ResponseMs: 10})
	require.NoError(t, err)
	_, err = attempts.Record(Attempt{Drill: "orientation", Correct: true, ResponseMs: 10})
	require.NoError(t, err)

	require.NoError(t, attempts.Reset("edge"))

	st, err := attempts.Stats("edge")
	require.NoError(t, err)
	assert.Zero(t, st.Attempts)
	assert.Zero(t, st.Accuracy())

	left, err := sessions.List("edge", 0)
	require.NoError(t, err)
	assert.Empty(t, left)

	other, err := attempts.Stats("orientation")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Attempts)
}

func TestSummarizeRecentWindow(t *testing.T) {
	var attempts []Attempt
	for i := 0; i < RecentWindow+10; i++ {
		attempts = append(attempts, Attempt{Correct: i%3 != 0, ResponseMs: int64(i + 1)})
	}

	st := Summarize("f2l", attempts)
	require.Len(t, st.RecentTimes, RecentWindow)
	assert.Equal(t, 11*time.Millisecond, st.RecentTimes[0])
	assert.Equal(t, time.Duration(RecentWindow+10)*time.Millisecond, st.RecentTimes[RecentWindow-1])
	assert.Equal(t, time.Millisecond, st.BestResponse)
	assert.Equal(t, 2, st.BestStreak)
}
