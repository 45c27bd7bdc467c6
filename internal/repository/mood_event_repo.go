package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"moodify/internal/models"

	"github.com/google/uuid"
)

type MoodEventRepository struct {
	db *sql.DB
}

func NewMoodEventRepository(db *sql.DB) *MoodEventRepository {
	return &MoodEventRepository{db: db}
}

var _ MoodEvents = (*MoodEventRepository)(nil)

const insertMoodEventSQL = `INSERT INTO mood_events (id, user_id, mood, playlist_id, occurred_at) VALUES (?, ?, ?, ?, ?)`

// sqliteTimeLayout is the text form occurred_at is stored in. Range filters
// must bind the same form, otherwise the comparison is lexicographic across
// two different formats and boundary values are silently dropped.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Append inserts a new detection record. If EventID or OccurredAt are empty, they’re set.
func (r *MoodEventRepository) Append(ctx context.Context, e models.MoodEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertMoodEventSQL,
		e.EventID,
		e.UserID,
		strings.ToLower(strings.TrimSpace(e.Mood)),
		e.PlaylistID,
		e.OccurredAt.Format(sqliteTimeLayout),
	)
	return err
}

// List returns a user's events filtered by [from, to] (inclusive) and/or mood, ordered ASC.
func (r *MoodEventRepository) List(ctx context.Context, userID int, from, to time.Time, mood string) ([]models.MoodEvent, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimeLayout))
	}
	if mood = strings.ToLower(strings.TrimSpace(mood)); mood != "" {
		conds = append(conds, "mood = ?")
		args = append(args, mood)
	}

	q := `SELECT id, user_id, mood, playlist_id, occurred_at FROM mood_events WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY occurred_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.MoodEvent, 0, 16)
	for rows.Next() {
		var ev models.MoodEvent
		if err := rows.Scan(&ev.EventID, &ev.UserID, &ev.Mood, &ev.PlaylistID, &ev.OccurredAt); err != nil {
			return nil, err
		}
		ev.OccurredAt = ev.OccurredAt.UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
