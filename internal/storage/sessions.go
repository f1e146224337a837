package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyuha/gymtrack/internal/gym"
)

// AddWorkoutSession records a session and returns its store-assigned id.
// The owning member must exist (gym.ErrForeignKeyViolation) and the date
// must be YYYY-MM-DD (gym.ErrInvalidFormat); the member is checked first.
func (s *Storage) AddWorkoutSession(ctx context.Context, ws gym.WorkoutSession) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM Members WHERE id = ?`, ws.MemberID)
		if err != nil {
			return err
		}
		if !exists {
			return gym.ErrForeignKeyViolation
		}
		if err := gym.ValidateDate(ws.Date); err != nil {
			return err
		}

		const q = `INSERT INTO WorkoutSessions
			(member_id, date, duration_minutes, calories_burned)
			VALUES (?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, q, ws.MemberID, ws.Date, ws.DurationMinutes, ws.CaloriesBurned)
		if err != nil {
			return classify(err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("storage: add workout session for member %d: %w", ws.MemberID, err)
	}
	return id, nil
}

// DeleteWorkoutSession removes a session by id. The owning member is left
// untouched.
func (s *Storage) DeleteWorkoutSession(ctx context.Context, sessionID int64) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM WorkoutSessions WHERE id = ?`, sessionID)
		if err != nil {
			return err
		}
		if !exists {
			return gym.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM WorkoutSessions WHERE id = ?`, sessionID); err != nil {
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: delete workout session %d: %w", sessionID, err)
	}
	return nil
}

// ListSessions returns a member's sessions ordered by date, then id.
// Unknown members yield gym.ErrNotFound.
func (s *Storage) ListSessions(ctx context.Context, memberID int64) ([]gym.WorkoutSession, error) {
	if _, err := s.GetMember(ctx, memberID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	const q = `SELECT id, member_id, date, duration_minutes, calories_burned
		FROM WorkoutSessions WHERE member_id = ? ORDER BY date ASC, id ASC`
	rows, err := s.db.QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, fmt.Errorf("storage: list sessions for member %d: %w", memberID, classify(err))
	}
	defer rows.Close()

	result := make([]gym.WorkoutSession, 0)
	for rows.Next() {
		var ws gym.WorkoutSession
		if err := rows.Scan(&ws.ID, &ws.MemberID, &ws.Date, &ws.DurationMinutes, &ws.CaloriesBurned); err != nil {
			return nil, fmt.Errorf("storage: scan session row: %w", classify(err))
		}
		result = append(result, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: session rows: %w", classify(err))
	}
	return result, nil
}
