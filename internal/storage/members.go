package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vyuha/gymtrack/internal/gym"
)

// AddMember inserts a member with a caller-assigned id. It fails with
// gym.ErrDuplicateKey when the id is taken; name and age are stored as given.
func (s *Storage) AddMember(ctx context.Context, m gym.Member) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM Members WHERE id = ?`, m.ID)
		if err != nil {
			return err
		}
		if exists {
			return gym.ErrDuplicateKey
		}

		const q = `INSERT INTO Members (id, name, age) VALUES (?, ?, ?)`
		if _, err := tx.ExecContext(ctx, q, m.ID, m.Name, m.Age); err != nil {
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: add member %d: %w", m.ID, err)
	}
	return nil
}

// UpdateMemberAge overwrites a member's age. No bounds are applied.
func (s *Storage) UpdateMemberAge(ctx context.Context, memberID int64, age int) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM Members WHERE id = ?`, memberID)
		if err != nil {
			return err
		}
		if !exists {
			return gym.ErrNotFound
		}

		const q = `UPDATE Members SET age = ? WHERE id = ?`
		if _, err := tx.ExecContext(ctx, q, age, memberID); err != nil {
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: update member %d age: %w", memberID, err)
	}
	return nil
}

// GetMember retrieves a single member by id.
func (s *Storage) GetMember(ctx context.Context, memberID int64) (*gym.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := &gym.Member{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, age FROM Members WHERE id = ?`, memberID,
	).Scan(&m.ID, &m.Name, &m.Age)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: get member %d: %w", memberID, gym.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get member %d: %w", memberID, classify(err))
	}
	return m, nil
}

// scanMembers is a shared helper that scans rows into []gym.Member.
func scanMembers(rows *sql.Rows) ([]gym.Member, error) {
	defer rows.Close()
	result := make([]gym.Member, 0)
	for rows.Next() {
		var m gym.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Age); err != nil {
			return nil, fmt.Errorf("storage: scan member row: %w", classify(err))
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: member rows: %w", classify(err))
	}
	return result, nil
}
