package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyuha/gymtrack/internal/gym"
)

// ========================== REPORT QUERIES ================================
//
// Every query here is a pure read taken under the read lock. Results are
// always non-nil slices so an empty report is distinguishable from a failure
// only by the error.

// MembersInAgeRange returns members whose age lies in [start, end], youngest
// first. start > end is not an error and yields no rows.
func (s *Storage) MembersInAgeRange(ctx context.Context, start, end int) ([]gym.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	const q = `SELECT id, name, age
		FROM Members
		WHERE age BETWEEN ? AND ?
		ORDER BY age ASC, id ASC`
	rows, err := s.db.QueryContext(ctx, q, start, end)
	if err != nil {
		return nil, fmt.Errorf("storage: members in age range [%d, %d]: %w", start, end, classify(err))
	}
	return scanMembers(rows)
}

// WorkoutStatistics returns one row per member with session count, average
// duration, total calories and average calories per session. Members with
// no sessions are included with a zero count and nil aggregates. Rows are
// ordered by session count descending, then member id.
func (s *Storage) WorkoutStatistics(ctx context.Context) ([]gym.MemberWorkoutStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	const q = `SELECT
			m.id,
			m.name,
			COUNT(w.id)                       AS total_sessions,
			ROUND(AVG(w.duration_minutes), 2) AS avg_duration,
			SUM(w.calories_burned)            AS total_calories,
			ROUND(AVG(w.calories_burned), 2)  AS avg_calories_per_session
		FROM Members m
		LEFT JOIN WorkoutSessions w ON m.id = w.member_id
		GROUP BY m.id, m.name
		ORDER BY total_sessions DESC, m.id ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("storage: workout statistics: %w", classify(err))
	}
	defer rows.Close()

	result := make([]gym.MemberWorkoutStats, 0)
	for rows.Next() {
		var (
			st          gym.MemberWorkoutStats
			avgDuration sql.NullFloat64
			totalCal    sql.NullInt64
			avgCal      sql.NullFloat64
		)
		if err := rows.Scan(&st.MemberID, &st.Name, &st.TotalSessions, &avgDuration, &totalCal, &avgCal); err != nil {
			return nil, fmt.Errorf("storage: scan workout statistics row: %w", classify(err))
		}
		if avgDuration.Valid {
			st.AvgDurationMinutes = &avgDuration.Float64
		}
		if totalCal.Valid {
			st.TotalCalories = &totalCal.Int64
		}
		if avgCal.Valid {
			st.AvgCaloriesPerSession = &avgCal.Float64
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: workout statistics rows: %w", classify(err))
	}
	return result, nil
}

// MonthlyActivitySummary groups the sessions of one month by date. Dates are
// matched by the "YYYY-MM-" prefix, so any stored string with that prefix
// lands in the report.
func (s *Storage) MonthlyActivitySummary(ctx context.Context, year, month int) ([]gym.DailyActivity, error) {
	pattern, err := gym.MonthPattern(year, month)
	if err != nil {
		return nil, fmt.Errorf("storage: monthly activity summary: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	const q = `SELECT
			date,
			COUNT(id)                       AS session_count,
			ROUND(AVG(duration_minutes), 2) AS avg_duration,
			SUM(calories_burned)            AS total_calories
		FROM WorkoutSessions
		WHERE date LIKE ?
		GROUP BY date
		ORDER BY date ASC`

	rows, err := s.db.QueryContext(ctx, q, pattern)
	if err != nil {
		return nil, fmt.Errorf("storage: monthly activity summary %d-%02d: %w", year, month, classify(err))
	}
	defer rows.Close()

	result := make([]gym.DailyActivity, 0)
	for rows.Next() {
		var d gym.DailyActivity
		if err := rows.Scan(&d.Date, &d.SessionCount, &d.AvgDurationMinutes, &d.TotalCalories); err != nil {
			return nil, fmt.Errorf("storage: scan daily activity row: %w", classify(err))
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: daily activity rows: %w", classify(err))
	}
	return result, nil
}
