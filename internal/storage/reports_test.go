package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyuha/gymtrack/internal/gym"
)

func TestMembersInAgeRange(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	mustAddMember(t, s, 1, "Alice", 30)
	mustAddMember(t, s, 2, "Bob", 25)
	mustAddMember(t, s, 3, "Carol", 41)
	mustAddMember(t, s, 4, "Dan", 25)

	got, err := s.MembersInAgeRange(ctx, 25, 30)
	require.NoError(t, err)
	assert.Equal(t, []gym.Member{
		{ID: 2, Name: "Bob", Age: 25},
		{ID: 4, Name: "Dan", Age: 25},
		{ID: 1, Name: "Alice", Age: 30},
	}, got)
}

func TestMembersInAgeRangeReversedBoundsIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	mustAddMember(t, s, 1, "Alice", 30)

	for _, r := range [][2]int{{31, 29}, {30, 29}, {100, 0}} {
		got, err := s.MembersInAgeRange(ctx, r[0], r[1])
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got, "range %v", r)
	}
}

func TestWorkoutStatisticsSingleMember(t *testing.T) {
	s := newTestStorage(t)
	mustAddMember(t, s, 1, "Alice", 30)
	mustAddSession(t, s, 1, "2024-05-10", 45, 400)

	got, err := s.WorkoutStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	st := got[0]
	assert.Equal(t, int64(1), st.MemberID)
	assert.Equal(t, "Alice", st.Name)
	assert.Equal(t, int64(1), st.TotalSessions)
	require.NotNil(t, st.AvgDurationMinutes)
	assert.Equal(t, 45.0, *st.AvgDurationMinutes)
	require.NotNil(t, st.TotalCalories)
	assert.Equal(t, int64(400), *st.TotalCalories)
	require.NotNil(t, st.AvgCaloriesPerSession)
	assert.Equal(t, 400.0, *st.AvgCaloriesPerSession)
}

func TestWorkoutStatisticsIncludesIdleMembers(t *testing.T) {
	s := newTestStorage(t)
	mustAddMember(t, s, 1, "Alice", 30)
	mustAddMember(t, s, 2, "Bob", 25)
	mustAddMember(t, s, 3, "Carol", 41)
	mustAddSession(t, s, 2, "2024-05-10", 30, 300)
	mustAddSession(t, s, 2, "2024-05-11", 40, 350)
	mustAddSession(t, s, 2, "2024-05-12", 20, 101)
	mustAddSession(t, s, 3, "2024-05-12", 60, 500)

	got, err := s.WorkoutStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, int64(2), got[0].MemberID)
	assert.Equal(t, int64(3), got[0].TotalSessions)
	assert.Equal(t, 30.0, *got[0].AvgDurationMinutes)
	assert.Equal(t, int64(751), *got[0].TotalCalories)
	assert.InDelta(t, 250.33, *got[0].AvgCaloriesPerSession, 1e-9)

	assert.Equal(t, int64(3), got[1].MemberID)
	assert.Equal(t, int64(1), got[1].TotalSessions)

	idle := got[2]
	assert.Equal(t, int64(1), idle.MemberID)
	assert.Equal(t, int64(0), idle.TotalSessions)
	assert.Nil(t, idle.AvgDurationMinutes)
	assert.Nil(t, idle.TotalCalories)
	assert.Nil(t, idle.AvgCaloriesPerSession)
}

func TestWorkoutStatisticsEmptyStore(t *testing.T) {
	s := newTestStorage(t)
	got, err := s.WorkoutStatistics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMonthlyActivitySummaryGroupsByDay(t *testing.T) {
	s := newTestStorage(t)
	mustAddMember(t, s, 1, "Alice", 30)
	mustAddMember(t, s, 2, "Bob", 25)
	mustAddSession(t, s, 1, "2024-05-10", 45, 400)
	mustAddSession(t, s, 2, "2024-05-10", 30, 250)
	mustAddSession(t, s, 1, "2024-05-02", 20, 100)
	mustAddSession(t, s, 1, "2024-06-01", 60, 600)
	mustAddSession(t, s, 1, "2023-05-10", 60, 600)

	got, err := s.MonthlyActivitySummary(context.Background(), 2024, 5)
	require.NoError(t, err)
	assert.Equal(t, []gym.DailyActivity{
		{Date: "2024-05-02", SessionCount: 1, AvgDurationMinutes: 20, TotalCalories: 100},
		{Date: "2024-05-10", SessionCount: 2, AvgDurationMinutes: 37.5, TotalCalories: 650},
	}, got)
}

func TestMonthlyActivitySummaryMatchesByPrefix(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	mustAddMember(t, s, 1, "Alice", 30)
	mustAddSession(t, s, 1, "2024-05-10", 45, 400)

	// Written around the validating path; the report still picks it up.
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO WorkoutSessions (member_id, date, duration_minutes, calories_burned)
		 VALUES (1, '2024-05-xx', 15, 90)`)
	require.NoError(t, err)

	got, err := s.MonthlyActivitySummary(ctx, 2024, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-05-10", got[0].Date)
	assert.Equal(t, "2024-05-xx", got[1].Date)
}

func TestMonthlyActivitySummaryRejectsBadMonth(t *testing.T) {
	s := newTestStorage(t)
	for _, month := range []int{0, 13, -1} {
		got, err := s.MonthlyActivitySummary(context.Background(), 2024, month)
		require.ErrorIs(t, err, gym.ErrInvalidFormat)
		assert.Nil(t, got)
	}
}

func TestMonthlyActivitySummaryNoData(t *testing.T) {
	s := newTestStorage(t)
	got, err := s.MonthlyActivitySummary(context.Background(), 2024, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}
