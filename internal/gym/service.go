package gym

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vyuha/gymtrack/internal/observability"
	"github.com/vyuha/gymtrack/internal/report"
)

// Store is the persistence contract the Service drives. storage.Storage is
// the production implementation.
type Store interface {
	Init(ctx context.Context) error
	AddMember(ctx context.Context, m Member) error
	AddWorkoutSession(ctx context.Context, ws WorkoutSession) (int64, error)
	UpdateMemberAge(ctx context.Context, memberID int64, age int) error
	DeleteWorkoutSession(ctx context.Context, sessionID int64) error
	GetMember(ctx context.Context, memberID int64) (*Member, error)
	ListSessions(ctx context.Context, memberID int64) ([]WorkoutSession, error)
	MembersInAgeRange(ctx context.Context, start, end int) ([]Member, error)
	WorkoutStatistics(ctx context.Context) ([]MemberWorkoutStats, error)
	MonthlyActivitySummary(ctx context.Context, year, month int) ([]DailyActivity, error)
}

// Service is the operation boundary. Every failure is logged with a readable
// message and counted; the caller gets an empty result and the error, and
// the store is left unchanged.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService wraps store. A nil logger falls back to slog.Default().
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// finish records the outcome of op and logs failures.
func (s *Service) finish(op string, started time.Time, err error, attrs ...any) {
	code := Code(err)
	observability.RecordOperation(op, code, started)
	if err == nil {
		return
	}
	attrs = append(attrs, "operation", op, "code", code, "error", err)
	if code == "STORE_ERROR" {
		s.logger.Error(Describe(err), attrs...)
		return
	}
	s.logger.Warn(Describe(err), attrs...)
}

// ============================== MUTATIONS =================================

// Init ensures the store schema exists.
func (s *Service) Init(ctx context.Context) (err error) {
	defer func(start time.Time) { s.finish("init_store", start, err) }(time.Now())
	if err = s.store.Init(ctx); err != nil {
		return err
	}
	s.logger.Info("database setup completed")
	return nil
}

// AddMember registers a new member under a caller-assigned id.
func (s *Service) AddMember(ctx context.Context, id int64, name string, age int) (err error) {
	defer func(start time.Time) { s.finish("add_member", start, err, "member_id", id) }(time.Now())
	if err = s.store.AddMember(ctx, Member{ID: id, Name: name, Age: age}); err != nil {
		return err
	}
	s.logger.Info("member added", "member_id", id, "name", name)
	return nil
}

// AddWorkoutSession records a workout and returns the new session id.
func (s *Service) AddWorkoutSession(ctx context.Context, memberID int64, date string, durationMinutes, caloriesBurned int) (id int64, err error) {
	defer func(start time.Time) {
		s.finish("add_workout_session", start, err, "member_id", memberID, "date", date)
	}(time.Now())

	id, err = s.store.AddWorkoutSession(ctx, WorkoutSession{
		MemberID:        memberID,
		Date:            date,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("workout session added", "session_id", id, "member_id", memberID)
	return id, nil
}

// UpdateMemberAge overwrites a member's age.
func (s *Service) UpdateMemberAge(ctx context.Context, memberID int64, age int) (err error) {
	defer func(start time.Time) { s.finish("update_member_age", start, err, "member_id", memberID) }(time.Now())
	if err = s.store.UpdateMemberAge(ctx, memberID, age); err != nil {
		return err
	}
	s.logger.Info("member age updated", "member_id", memberID, "age", age)
	return nil
}

// DeleteWorkoutSession removes one session.
func (s *Service) DeleteWorkoutSession(ctx context.Context, sessionID int64) (err error) {
	defer func(start time.Time) { s.finish("delete_workout_session", start, err, "session_id", sessionID) }(time.Now())
	if err = s.store.DeleteWorkoutSession(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("workout session deleted", "session_id", sessionID)
	return nil
}

// ================================ READS ===================================

// GetMember looks up one member.
func (s *Service) GetMember(ctx context.Context, memberID int64) (m *Member, err error) {
	defer func(start time.Time) { s.finish("get_member", start, err, "member_id", memberID) }(time.Now())
	return s.store.GetMember(ctx, memberID)
}

// ListSessions returns a member's sessions as a table.
func (s *Service) ListSessions(ctx context.Context, memberID int64) (t report.Table, err error) {
	defer func(start time.Time) { s.finish("list_sessions", start, err, "member_id", memberID) }(time.Now())

	title := fmt.Sprintf("Workout Sessions for Member %d", memberID)
	rows, err := s.store.ListSessions(ctx, memberID)
	if err != nil {
		return report.New[WorkoutSession](title, SessionHeaders, nil), err
	}
	return report.New(title, SessionHeaders, rows), nil
}

// MembersInAgeRange reports members aged start..end inclusive.
func (s *Service) MembersInAgeRange(ctx context.Context, start, end int) (t report.Table, err error) {
	defer func(begin time.Time) {
		s.finish("members_in_age_range", begin, err, "start_age", start, "end_age", end)
	}(time.Now())

	title := fmt.Sprintf("Members between ages %d and %d", start, end)
	rows, err := s.store.MembersInAgeRange(ctx, start, end)
	if err != nil {
		return report.New[Member](title, MemberHeaders, nil), err
	}
	return report.New(title, MemberHeaders, rows), nil
}

// WorkoutStatistics reports per-member session aggregates.
func (s *Service) WorkoutStatistics(ctx context.Context) (t report.Table, err error) {
	defer func(start time.Time) { s.finish("workout_statistics", start, err) }(time.Now())

	const title = "Workout Statistics per Member"
	rows, err := s.store.WorkoutStatistics(ctx)
	if err != nil {
		return report.New[MemberWorkoutStats](title, WorkoutStatsHeaders, nil), err
	}
	return report.New(title, WorkoutStatsHeaders, rows), nil
}

// MonthlyActivitySummary reports per-day activity for one month.
func (s *Service) MonthlyActivitySummary(ctx context.Context, year, month int) (t report.Table, err error) {
	defer func(start time.Time) {
		s.finish("monthly_activity_summary", start, err, "year", year, "month", month)
	}(time.Now())

	title := fmt.Sprintf("Activity Summary for %d-%02d", year, month)
	if month >= 1 && month <= 12 {
		title = "Activity Summary for " + MonthTitle(year, month)
	}
	rows, err := s.store.MonthlyActivitySummary(ctx, year, month)
	if err != nil {
		return report.New[DailyActivity](title, DailyActivityHeaders, nil), err
	}
	return report.New(title, DailyActivityHeaders, rows), nil
}
