package gym

// ---------------------------------------------------------------------------
// Entities
// ---------------------------------------------------------------------------

// Member is a gym participant. ID is assigned by the caller.
type Member struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// MemberHeaders is the column layout for member listings.
var MemberHeaders = []string{"Member ID", "Name", "Age"}

func (Member) Headers() []string { return MemberHeaders }

func (m Member) Values() []any { return []any{m.ID, m.Name, m.Age} }

// WorkoutSession is a single recorded workout owned by a Member. ID is
// assigned by the store on insert.
type WorkoutSession struct {
	ID              int64  `json:"id"`
	MemberID        int64  `json:"member_id"`
	Date            string `json:"date"` // YYYY-MM-DD
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
}

// SessionHeaders is the column layout for session listings.
var SessionHeaders = []string{"Session ID", "Member ID", "Date", "Duration (min)", "Calories"}

func (WorkoutSession) Headers() []string { return SessionHeaders }

func (s WorkoutSession) Values() []any {
	return []any{s.ID, s.MemberID, s.Date, s.DurationMinutes, s.CaloriesBurned}
}

// ---------------------------------------------------------------------------
// Report rows
// ---------------------------------------------------------------------------

// MemberWorkoutStats is one row of the per-member workout statistics report.
// The aggregate pointers are nil for members with no sessions.
type MemberWorkoutStats struct {
	MemberID              int64    `json:"member_id"`
	Name                  string   `json:"name"`
	TotalSessions         int64    `json:"total_sessions"`
	AvgDurationMinutes    *float64 `json:"avg_duration_minutes"`
	TotalCalories         *int64   `json:"total_calories"`
	AvgCaloriesPerSession *float64 `json:"avg_calories_per_session"`
}

// WorkoutStatsHeaders is the column layout for the workout statistics report.
var WorkoutStatsHeaders = []string{
	"Member ID", "Name", "Total Sessions", "Avg Duration (min)",
	"Total Calories", "Avg Calories/Session",
}

func (MemberWorkoutStats) Headers() []string { return WorkoutStatsHeaders }

func (s MemberWorkoutStats) Values() []any {
	return []any{
		s.MemberID, s.Name, s.TotalSessions,
		derefOrNil(s.AvgDurationMinutes), derefOrNil(s.TotalCalories),
		derefOrNil(s.AvgCaloriesPerSession),
	}
}

// DailyActivity is one row of the monthly activity summary.
type DailyActivity struct {
	Date               string  `json:"date"`
	SessionCount       int64   `json:"session_count"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes"`
	TotalCalories      int64   `json:"total_calories"`
}

// DailyActivityHeaders is the column layout for the monthly summary.
var DailyActivityHeaders = []string{"Date", "Sessions", "Avg Duration (min)", "Total Calories"}

func (DailyActivity) Headers() []string { return DailyActivityHeaders }

func (d DailyActivity) Values() []any {
	return []any{d.Date, d.SessionCount, d.AvgDurationMinutes, d.TotalCalories}
}

// derefOrNil keeps absent aggregates as untyped nil in row tuples.
func derefOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
