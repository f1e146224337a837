package storage

import (
	"github.com/vyuha/gymtrack/db"
)

// ---------------------------------------------------------------------------
// Schema version
// ---------------------------------------------------------------------------

// SchemaVersion is the current database schema version.
const SchemaVersion = 2

// GetSchema returns the base SQL schema as a string.
func GetSchema() string {
	return db.SchemaSQL
}

// ---------------------------------------------------------------------------
// Migration support
// ---------------------------------------------------------------------------

// Migration describes a single schema migration. Migrations are ordered by
// Version and every statement is idempotent, so a store created by an older
// tool without schema_migrations upgrades cleanly.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// Migrations is the ordered list of all schema migrations.
var Migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema — Members, WorkoutSessions",
		SQL:         db.SchemaSQL,
	},
	{
		Version:     2,
		Description: "Index WorkoutSessions by member_id and date for the report queries",
		SQL: `
CREATE INDEX IF NOT EXISTS idx_sessions_member ON WorkoutSessions(member_id);
CREATE INDEX IF NOT EXISTS idx_sessions_date   ON WorkoutSessions(date);
`,
	},
}
