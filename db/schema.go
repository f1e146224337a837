// Package db embeds the SQL schema applied by the storage layer.
package db

import _ "embed"

// SchemaSQL is the base schema for the Members and WorkoutSessions tables.
//
//go:embed schema.sql
var SchemaSQL string
