package models

import "time"

// JourneyProgress is the database representation of one completed (or
// annotated) day of the 30-day journey. The task content itself is static.
type JourneyProgress struct {
	UserID      string     `db:"user_id"`
	Day         int        `db:"day"`
	Completed   bool       `db:"completed"`
	Note        string     `db:"note"`
	CompletedAt *time.Time `db:"completed_at"`
}
