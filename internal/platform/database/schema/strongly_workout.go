package schema

// WorkoutTable represents the 'strongly_workouts' table
type WorkoutTable struct {
	Table     string
	DBID      string // internal sequence, never serialised
	ID        string
	Title     string
	CreatedAt string
	UserID    string
}

// Workout is the schema definition for strongly_workouts
var Workout = WorkoutTable{
	Table:     "strongly_workouts",
	DBID:      "db_id",
	ID:        "id",
	Title:     "title",
	CreatedAt: "createddate",
	UserID:    "user_id",
}

// Columns returns the columns read back into a workout row.
func (t WorkoutTable) Columns() []string {
	return []string{t.ID, t.Title, t.CreatedAt, t.UserID}
}
