package schema

// ExerciseTable represents the 'strongly_exercises' table
type ExerciseTable struct {
	Table     string
	DBID      string
	ID        string
	Title     string
	WorkoutID string
	UserID    string
	CreatedAt string
}

// Exercise is the schema definition for strongly_exercises
var Exercise = ExerciseTable{
	Table:     "strongly_exercises",
	DBID:      "db_id",
	ID:        "id",
	Title:     "title",
	WorkoutID: "workout_id",
	UserID:    "user_id",
	CreatedAt: "createddate",
}

// Columns returns the columns read back into an exercise row.
func (t ExerciseTable) Columns() []string {
	return []string{t.ID, t.Title, t.WorkoutID, t.UserID, t.CreatedAt}
}
