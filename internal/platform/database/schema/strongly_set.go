package schema

// SetTable represents the 'strongly_sets' table
type SetTable struct {
	Table      string
	DBID       string
	ID         string
	SetNumber  string
	Reps       string
	Weight     string
	ExerciseID string
	WorkoutID  string
	UserID     string
	CreatedAt  string
}

// Set is the schema definition for strongly_sets
var Set = SetTable{
	Table:      "strongly_sets",
	DBID:       "db_id",
	ID:         "id",
	SetNumber:  "set_number",
	Reps:       "reps",
	Weight:     "weight",
	ExerciseID: "exercise_id",
	WorkoutID:  "workout_id",
	UserID:     "user_id",
	CreatedAt:  "createddate",
}

// Columns returns the columns read back into a set row.
func (t SetTable) Columns() []string {
	return []string{t.ID, t.SetNumber, t.Reps, t.Weight, t.ExerciseID, t.WorkoutID, t.UserID, t.CreatedAt}
}
