package schema

import "strings"

// List joins column names for a SELECT or RETURNING clause.
func List(columns []string) string {
	return strings.Join(columns, ", ")
}
