package schema

// UserTable represents the 'strongly_users' table
type UserTable struct {
	Table        string
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	CreatedAt    string
}

// User is the schema definition for strongly_users
var User = UserTable{
	Table:        "strongly_users",
	ID:           "id",
	Username:     "username",
	PasswordHash: "password",
	FullName:     "full_name",
	CreatedAt:    "date_created",
}

// Columns returns all standard column names
func (t UserTable) Columns() []string {
	return []string{t.ID, t.Username, t.PasswordHash, t.FullName, t.CreatedAt}
}
