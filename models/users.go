package models

// User represents an account in the system.
type User struct {
	UserID  int64   `json:"userId" db:"user_id"`
	Name    string  `json:"name" db:"name"`
	Email   string  `json:"email" db:"email"`
	Phone   string  `json:"phone" db:"phone"`
	Photo   string  `json:"photo" db:"photo"`
	Balance float64 `json:"balance" db:"balance"`
}

// UserWithGroups is a read-only snapshot of a user and every group the user
// belonged to when it was loaded. It is never persisted.
type UserWithGroups struct {
	User   User    `json:"user"`
	Groups []Group `json:"groups"`
}

// UsersResponse holds a list of users.
type UsersResponse struct {
	Users []User `json:"users"`
}
