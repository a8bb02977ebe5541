package models

// User represents a user record. Users carry no generated identity.
type User struct {
	Name     string `json:"name" form:"name"`
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
}
