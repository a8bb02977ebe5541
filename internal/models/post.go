package models

// Post represents a post record
type Post struct {
	UserID  string `json:"userId" form:"userId"`
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}
