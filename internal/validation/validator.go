package validation

import (
	"github.com/resource-crud-api/internal/models"
)

// Messages returned to clients when a create request is missing fields
const (
	UserFieldsRequired    = "Name, username, and email are required."
	PostFieldsRequired    = "User ID, title, and content are required."
	CommentFieldsRequired = "Name and comment are required."
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// field pairs a field name with its submitted value
type field struct {
	name  string
	value string
}

// ValidateUser validates a user record
func ValidateUser(user *models.User) []ValidationError {
	return required(
		field{"name", user.Name},
		field{"username", user.Username},
		field{"email", user.Email},
	)
}

// ValidatePost validates a post record
func ValidatePost(post *models.Post) []ValidationError {
	return required(
		field{"userId", post.UserID},
		field{"title", post.Title},
		field{"content", post.Content},
	)
}

// ValidateComment validates the client-supplied part of a comment
func ValidateComment(comment *models.CommentInput) []ValidationError {
	return required(
		field{"name", comment.Name},
		field{"comment", comment.Comment},
	)
}

// required reports every empty field, in argument order
func required(fields ...field) []ValidationError {
	var errors []ValidationError
	for _, f := range fields {
		if f.value == "" {
			errors = append(errors, ValidationError{Field: f.name, Message: f.name + " is required"})
		}
	}
	return errors
}
