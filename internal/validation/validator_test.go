package validation

import (
	"testing"

	"github.com/resource-crud-api/internal/models"
)

func fieldsOf(errs []ValidationError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		wantFields []string
	}{
		{
			name:       "valid user with all fields",
			user:       &models.User{Name: "Alice", Username: "alice", Email: "alice@example.com"},
			wantFields: []string{},
		},
		{
			name:       "missing email",
			user:       &models.User{Name: "Alice", Username: "alice"},
			wantFields: []string{"email"},
		},
		{
			name:       "empty record",
			user:       &models.User{},
			wantFields: []string{"name", "username", "email"},
		},
		{
			name:       "whitespace is not empty",
			user:       &models.User{Name: " ", Username: "alice", Email: "a@b.c"},
			wantFields: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldsOf(ValidateUser(tt.user))
			if len(got) != len(tt.wantFields) {
				t.Fatalf("Expected fields %v, got %v", tt.wantFields, got)
			}
			for i := range got {
				if got[i] != tt.wantFields[i] {
					t.Errorf("Expected field %s at %d, got %s", tt.wantFields[i], i, got[i])
				}
			}
		})
	}
}

func TestValidatePost(t *testing.T) {
	errs := ValidatePost(&models.Post{UserID: "1", Title: "Hello"})
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errs))
	}
	if errs[0].Field != "content" {
		t.Errorf("Expected content error, got %s", errs[0].Field)
	}
	if errs[0].Message != "content is required" {
		t.Errorf("Unexpected message: %s", errs[0].Message)
	}

	if errs := ValidatePost(&models.Post{UserID: "1", Title: "Hello", Content: "World"}); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name       string
		comment    *models.CommentInput
		wantErrors int
	}{
		{name: "valid", comment: &models.CommentInput{Name: "Alice", Comment: "Hi"}, wantErrors: 0},
		{name: "missing comment", comment: &models.CommentInput{Name: "Bob"}, wantErrors: 1},
		{name: "missing name", comment: &models.CommentInput{Comment: "Hi"}, wantErrors: 1},
		{name: "missing both", comment: &models.CommentInput{}, wantErrors: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(ValidateComment(tt.comment)); got != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d", tt.wantErrors, got)
			}
		})
	}
}
