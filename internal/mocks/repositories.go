package mocks

import (
	"context"
	"sync"

	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/repository"
)

// MockRepository is an in-memory repository with error injection
type MockRepository[T any] struct {
	Records     []T
	InsertError error
	ListError   error
	CountError  error
	CreateCalls int

	mu sync.Mutex
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository = MockRepository[models.User]

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository = MockRepository[models.Post]

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository = MockRepository[models.Comment]

// Verify interface compliance
var (
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.PostRepository    = (*MockPostRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Records: make([]models.User, 0)}
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{Records: make([]models.Post, 0)}
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Records: make([]models.Comment, 0)}
}

// NewRepositories bundles fresh mock repositories
func NewRepositories() (*repository.Repositories, *MockUserRepository, *MockPostRepository, *MockCommentRepository) {
	users := NewMockUserRepository()
	posts := NewMockPostRepository()
	comments := NewMockCommentRepository()
	return &repository.Repositories{User: users, Post: posts, Comment: comments}, users, posts, comments
}

func (m *MockRepository[T]) Create(ctx context.Context, record *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Records = append(m.Records, *record)
	return nil
}

func (m *MockRepository[T]) List(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]T, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

func (m *MockRepository[T]) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CountError != nil {
		return 0, m.CountError
	}
	return len(m.Records), nil
}

func (m *MockRepository[T]) StreamAll(ctx context.Context, callback func(*T) error) error {
	records, err := m.List(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if err := callback(&records[i]); err != nil {
			return err
		}
	}
	return nil
}
