package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/resource-crud-api/internal/config"
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/storage"
	"github.com/resource-crud-api/internal/storage/file"
	"github.com/resource-crud-api/internal/storage/memory"
	"github.com/rs/zerolog"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.User) error) error
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context) ([]models.Post, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Post) error) error
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	List(ctx context.Context) ([]models.Comment, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Comment) error) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository

	closers []func() error
}

// New creates all repositories on the configured storage backend
func New(cfg config.StorageConfig, log zerolog.Logger) (*Repositories, error) {
	switch cfg.Driver {
	case config.StorageMemory, "":
		return NewMemory(), nil
	case config.StorageFile:
		return newFile(cfg.Dir, log)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

// NewMemory creates repositories backed by empty in-memory collections
func NewMemory() *Repositories {
	users := memory.New[models.User]()
	posts := memory.New[models.Post]()
	comments := memory.New[models.Comment]()

	return &Repositories{
		User:    NewUserRepo(users),
		Post:    NewPostRepo(posts),
		Comment: NewCommentRepo(comments),
		closers: []func() error{users.Close, posts.Close, comments.Close},
	}
}

func newFile(dir string, log zerolog.Logger) (*Repositories, error) {
	users, err := file.Open[models.User](dir, models.ResourceUsers, log)
	if err != nil {
		return nil, err
	}
	posts, err := file.Open[models.Post](dir, models.ResourcePosts, log)
	if err != nil {
		return nil, err
	}
	comments, err := file.Open[models.Comment](dir, models.ResourceComments, log)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		User:    NewUserRepo(users),
		Post:    NewPostRepo(posts),
		Comment: NewCommentRepo(comments),
		closers: []func() error{users.Close, posts.Close, comments.Close},
	}, nil
}

// Close releases every backing collection
func (r *Repositories) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// collectionRepo implements the per-resource repositories over a collection
type collectionRepo[T any] struct {
	coll storage.Collection[T]
}

// Create appends a copy of record
func (r *collectionRepo[T]) Create(ctx context.Context, record *T) error {
	return r.coll.Append(ctx, *record)
}

// List returns every record in insertion order
func (r *collectionRepo[T]) List(ctx context.Context) ([]T, error) {
	return r.coll.List(ctx)
}

// Count returns the total number of records
func (r *collectionRepo[T]) Count(ctx context.Context) (int, error) {
	return r.coll.Len(ctx)
}

// StreamAll calls callback for each record in insertion order, stopping at
// the first error
func (r *collectionRepo[T]) StreamAll(ctx context.Context, callback func(*T) error) error {
	records, err := r.coll.List(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(&records[i]); err != nil {
			return err
		}
	}
	return nil
}
