package service

import (
	"context"
	"io"
	"time"

	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/repository"
	"github.com/rs/zerolog"
)

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, input *models.User) (*models.User, error)
}

// PostService defines the interface for post operations
type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, input *models.Post) (*models.Post, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	List(ctx context.Context) ([]models.Comment, error)
	Create(ctx context.Context, input *models.CommentInput) (*models.Comment, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	Stream(ctx context.Context, w io.Writer, resource, format string) error
	GetCount(ctx context.Context, resource string) (int, error)
}

// Services holds all service interfaces
type Services struct {
	User    UserService
	Post    PostService
	Comment CommentService
	Export  ExportService
}

// Option configures NewServices
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for server-assigned timestamps
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger, opts ...Option) *Services {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Services{
		User:    newUserService(repos.User, log),
		Post:    newPostService(repos.Post, log),
		Comment: newCommentService(repos.Comment, o.now, log),
		Export:  newExportService(repos, log),
	}
}
