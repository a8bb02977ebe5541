package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/resource-crud-api/internal/httperr"
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/repository"
	"github.com/resource-crud-api/internal/validation"
	"github.com/rs/zerolog"
)

// userService is the concrete implementation of UserService
type userService struct {
	repo repository.UserRepository
	log  zerolog.Logger
}

func newUserService(repo repository.UserRepository, log zerolog.Logger) *userService {
	return &userService{
		repo: repo,
		log:  log.With().Str("service", models.ResourceUsers).Logger(),
	}
}

// List returns all users in insertion order
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Create validates and appends a user
func (s *userService) Create(ctx context.Context, input *models.User) (*models.User, error) {
	if errs := validation.ValidateUser(input); len(errs) > 0 {
		s.log.Debug().Interface("errors", errs).Msg("User rejected")
		return nil, httperr.New(http.StatusBadRequest, validation.UserFieldsRequired)
	}

	user := *input
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("User created")
	return &user, nil
}

// postService is the concrete implementation of PostService
type postService struct {
	repo repository.PostRepository
	log  zerolog.Logger
}

func newPostService(repo repository.PostRepository, log zerolog.Logger) *postService {
	return &postService{
		repo: repo,
		log:  log.With().Str("service", models.ResourcePosts).Logger(),
	}
}

// List returns all posts in insertion order
func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// Create validates and appends a post
func (s *postService) Create(ctx context.Context, input *models.Post) (*models.Post, error) {
	if errs := validation.ValidatePost(input); len(errs) > 0 {
		s.log.Debug().Interface("errors", errs).Msg("Post rejected")
		return nil, httperr.New(http.StatusBadRequest, validation.PostFieldsRequired)
	}

	post := *input
	if err := s.repo.Create(ctx, &post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.log.Info().Str("user_id", post.UserID).Msg("Post created")
	return &post, nil
}

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo repository.CommentRepository
	now  func() time.Time
	log  zerolog.Logger
}

func newCommentService(repo repository.CommentRepository, now func() time.Time, log zerolog.Logger) *commentService {
	return &commentService{
		repo: repo,
		now:  now,
		log:  log.With().Str("service", models.ResourceComments).Logger(),
	}
}

// List returns all comments in insertion order
func (s *commentService) List(ctx context.Context) ([]models.Comment, error) {
	comments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Create validates the input, stamps the server date and appends the comment
func (s *commentService) Create(ctx context.Context, input *models.CommentInput) (*models.Comment, error) {
	if errs := validation.ValidateComment(input); len(errs) > 0 {
		s.log.Debug().Interface("errors", errs).Msg("Comment rejected")
		return nil, httperr.New(http.StatusBadRequest, validation.CommentFieldsRequired)
	}

	comment := models.Comment{
		Name:    input.Name,
		Comment: input.Comment,
		Date:    s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Create(ctx, &comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.log.Info().Str("name", comment.Name).Time("date", comment.Date).Msg("Comment created")
	return &comment, nil
}
