package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/service"
	"github.com/rs/zerolog"
)

// UserHandler handles /api/users
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", models.ResourceUsers).Logger(),
	}
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.services.User.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var input models.User
	if err := c.ShouldBind(&input); err != nil {
		h.log.Debug().Err(err).Msg("Unreadable user body")
		input = models.User{}
	}

	user, err := h.services.User.Create(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// PostHandler handles /api/posts
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", models.ResourcePosts).Logger(),
	}
}

// List handles GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.services.Post.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Create handles POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var input models.Post
	if err := c.ShouldBind(&input); err != nil {
		h.log.Debug().Err(err).Msg("Unreadable post body")
		input = models.Post{}
	}

	post, err := h.services.Post.Create(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// CommentHandler handles /api/comments
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", models.ResourceComments).Logger(),
	}
}

// List handles GET /api/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.services.Comment.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var input models.CommentInput
	if err := c.ShouldBind(&input); err != nil {
		h.log.Debug().Err(err).Msg("Unreadable comment body")
		input = models.CommentInput{}
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
