package repository

import (
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/storage"
)

// NewCommentRepo creates a new comment repository
func NewCommentRepo(coll storage.Collection[models.Comment]) CommentRepository {
	return &collectionRepo[models.Comment]{coll: coll}
}
