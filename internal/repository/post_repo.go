package repository

import (
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/storage"
)

// NewPostRepo creates a new post repository
func NewPostRepo(coll storage.Collection[models.Post]) PostRepository {
	return &collectionRepo[models.Post]{coll: coll}
}
