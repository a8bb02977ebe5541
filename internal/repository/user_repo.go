package repository

import (
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/storage"
)

// NewUserRepo creates a new user repository
func NewUserRepo(coll storage.Collection[models.User]) UserRepository {
	return &collectionRepo[models.User]{coll: coll}
}
