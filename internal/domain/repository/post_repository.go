package repository

import (
	"context"
	"errors"

	"scribe/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// FindByUserID retrieves all posts owned by the given user, in insertion order.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Delete removes the post with the given ID from the storage.
	Delete(ctx context.Context, id int64) error
}
