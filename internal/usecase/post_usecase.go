package usecase

import (
	"context"

	"scribe/internal/domain/entity"
)

// AddPostInput defines the data required to create a post. Subject is
// the token subject (email) resolved by the authentication middleware.
type AddPostInput struct {
	Subject string
	Text    string
}

// ListPostsInput defines the data required to list the caller's posts.
type ListPostsInput struct {
	Subject string
}

// DeletePostInput defines the data required to delete a post by ID.
type DeletePostInput struct {
	Subject string
	PostID  int64
}

// PostUsecase defines the interface for post-related business operations.
// Every operation resolves the caller's identity from the token subject
// first; posts are only ever visible to, and deletable by, their owner.
type PostUsecase interface {
	// AddPost creates a post owned by the resolved caller and returns it
	// with its generated ID.
	AddPost(ctx context.Context, input *AddPostInput) (*entity.Post, error)

	// ListPosts returns the resolved caller's posts in insertion order.
	ListPosts(ctx context.Context, input *ListPostsInput) ([]*entity.Post, error)

	// DeletePost deletes the identified post after an ownership check.
	DeletePost(ctx context.Context, input *DeletePostInput) error
}
