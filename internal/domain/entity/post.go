package entity

import "time"

// Post is a short text entry owned by exactly one user. Posts are
// created, listed and deleted but never updated.
type Post struct {
	ID        int64     // Storage-generated numeric identifier.
	Text      string    // Free-text body of the post.
	UserID    int64     // Foreign Key referencing the owning User.
	CreatedAt time.Time // Timestamp of when this post was created.
}
