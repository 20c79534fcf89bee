package model

import "time"

// PostModel mirrors the 'posts' table. UserID references users.id.
type PostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Text      string `gorm:"type:text;not null"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
