// Package model holds the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are storage-generated bigint sequences.
// The unique index on email backs the signup Conflict semantics: the
// pre-check in the account service catches most duplicates, and the
// index converts the losing side of a concurrent race into the same
// conflict error.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Posts []PostModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
