// Package model holds the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. The unique index on Name is the
// arbiter for duplicate registrations.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:char(64);not null"`
	Salt         string `gorm:"type:varchar(64);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
