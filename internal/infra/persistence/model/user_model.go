// Package model holds the GORM persistence models. They mirror the tables
// created by the migrations package and never leave the infra layer.
package model

import "time"

// UserModel mirrors the 'users' table. PostgreSQL assigns the ID from a bigserial.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:varchar(20);uniqueIndex:users_username_key;not null"`
	PasswordHash string  `gorm:"type:text;not null"`
	Email        *string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
