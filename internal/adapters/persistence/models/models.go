package models

import (
	"time"

	"gorm.io/gorm"
)

// UserDetail represents the user_details table. A row is created exactly
// once, by the final registration stage, and is immutable afterwards.
type UserDetail struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Mobile         string    `gorm:"uniqueIndex;size:10;not null" json:"mobile"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	HashedPassword string    `gorm:"column:hashed_password;size:64;not null" json:"-"`
	Email          string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PAN            string    `gorm:"column:pan;size:20;not null" json:"pan"`
	FathersName    string    `gorm:"size:100;not null" json:"fathers_name"`
	DOB            time.Time `gorm:"column:dob;type:date;not null" json:"dob"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserDetail) TableName() string {
	return "user_details"
}

// UserSession represents the user_sessions table, one row per login.
type UserSession struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            uint       `gorm:"index;not null" json:"user_id"`
	SessionExpiryDate time.Time  `gorm:"column:session_expiry_date;not null" json:"session_expiry_date"`
	IsSessionActive   bool       `gorm:"column:is_session_active;default:true" json:"is_session_active"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	User              UserDetail `gorm:"foreignKey:UserID" json:"-"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}

func (s *UserSession) IsExpired() bool {
	return time.Now().After(s.SessionExpiryDate)
}

// AutoMigrate creates tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserDetail{},
		&UserSession{},
	)
}
