package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. Rows are append-only
// except for the read flag; the retention sweeper deletes read rows once
// read_at falls out of the retention window.
type NotificationModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1"`
	Type       string     `gorm:"type:varchar(32);not null"`
	ActivityID *uuid.UUID `gorm:"type:uuid"`
	FollowerID *uuid.UUID `gorm:"type:uuid"`
	Message    string     `gorm:"type:text;not null"`
	Read       bool       `gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	ReadAt     *time.Time `gorm:"index"`
	CreatedAt  time.Time  `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
