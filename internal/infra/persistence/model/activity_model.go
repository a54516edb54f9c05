package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table.
type ActivityModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text"`
	LocationName    string    `gorm:"type:varchar(255)"`
	Longitude       float64   `gorm:"type:decimal(11,8);not null"`
	Latitude        float64   `gorm:"type:decimal(10,8);not null"`
	StartsAt        time.Time `gorm:"not null;index"`
	EndsAt          time.Time `gorm:"not null"`
	MaxParticipants int       `gorm:"not null;default:0"`
	ContactInfo     string    `gorm:"type:varchar(255)"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(16);not null;default:'active';index"`
	CancelledAt     *time.Time
	ExpiresAt       time.Time `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Creator      *UserModel                 `gorm:"foreignKey:CreatedBy"`
	Participants []ActivityParticipantModel `gorm:"foreignKey:ActivityID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// ActivityParticipantModel mirrors the 'activity_participants' join table.
// The composite primary key doubles as the no-duplicate-membership constraint.
type ActivityParticipantModel struct {
	ActivityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	JoinedAt   time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityParticipantModel) TableName() string {
	return "activity_participants"
}
