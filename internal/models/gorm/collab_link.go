package gorm

import (
	"time"

	"breate/backend/internal/constants"
)

// CollabLink records a mutually-confirmable pairing between two users.
// At most one link may exist per unordered username pair.
type CollabLink struct {
	ID            uint    `gorm:"column:id;primaryKey"`
	UserAUsername string  `gorm:"column:user_a_username;not null;index"`
	UserBUsername string  `gorm:"column:user_b_username;not null;index"`
	ProjectName   *string `gorm:"column:project_name"`

	Status constants.CollabStatus `gorm:"column:status;default:pending"`

	UserAConfirmed bool `gorm:"column:user_a_confirmed;default:false"`
	UserBConfirmed bool `gorm:"column:user_b_confirmed;default:false"`

	VerifiedAt *time.Time `gorm:"column:verified_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (CollabLink) TableName() string {
	return "collab_links"
}
