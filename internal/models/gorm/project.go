package gorm

import (
	"time"

	"breate/backend/internal/constants"
)

type Project struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title;not null"`
	Objective   string `gorm:"column:objective;type:text;not null"`
	ProjectType string `gorm:"column:project_type;not null"`

	// Comma-delimited tag lists; split/joined at the service boundary.
	NeededArchetypes string `gorm:"column:needed_archetypes;type:text;not null"`
	CoalitionTags    string `gorm:"column:coalition_tags;type:text"`

	OpenRoles *string `gorm:"column:open_roles;type:text"`
	Timeline  *string `gorm:"column:timeline"`
	Region    *string `gorm:"column:region"`

	PosterID uint                    `gorm:"column:poster_id"`
	Status   constants.ProjectStatus `gorm:"column:status;default:open;not null"`

	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	CompletedAt *time.Time `gorm:"column:completed_at"`

	// Relationships
	Poster       *User                `gorm:"foreignKey:PosterID"`
	Participants []ProjectParticipant `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Project) TableName() string {
	return "projects"
}

type ProjectParticipant struct {
	ID        uint                        `gorm:"column:id;primaryKey"`
	ProjectID uint                        `gorm:"column:project_id;not null"`
	UserID    uint                        `gorm:"column:user_id;not null"`
	Status    constants.ParticipantStatus `gorm:"column:status;default:pending"`
	JoinedAt  time.Time                   `gorm:"column:joined_at;autoCreateTime"`

	// Relationships
	Project *Project `gorm:"foreignKey:ProjectID"`
	User    *User    `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (ProjectParticipant) TableName() string {
	return "project_participants"
}
