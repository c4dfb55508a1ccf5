package gorm

import "time"

type Coalition struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description *string   `gorm:"column:description;type:text"`
	Focus       *string   `gorm:"column:focus"`
	Location    *string   `gorm:"column:location"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Members []User `gorm:"many2many:coalition_members"`
}

// TableName specifies the table name for GORM
func (Coalition) TableName() string {
	return "coalitions"
}
