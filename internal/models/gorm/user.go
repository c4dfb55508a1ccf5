package gorm

import "time"

type User struct {
	ID           uint    `gorm:"column:id;primaryKey"`
	Email        string  `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string  `gorm:"column:password;not null"`
	Username     *string `gorm:"column:username;uniqueIndex"`
	FullName     *string `gorm:"column:full_name"`
	Bio          *string `gorm:"column:bio;type:text"`

	PreferredThemes *string `gorm:"column:preferred_themes;type:text"`
	PortfolioLinks  *string `gorm:"column:portfolio_links;type:text"`
	NextBuild       *string `gorm:"column:next_build;type:text"`
	Affiliations    *string `gorm:"column:affiliations;type:text"`

	ArchetypeID *uint `gorm:"column:archetype_id"`
	TierID      *uint `gorm:"column:tier_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Archetype      *Archetype  `gorm:"foreignKey:ArchetypeID"`
	Tier           *Tier       `gorm:"foreignKey:TierID"`
	Coalitions     []Coalition `gorm:"many2many:coalition_members"`
	ProjectsPosted []Project   `gorm:"foreignKey:PosterID"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
