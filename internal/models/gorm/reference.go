package gorm

// Archetype is a user-classification tag describing working style.
// Seeded at startup; read-only from the API surface.
type Archetype struct {
	ID          uint    `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;size:100;uniqueIndex;not null"`
	Description *string `gorm:"column:description;type:text"`

	Users []User `gorm:"foreignKey:ArchetypeID"`
}

// TableName specifies the table name for GORM
func (Archetype) TableName() string {
	return "archetypes"
}

// Tier is an ordinal experience-level classification.
type Tier struct {
	ID          uint    `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;size:100;uniqueIndex;not null"`
	Level       int     `gorm:"column:level;not null"`
	Description *string `gorm:"column:description;type:text"`

	Users []User `gorm:"foreignKey:TierID"`
}

// TableName specifies the table name for GORM
func (Tier) TableName() string {
	return "tiers"
}
