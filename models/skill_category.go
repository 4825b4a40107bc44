package models

// SkillCategory groups skills under a heading (e.g. "Languages", "Tooling").
// Skills are embedded read-only on retrieval; they are created and updated
// through the skill endpoints, never through the category payload.
type SkillCategory struct {
	ID     uint    `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name   string  `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Skills []Skill `json:"skills" db:"-" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}
