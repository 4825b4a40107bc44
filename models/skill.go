package models

// Skill belongs to exactly one SkillCategory and is removed with it.
// Level is an unbounded integer defaulting to 80; no range is enforced.
type Skill struct {
	ID         uint    `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	CategoryID uint    `json:"category" db:"category_id" gorm:"column:category_id;not null;index" validate:"required"`
	Name       string  `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Logo       string  `json:"logo" db:"logo" gorm:"type:text;not null" validate:"required,url"`
	Level      int     `json:"level" db:"level" gorm:"not null;default:80"`
	Desc       *string `json:"desc,omitempty" db:"desc" gorm:"type:text"`
	Link       *string `json:"link,omitempty" db:"link" gorm:"type:text" validate:"omitempty,url"`
}
