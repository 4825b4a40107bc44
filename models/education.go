package models

import "gorm.io/datatypes"

// Education represents a degree or certification entry
type Education struct {
	ID          uint                        `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Degree      string                      `json:"degree" db:"degree" gorm:"type:text;not null" validate:"required"`
	Institution string                      `json:"institution" db:"institution" gorm:"type:text;not null" validate:"required"`
	Period      string                      `json:"period" db:"period" gorm:"type:text;not null" validate:"required"`
	Details     datatypes.JSONSlice[string] `json:"details" db:"details"`
}
