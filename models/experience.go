package models

import "gorm.io/datatypes"

// Experience represents a work history entry. Period is a free-text label
// (e.g. "2022 - Present"), never parsed as a date range.
type Experience struct {
	ID      uint                        `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Role    string                      `json:"role" db:"role" gorm:"type:text;not null" validate:"required"`
	Company string                      `json:"company" db:"company" gorm:"type:text;not null" validate:"required"`
	Period  string                      `json:"period" db:"period" gorm:"type:text;not null" validate:"required"`
	Details datatypes.JSONSlice[string] `json:"details" db:"details"`
}
