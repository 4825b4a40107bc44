package models

import "gorm.io/datatypes"

// Project represents a portfolio project with its metadata.
// demo_url and github_url are stored under their column names but exposed
// on the wire as demoUrl/githubUrl for the frontend contract.
type Project struct {
	ID           uint                        `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null" validate:"required"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null" validate:"required"`
	Image        string                      `json:"image" db:"image" gorm:"type:text;not null" validate:"required,url"`
	DemoURL      *string                     `json:"demoUrl,omitempty" db:"demo_url" gorm:"column:demo_url;type:text" validate:"omitempty,url"`
	GithubURL    *string                     `json:"githubUrl,omitempty" db:"github_url" gorm:"column:github_url;type:text" validate:"omitempty,url"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" db:"technologies"`
	Features     datatypes.JSONSlice[string] `json:"features" db:"features"`
}
