package models

// ContactInfo is the site owner's profile card. Multiple rows are technically
// permitted; the lowest-id row is the authoritative one consulted by the chat
// orchestrator.
type ContactInfo struct {
	ID       uint    `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	JobTitle string  `json:"job_title" db:"job_title" gorm:"column:job_title;type:text;not null" validate:"required"`
	Phone    string  `json:"phone" db:"phone" gorm:"type:text;not null" validate:"required"`
	Email    string  `json:"email" db:"email" gorm:"type:text;not null" validate:"required,email"`
	Location string  `json:"location" db:"location" gorm:"type:text;not null" validate:"required"`
	Linkedin string  `json:"linkedin" db:"linkedin" gorm:"type:text;not null" validate:"required,url"`
	Github   string  `json:"github" db:"github" gorm:"type:text;not null" validate:"required,url"`
	Twitter  *string `json:"twitter,omitempty" db:"twitter" gorm:"type:text" validate:"omitempty,url"`
	Dribbble *string `json:"dribbble,omitempty" db:"dribbble" gorm:"type:text" validate:"omitempty,url"`
}
