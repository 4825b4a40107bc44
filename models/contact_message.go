package models

import "time"

// ContactMessage is an inbound contact-form submission. Durable inbox only:
// nothing is deduplicated and no notification goes out.
type ContactMessage struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null" validate:"required,email"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null" validate:"required"`
	Timestamp time.Time `json:"timestamp" db:"timestamp" gorm:"autoCreateTime"`
}
