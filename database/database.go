package database

import (
	"gorm.io/gorm"

	"github.com/vijayleo46/portfolio-backend/models"
)

type Database struct {
	projectRepo        *Repo[models.Project]
	experienceRepo     *Repo[models.Experience]
	educationRepo      *Repo[models.Education]
	skillCategoryRepo  *Repo[models.SkillCategory]
	skillRepo          *Repo[models.Skill]
	contactInfoRepo    *Repo[models.ContactInfo]
	chatMessageRepo    *Repo[models.ChatMessage]
	contactMessageRepo *Repo[models.ContactMessage]
}

// New initializes a new Database struct with each repository using a shared GORM database instance.
// Experience carries a mandatory ascending-id ordering (the frontend renders it
// in insertion order); skill categories always embed their skills.
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:        NewRepo[models.Project](db),
		experienceRepo:     NewRepo(db, WithOrder[models.Experience]("id ASC")),
		educationRepo:      NewRepo[models.Education](db),
		skillCategoryRepo:  NewRepo(db, WithPreload[models.SkillCategory]("Skills")),
		skillRepo:          NewRepo[models.Skill](db),
		contactInfoRepo:    NewRepo[models.ContactInfo](db),
		chatMessageRepo:    NewRepo(db, WithOrder[models.ChatMessage]("timestamp ASC, id ASC")),
		contactMessageRepo: NewRepo[models.ContactMessage](db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *Repo[models.Project] {
	return d.projectRepo
}

func (d Database) ExperienceRepo() *Repo[models.Experience] {
	return d.experienceRepo
}

func (d Database) EducationRepo() *Repo[models.Education] {
	return d.educationRepo
}

func (d Database) SkillCategoryRepo() *Repo[models.SkillCategory] {
	return d.skillCategoryRepo
}

func (d Database) SkillRepo() *Repo[models.Skill] {
	return d.skillRepo
}

func (d Database) ContactInfoRepo() *Repo[models.ContactInfo] {
	return d.contactInfoRepo
}

func (d Database) ChatMessageRepo() *Repo[models.ChatMessage] {
	return d.chatMessageRepo
}

func (d Database) ContactMessageRepo() *Repo[models.ContactMessage] {
	return d.contactMessageRepo
}

// Migrate creates or updates the schema for every persisted entity
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.SkillCategory{},
		&models.Skill{},
		&models.ContactInfo{},
		&models.ChatMessage{},
		&models.ContactMessage{},
	)
}
