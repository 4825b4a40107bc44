package api

import (
	"github.com/vijayleo46/portfolio-backend/database"
	"github.com/vijayleo46/portfolio-backend/models"
	"github.com/vijayleo46/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, chat *services.ChatService) *routeHandlers {
	return &routeHandlers{
		projects:   newResourceHandler("project", db.ProjectRepo(), nil),
		experience: newResourceHandler("experience", db.ExperienceRepo(), nil),
		education:  newResourceHandler("education", db.EducationRepo(), nil),
		// Skills ride along read-only on the category payload; inbound
		// skill lists are dropped before any category write.
		skills: newResourceHandler("skill category", db.SkillCategoryRepo(), func(category *models.SkillCategory) {
			category.Skills = nil
		}),
		contact:        newResourceHandler("contact info", db.ContactInfoRepo(), nil),
		chatbot:        newChatbotHandler(chat),
		contactMessage: newContactMessageHandler(db.ContactMessageRepo()),
	}
}
