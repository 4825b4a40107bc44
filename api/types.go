package api

import "github.com/vijayleo46/portfolio-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projects       resourceHandler[models.Project]
	experience     resourceHandler[models.Experience]
	education      resourceHandler[models.Education]
	skills         resourceHandler[models.SkillCategory]
	contact        resourceHandler[models.ContactInfo]
	chatbot        chatbotHandler
	contactMessage contactMessageHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
