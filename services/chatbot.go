package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vijayleo46/portfolio-backend/database"
	"github.com/vijayleo46/portfolio-backend/errs"
	"github.com/vijayleo46/portfolio-backend/models"
)

// Job title used in the grounding context when no ContactInfo row exists yet.
const DefaultJobTitle = "Software Developer"

// ChatService orchestrates one chatbot exchange. It is stateless across
// requests: every call rebuilds the grounding context from current rows and
// never replays prior ChatMessage history to the provider.
type ChatService struct {
	completer       Completer
	contactInfoRepo *database.Repo[models.ContactInfo]
	projectRepo     *database.Repo[models.Project]
	chatMessageRepo *database.Repo[models.ChatMessage]
	logger          zerolog.Logger
}

func NewChatService(completer Completer, db database.Database) *ChatService {
	logger := log.With().Str("serviceName", "chatService").Logger()

	return &ChatService{
		completer:       completer,
		contactInfoRepo: db.ContactInfoRepo(),
		projectRepo:     db.ProjectRepo(),
		chatMessageRepo: db.ChatMessageRepo(),
		logger:          logger,
	}
}

// Answer handles one visitor message. The inbound turn is persisted before
// anything else, so it survives any downstream failure. On success the
// persisted model turn is returned; on failure the error is returned with the
// user row already durable.
func (s *ChatService) Answer(ctx context.Context, text string) (*models.ChatMessage, error) {
	inbound := &models.ChatMessage{Role: models.ChatRoleUser, Text: text}
	if err := s.chatMessageRepo.Add(inbound); err != nil {
		return nil, errs.NewDatabaseError("log", "chat message", err)
	}

	grounding, err := s.groundingContext()
	if err != nil {
		return nil, err
	}

	reply, err := s.completer.Complete(ctx, grounding, text)
	if err != nil {
		s.logger.Error().Err(err).Msg("completion provider call failed")
		return nil, errs.NewProviderError(err)
	}

	outbound := &models.ChatMessage{Role: models.ChatRoleModel, Text: reply}
	if err := s.chatMessageRepo.Add(outbound); err != nil {
		return nil, errs.NewDatabaseError("log", "chat message", err)
	}

	return outbound, nil
}

// groundingContext assembles the system instruction from current stored data:
// the authoritative (lowest-id) contact row's job title and the full list of
// project titles.
func (s *ChatService) groundingContext() (string, error) {
	contact, err := s.contactInfoRepo.First()
	if err != nil {
		return "", errs.NewDatabaseError("load", "contact info", err)
	}

	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return "", errs.NewDatabaseError("load", "projects", err)
	}

	return BuildGroundingContext(contact, projects), nil
}

// BuildGroundingContext renders the persona preamble. The project clause is
// omitted entirely when no projects exist.
func BuildGroundingContext(contact *models.ContactInfo, projects []*models.Project) string {
	jobTitle := DefaultJobTitle
	owner := "the site owner"
	if contact != nil {
		if contact.JobTitle != "" {
			jobTitle = contact.JobTitle
		}
		if contact.Name != "" {
			owner = contact.Name
		}
	}

	var b strings.Builder
	b.WriteString("You are the portfolio assistant for ")
	b.WriteString(owner)
	b.WriteString(", a ")
	b.WriteString(jobTitle)
	b.WriteString(". Answer visitor questions strictly based on the portfolio data. ")
	b.WriteString("Be polite, professional, and concise.")

	var titles []string
	for _, project := range projects {
		titles = append(titles, project.Title)
	}
	if len(titles) > 0 {
		b.WriteString(" Highlighted projects: ")
		b.WriteString(strings.Join(titles, ", "))
		b.WriteString(".")
	}

	return b.String()
}
