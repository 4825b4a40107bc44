package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vijayleo46/portfolio-backend/database"
	"github.com/vijayleo46/portfolio-backend/models"
)

type stubCompleter struct {
	reply      string
	err        error
	lastSystem string
	lastPrompt string
	calls      int
}

func (s *stubCompleter) Complete(_ context.Context, system, prompt string) (string, error) {
	s.calls++
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func openTestDB(t *testing.T) database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return database.New(db)
}

func TestBuildGroundingContext(t *testing.T) {
	t.Run("uses contact job title and project titles", func(t *testing.T) {
		contact := &models.ContactInfo{Name: "Vijay Martin", JobTitle: "AI Engineer"}
		projects := []*models.Project{
			{Title: "Future Assistant"},
			{Title: "MindCanvas"},
		}

		grounding := BuildGroundingContext(contact, projects)
		assert.Contains(t, grounding, "Vijay Martin")
		assert.Contains(t, grounding, "AI Engineer")
		assert.Contains(t, grounding, "Future Assistant, MindCanvas")
	})

	t.Run("falls back to default job title without contact info", func(t *testing.T) {
		grounding := BuildGroundingContext(nil, nil)
		assert.Contains(t, grounding, DefaultJobTitle)
	})

	t.Run("omits project clause when no projects exist", func(t *testing.T) {
		grounding := BuildGroundingContext(nil, nil)
		assert.NotContains(t, grounding, "Highlighted projects")
	})
}

func TestAnswerLogsBothTurns(t *testing.T) {
	db := openTestDB(t)
	stub := &stubCompleter{reply: "Hello! Ask me about the portfolio."}
	chat := NewChatService(stub, db)

	reply, err := chat.Answer(context.Background(), "What projects are there?")
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, models.ChatRoleModel, reply.Role)
	assert.Equal(t, stub.reply, reply.Text)
	assert.False(t, reply.Timestamp.IsZero())

	messages, err := db.ChatMessageRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, models.ChatRoleUser, messages[0].Role)
	assert.Equal(t, "What projects are there?", messages[0].Text)
	assert.Equal(t, models.ChatRoleModel, messages[1].Role)
}

func TestAnswerKeepsUserTurnOnProviderFailure(t *testing.T) {
	db := openTestDB(t)
	stub := &stubCompleter{err: errors.New("401: API key not valid")}
	chat := NewChatService(stub, db)

	reply, err := chat.Answer(context.Background(), "Hello?")
	require.Error(t, err)
	assert.Nil(t, reply)
	assert.Contains(t, err.Error(), "API key not valid")

	messages, findErr := db.ChatMessageRepo().FindAll()
	require.NoError(t, findErr)
	require.Len(t, messages, 1, "the inbound message must survive the failure")
	assert.Equal(t, models.ChatRoleUser, messages[0].Role)
}

func TestAnswerGroundsOnCurrentRows(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.ContactInfoRepo().Add(&models.ContactInfo{
		Name: "Vijay Martin", JobTitle: "Software Developer", Phone: "1", Email: "v@example.com",
		Location: "Kochi", Linkedin: "https://linkedin.com/in/v", Github: "https://github.com/v",
	}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{
		Title: "Future Assistant", Description: "d", Image: "https://example.com/i.png",
	}))

	stub := &stubCompleter{reply: "ok"}
	chat := NewChatService(stub, db)

	_, err := chat.Answer(context.Background(), "hi")
	require.NoError(t, err)
	assert.Contains(t, stub.lastSystem, "Software Developer")
	assert.Contains(t, stub.lastSystem, "Future Assistant")
	assert.Equal(t, "hi", stub.lastPrompt)

	// The grounding context is rebuilt fresh each call and never includes
	// earlier chat turns.
	_, err = chat.Answer(context.Background(), "and again")
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)
	assert.NotContains(t, stub.lastSystem, "hi")
	assert.NotContains(t, stub.lastSystem, "ok")
}
