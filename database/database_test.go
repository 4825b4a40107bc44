package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vijayleo46/portfolio-backend/models"
)

func openTestDB(t *testing.T) Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return New(db)
}

func TestSkillCategoryCascadeDelete(t *testing.T) {
	db := openTestDB(t)

	category := &models.SkillCategory{
		Name: "Languages",
		Skills: []models.Skill{
			{Name: "Go", Logo: "https://example.com/go.svg", Level: 90},
			{Name: "Python", Logo: "https://example.com/py.svg", Level: 85},
		},
	}
	require.NoError(t, db.SkillCategoryRepo().Add(category))

	skills, err := db.SkillRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, skills, 2)

	require.NoError(t, db.SkillCategoryRepo().Delete(category.ID))

	skills, err = db.SkillRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, skills, "deleting a category must remove its skills")
}

func TestSkillCategoryPreloadsOwnSkillsOnly(t *testing.T) {
	db := openTestDB(t)

	languages := &models.SkillCategory{Name: "Languages"}
	tools := &models.SkillCategory{Name: "Tools"}
	require.NoError(t, db.SkillCategoryRepo().Add(languages))
	require.NoError(t, db.SkillCategoryRepo().Add(tools))

	require.NoError(t, db.SkillRepo().Add(&models.Skill{
		CategoryID: languages.ID, Name: "Go", Logo: "https://example.com/go.svg",
	}))
	require.NoError(t, db.SkillRepo().Add(&models.Skill{
		CategoryID: tools.ID, Name: "Git", Logo: "https://example.com/git.svg",
	}))

	loaded, err := db.SkillCategoryRepo().FindByID(languages.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Skills, 1)
	assert.Equal(t, "Go", loaded.Skills[0].Name)
}

func TestSkillLevelDefaultsAndUnboundedRange(t *testing.T) {
	db := openTestDB(t)

	category := &models.SkillCategory{Name: "Misc"}
	require.NoError(t, db.SkillCategoryRepo().Add(category))

	defaulted := &models.Skill{CategoryID: category.ID, Name: "Bash", Logo: "https://example.com/bash.svg"}
	require.NoError(t, db.SkillRepo().Add(defaulted))

	loaded, err := db.SkillRepo().FindByID(defaulted.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, loaded.Level, "omitted level falls back to 80")

	// No range is enforced at write time
	extreme := &models.Skill{CategoryID: category.ID, Name: "Vim", Logo: "https://example.com/vim.svg", Level: 250}
	require.NoError(t, db.SkillRepo().Add(extreme))
	loaded, err = db.SkillRepo().FindByID(extreme.ID)
	require.NoError(t, err)
	assert.Equal(t, 250, loaded.Level)
}

func TestExperienceListedInInsertionOrder(t *testing.T) {
	db := openTestDB(t)

	entries := []string{"First Role", "Second Role", "Third Role"}
	for _, role := range entries {
		require.NoError(t, db.ExperienceRepo().Add(&models.Experience{
			Role: role, Company: "ACME", Period: "2024",
		}))
		// Unrelated inserts between experience rows must not disturb ordering
		require.NoError(t, db.EducationRepo().Add(&models.Education{
			Degree: "Deg " + role, Institution: "Uni", Period: "2024",
		}))
	}

	listed, err := db.ExperienceRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, role := range entries {
		assert.Equal(t, role, listed[i].Role)
	}
	assert.Less(t, listed[0].ID, listed[1].ID)
	assert.Less(t, listed[1].ID, listed[2].ID)
}

func TestContactInfoFirstReturnsLowestID(t *testing.T) {
	db := openTestDB(t)

	first, err := db.ContactInfoRepo().First()
	require.NoError(t, err)
	assert.Nil(t, first, "empty table yields nil, not an error")

	makeContact := func(title string) *models.ContactInfo {
		return &models.ContactInfo{
			Name: "Owner", JobTitle: title, Phone: "123", Email: "owner@example.com",
			Location: "Kochi", Linkedin: "https://linkedin.com/in/owner", Github: "https://github.com/owner",
		}
	}
	require.NoError(t, db.ContactInfoRepo().Add(makeContact("Software Developer")))
	require.NoError(t, db.ContactInfoRepo().Add(makeContact("Imposter")))

	first, err = db.ContactInfoRepo().First()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "Software Developer", first.JobTitle)
}

func TestFindByIDUnknownReturnsNil(t *testing.T) {
	db := openTestDB(t)

	project, err := db.ProjectRepo().FindByID(9999)
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Seed())

	projects, err := db.ProjectRepo().Count()
	require.NoError(t, err)
	require.Positive(t, projects)

	categories, err := db.SkillCategoryRepo().Count()
	require.NoError(t, err)
	require.Positive(t, categories)

	contact, err := db.ContactInfoRepo().First()
	require.NoError(t, err)
	require.NotNil(t, contact)

	// Second run must not duplicate anything
	require.NoError(t, db.Seed())

	projectsAgain, err := db.ProjectRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, projects, projectsAgain)

	categoriesAgain, err := db.SkillCategoryRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, categories, categoriesAgain)
}
