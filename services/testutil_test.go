package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database. A single connection keeps
// every query on the same memory store.
func newTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return database.New(db)
}

func seedUser(t *testing.T, db database.Database, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "Test User"}
	require.NoError(t, db.UserRepo().Add(user))
	return user
}

func seedSkill(t *testing.T, db database.Database, name string) *models.Skill {
	t.Helper()
	skill := &models.Skill{Name: name, Category: "Backend", Color: "#00ADD8"}
	require.NoError(t, db.SkillRepo().Add(skill))
	return skill
}

func seedProject(t *testing.T, db database.Database, author uuid.UUID, title, slug string, published, featured bool) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:           title,
		Description:     "a project",
		LongDescription: "a longer description",
		Slug:            slug,
		Published:       published,
		Featured:        featured,
		AuthorID:        author,
	}
	require.NoError(t, db.ProjectRepo().Add(project))
	return project
}
