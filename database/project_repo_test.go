package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return New(db)
}

func addProject(t *testing.T, d Database, author uuid.UUID, slug string, featured bool, sortOrder int, createdAt time.Time) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:           slug,
		Description:     "d",
		LongDescription: "ld",
		Slug:            slug,
		Featured:        featured,
		Published:       true,
		SortOrder:       sortOrder,
		AuthorID:        author,
		CreatedAt:       createdAt,
	}
	require.NoError(t, d.ProjectRepo().Add(project))
	return project
}

func addUser(t *testing.T, d Database, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "Author"}
	require.NoError(t, d.UserRepo().Add(user))
	return user
}

func TestFindAllForAdminOrdering(t *testing.T) {
	d := newTestDB(t)
	author := addUser(t, d, "author@example.com")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	addProject(t, d, author.ID, "plain-new", false, 0, base.Add(2*time.Hour))
	addProject(t, d, author.ID, "plain-old", false, 0, base)
	addProject(t, d, author.ID, "featured-low", true, 1, base)
	addProject(t, d, author.ID, "featured-high", true, 2, base)

	projects, err := d.ProjectRepo().FindAllForAdmin()
	require.NoError(t, err)
	require.Len(t, projects, 4)

	// featured desc, then sort order desc, then created at desc
	assert.Equal(t, "featured-high", projects[0].Slug)
	assert.Equal(t, "featured-low", projects[1].Slug)
	assert.Equal(t, "plain-new", projects[2].Slug)
	assert.Equal(t, "plain-old", projects[3].Slug)
}

func TestSlugExists(t *testing.T) {
	d := newTestDB(t)
	author := addUser(t, d, "author@example.com")
	project := addProject(t, d, author.ID, "taken", false, 0, time.Now())

	exists, err := d.ProjectRepo().SlugExists("taken", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = d.ProjectRepo().SlugExists("free", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, exists)

	// The excluded project does not count against its own slug.
	exists, err = d.ProjectRepo().SlugExists("taken", project.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSlugUniqueIndexIsEnforced(t *testing.T) {
	d := newTestDB(t)
	author := addUser(t, d, "author@example.com")
	addProject(t, d, author.ID, "contested", false, 0, time.Now())

	dup := &models.Project{
		Title:           "contested",
		Description:     "d",
		LongDescription: "ld",
		Slug:            "contested",
		AuthorID:        author.ID,
	}
	err := d.ProjectRepo().Add(dup)
	require.Error(t, err, "slug unique index must be the safety net for allocation races")
}

func TestDeleteRemovesAssociations(t *testing.T) {
	d := newTestDB(t)
	author := addUser(t, d, "author@example.com")
	project := addProject(t, d, author.ID, "doomed", false, 0, time.Now())

	skill := &models.Skill{Name: "Go", Category: "Backend", Color: "#00ADD8"}
	require.NoError(t, d.SkillRepo().Add(skill))
	require.NoError(t, d.ProjectSkillRepo().Add(&models.ProjectSkill{ProjectID: project.ID, SkillID: skill.ID}))
	require.NoError(t, d.ProjectImageRepo().Add(&models.ProjectImage{ProjectID: project.ID, URL: "https://img", Alt: "img"}))

	require.NoError(t, d.ProjectRepo().Delete(project.ID))

	links, err := d.ProjectSkillRepo().FindByProjectID(project.ID)
	require.NoError(t, err)
	assert.Empty(t, links)

	images, err := d.ProjectImageRepo().FindByProjectID(project.ID)
	require.NoError(t, err)
	assert.Empty(t, images)

	// The shared skill itself survives.
	skills, err := d.SkillRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, skills, 1)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	d := newTestDB(t)
	author := addUser(t, d, "author@example.com")

	err := d.Transaction(func(tx Database) error {
		addProject(t, tx, author.ID, "phantom", false, 0, time.Now())
		return assert.AnError
	})
	require.Error(t, err)

	exists, err := d.ProjectRepo().SlugExists("phantom", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, exists, "rolled-back insert must not be visible")
}
