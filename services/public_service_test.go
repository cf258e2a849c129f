package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProjectAt(t *testing.T, db database.Database, author uuid.UUID, title, slug string, published, featured bool, createdAt time.Time) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:           title,
		Description:     "a project",
		LongDescription: "a longer description",
		Slug:            slug,
		Published:       published,
		Featured:        featured,
		AuthorID:        author,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.ProjectRepo().Add(project))
	return project
}

func TestListPublishedFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com")
	svc := NewPublicService(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedProjectAt(t, db, author.ID, "Old Plain", "old-plain", true, false, base)
	seedProjectAt(t, db, author.ID, "New Plain", "new-plain", true, false, base.Add(2*time.Hour))
	seedProjectAt(t, db, author.ID, "Featured One", "featured-one", true, true, base.Add(time.Hour))
	seedProjectAt(t, db, author.ID, "Hidden", "hidden", false, true, base.Add(3*time.Hour))

	projects, err := svc.ListPublished()
	require.NoError(t, err)
	require.Len(t, projects, 3)

	for _, p := range projects {
		assert.True(t, p.Published, "unpublished project leaked into public listing")
	}

	// Featured first, then newest first.
	assert.Equal(t, "featured-one", projects[0].Slug)
	assert.Equal(t, "new-plain", projects[1].Slug)
	assert.Equal(t, "old-plain", projects[2].Slug)
}

func TestGetBySlug(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com")
	svc := NewPublicService(db)

	project := seedProject(t, db, author.ID, "Visible", "visible", true, false)
	second := models.ProjectImage{ProjectID: project.ID, URL: "https://img/2", Alt: "two", SortOrder: 2}
	first := models.ProjectImage{ProjectID: project.ID, URL: "https://img/1", Alt: "one", SortOrder: 1}
	require.NoError(t, db.ProjectImageRepo().Add(&second))
	require.NoError(t, db.ProjectImageRepo().Add(&first))

	loaded, err := svc.GetBySlug("visible")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	// Images come back in gallery order.
	require.Len(t, loaded.Images, 2)
	assert.Equal(t, "https://img/1", loaded.Images[0].URL)
	assert.Equal(t, "https://img/2", loaded.Images[1].URL)

	// Only the author's public fields are exposed.
	require.NotNil(t, loaded.Author)
	assert.Equal(t, author.Name, loaded.Author.Name)
	assert.Equal(t, author.Email, loaded.Author.Email)
	assert.Nil(t, loaded.Author.Password)
	assert.Nil(t, loaded.Author.Image)
}

func TestGetBySlugHidesUnpublished(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com")
	svc := NewPublicService(db)

	seedProject(t, db, author.ID, "Draft", "draft", false, false)

	loaded, err := svc.GetBySlug("draft")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	loaded, err = svc.GetBySlug("never-existed")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestListFeaturedLimitAndFilters(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com")
	svc := NewPublicService(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedProjectAt(t, db, author.ID, "Feat A", "feat-a", true, true, base)
	seedProjectAt(t, db, author.ID, "Feat B", "feat-b", true, true, base.Add(time.Hour))
	seedProjectAt(t, db, author.ID, "Feat C", "feat-c", true, true, base.Add(2*time.Hour))
	seedProjectAt(t, db, author.ID, "Feat Draft", "feat-draft", false, true, base.Add(3*time.Hour))
	seedProjectAt(t, db, author.ID, "Plain", "plain", true, false, base.Add(4*time.Hour))

	projects, err := svc.ListFeatured(2)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	for _, p := range projects {
		assert.True(t, p.Featured)
		assert.True(t, p.Published)
	}

	// Newest first within the featured set.
	assert.Equal(t, "feat-c", projects[0].Slug)
	assert.Equal(t, "feat-b", projects[1].Slug)
}
