package services

import (
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// defaultFeaturedLimit matches the public landing page's featured strip.
const defaultFeaturedLimit = 6

// PublicService serves the unauthenticated site. Everything it returns is
// filtered to published projects.
type PublicService struct {
	db database.Database
}

func NewPublicService(db database.Database) PublicService {
	return PublicService{db}
}

// ListPublished returns all published projects with skills and images,
// featured-first then newest-first.
func (s PublicService) ListPublished() ([]*models.Project, error) {
	projects, err := s.db.ProjectRepo().FindPublished()
	if err != nil {
		return nil, errs.NewStorageFailure("find", "published projects", err)
	}
	return projects, nil
}

// GetBySlug returns a single published project with skills, images in gallery
// order and the author's public name and email. Nil when the slug does not
// resolve or the project is unpublished.
func (s PublicService) GetBySlug(slug string) (*models.Project, error) {
	project, err := s.db.ProjectRepo().FindPublishedBySlug(slug)
	if err != nil {
		return nil, errs.NewStorageFailure("find", "project", err)
	}
	if project != nil && project.Author != nil {
		// Only the author's public fields leave the service.
		project.Author = &models.User{
			ID:    project.Author.ID,
			Name:  project.Author.Name,
			Email: project.Author.Email,
		}
	}
	return project, nil
}

// ListFeatured returns up to limit published and featured projects,
// newest-first. A non-positive limit falls back to the default.
func (s PublicService) ListFeatured(limit int) ([]*models.Project, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	projects, err := s.db.ProjectRepo().FindFeatured(limit)
	if err != nil {
		return nil, errs.NewStorageFailure("find", "featured projects", err)
	}
	return projects, nil
}
