package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// imagesBySortOrder preloads a project's gallery in display order.
func imagesBySortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// FindAllForAdmin returns every project, published or not, ordered
// featured-first, then by sort order, then newest-first.
func (r *ProjectRepo) FindAllForAdmin() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Skills.Skill").
		Preload("Images", imagesBySortOrder).
		Order("featured DESC").
		Order("sort_order DESC").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project with its skill set, or nil if absent
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Skills.Skill").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindPublished returns all published projects with skills and images,
// featured-first then newest-first.
func (r *ProjectRepo) FindPublished() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Skills.Skill").
		Preload("Images", imagesBySortOrder).
		Where("published = ?", true).
		Order("featured DESC").
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindPublishedBySlug returns a single published project with skills, images
// and author, or nil if absent or unpublished.
func (r *ProjectRepo) FindPublishedBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Skills.Skill").
		Preload("Images", imagesBySortOrder).
		Preload("Author").
		First(&project, "slug = ? AND published = ?", slug, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindFeatured returns up to limit published and featured projects,
// newest-first.
func (r *ProjectRepo) FindFeatured(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Skills.Skill").
		Preload("Images", imagesBySortOrder).
		Where("published = ? AND featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// SlugExists reports whether a project other than excludeID already holds the
// slug. Pass uuid.Nil to check against all projects.
func (r *ProjectRepo) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database. Associations are
// omitted so a stale preloaded skill set cannot resurrect deleted join rows.
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Omit(clause.Associations).Save(project).Error
}

// Delete removes a project and its associated rows from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Select(clause.Associations).Delete(&models.Project{ID: id}).Error
}
