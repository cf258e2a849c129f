package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByProjectID returns a project's gallery ordered by sort order
func (r *ProjectImageRepo) FindByProjectID(projectID uuid.UUID) ([]*models.ProjectImage, error) {
	var images []*models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).Order("sort_order ASC").Find(&images).Error
	return images, err
}

// Add inserts a new project image into the database
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	return r.db.Create(image).Error
}

// UpdateSortOrder moves an image within its gallery
func (r *ProjectImageRepo) UpdateSortOrder(id uuid.UUID, sortOrder int) error {
	return r.db.Model(&models.ProjectImage{}).Where("id = ?", id).Update("sort_order", sortOrder).Error
}

// Delete removes a project image from the database by id
func (r *ProjectImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectImage{}, "id = ?", id).Error
}
