package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectSkillRepo struct {
	db *gorm.DB
}

func NewProjectSkillRepo(db *gorm.DB) *ProjectSkillRepo {
	return &ProjectSkillRepo{db}
}

// FindByProjectID returns the join rows for a project
func (r *ProjectSkillRepo) FindByProjectID(projectID uuid.UUID) ([]*models.ProjectSkill, error) {
	var projectSkills []*models.ProjectSkill
	err := r.db.Where("project_id = ?", projectID).Find(&projectSkills).Error
	return projectSkills, err
}

// Add inserts a new project-skill link into the database
func (r *ProjectSkillRepo) Add(projectSkill *models.ProjectSkill) error {
	return r.db.Create(projectSkill).Error
}

// DeleteByProjectID removes every skill link for a project
func (r *ProjectSkillRepo) DeleteByProjectID(projectID uuid.UUID) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectSkill{}).Error
}
