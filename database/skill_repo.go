package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills ordered by name ascending
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("name ASC").Find(&skills).Error
	return skills, err
}

// CountByIDs returns how many of the given skill ids exist. Used as a single
// batched existence check before attaching skills to a project.
func (r *SkillRepo) CountByIDs(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Skill{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// UpsertByName inserts the skill or leaves an existing row with the same name
// untouched. Used by seeding.
func (r *SkillRepo) UpsertByName(skill *models.Skill) error {
	var existing models.Skill
	err := r.db.First(&existing, "name = ?", skill.Name).Error
	if err == nil {
		skill.ID = existing.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(skill).Error
}
