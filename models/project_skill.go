package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectSkill links a project to a skill. The pair is unique; rows cascade
// away with their project.
type ProjectSkill struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_skill_project_id;uniqueIndex:idx_project_skill_unique;constraint:OnDelete:CASCADE"`
	SkillID   uuid.UUID `json:"skill_id" db:"skill_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_skill_unique"`

	Skill Skill `json:"skill,omitempty" gorm:"foreignKey:SkillID;references:ID"`
}

func (ps *ProjectSkill) BeforeCreate(tx *gorm.DB) error {
	if ps.ID == uuid.Nil {
		ps.ID = uuid.New()
	}
	return nil
}
