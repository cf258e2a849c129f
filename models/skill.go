package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill represents a technology shared across projects. Skills are created
// ad hoc by admins and never deleted by project flows.
type Skill struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name     string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_skill_name"`
	Category string    `json:"category" db:"category" gorm:"type:text;not null"`
	Color    string    `json:"color" db:"color" gorm:"type:text;not null"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
