package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio project. Slug is derived from the title and
// unique across all projects; the unique index is the safety net for
// concurrent slug allocation.
type Project struct {
	ID              uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title           string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string         `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription string         `json:"longDescription" db:"long_description" gorm:"type:text;not null"`
	Slug            string         `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_project_slug"`
	Company         *string        `json:"company,omitempty" db:"company" gorm:"type:text"`
	ProjectURL      *string        `json:"projectUrl,omitempty" db:"project_url" gorm:"type:text"`
	GithubURL       *string        `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	Featured        bool           `json:"featured" db:"featured" gorm:"not null;default:false"`
	Published       bool           `json:"published" db:"published" gorm:"not null;default:false"`
	SortOrder       int            `json:"sortOrder" db:"sort_order" gorm:"type:integer;not null;default:0"`
	AuthorID        uuid.UUID      `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index:idx_project_author_id"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null"`
	Author          *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Skills          []ProjectSkill `json:"skills,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Images          []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
