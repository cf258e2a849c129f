package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectImage is one entry of a project's ordered gallery.
type ProjectImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_image_project_id;constraint:OnDelete:CASCADE"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	Alt       string    `json:"alt" db:"alt" gorm:"type:text;not null"`
	Caption   *string   `json:"caption,omitempty" db:"caption" gorm:"type:text"`
	SortOrder int       `json:"sortOrder" db:"sort_order" gorm:"type:integer;not null;default:0"`
}

func (pi *ProjectImage) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}
