package services

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// ImageFormData carries the admin form fields for attaching a gallery image.
type ImageFormData struct {
	URL       string  `json:"url"`
	Alt       string  `json:"alt"`
	Caption   *string `json:"caption,omitempty"`
	SortOrder int     `json:"sortOrder"`
}

// AddImage attaches a gallery image to an existing project.
func (s ProjectService) AddImage(actor uuid.UUID, projectID uuid.UUID, data ImageFormData) (*models.ProjectImage, error) {
	if err := requireIdentity(actor); err != nil {
		return nil, err
	}
	if data.URL == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "url", "url is required")
	}

	project, err := s.db.ProjectRepo().FindByID(projectID)
	if err != nil {
		return nil, errs.NewStorageFailure("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewProjectNotFound()
	}

	image := models.ProjectImage{
		ProjectID: projectID,
		URL:       data.URL,
		Alt:       data.Alt,
		Caption:   data.Caption,
		SortOrder: data.SortOrder,
	}
	if err := s.db.ProjectImageRepo().Add(&image); err != nil {
		return nil, errs.TranslateStorageError("create", "project image", err)
	}
	return &image, nil
}

// DeleteImage removes a gallery image.
func (s ProjectService) DeleteImage(actor uuid.UUID, imageID uuid.UUID) error {
	if err := requireIdentity(actor); err != nil {
		return err
	}
	if err := s.db.ProjectImageRepo().Delete(imageID); err != nil {
		return errs.TranslateStorageError("delete", "project image", err)
	}
	return nil
}

// ReorderImage moves a gallery image to a new position.
func (s ProjectService) ReorderImage(actor uuid.UUID, imageID uuid.UUID, sortOrder int) error {
	if err := requireIdentity(actor); err != nil {
		return err
	}
	if err := s.db.ProjectImageRepo().UpdateSortOrder(imageID, sortOrder); err != nil {
		return errs.TranslateStorageError("update", "project image", err)
	}
	return nil
}
