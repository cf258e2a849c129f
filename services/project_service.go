package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EditPolicy controls who may update or delete a project.
type EditPolicy string

const (
	// EditPolicyAny lets any authenticated user edit any project.
	EditPolicyAny EditPolicy = "any"
	// EditPolicyOwner restricts update and delete to the project's author.
	EditPolicyOwner EditPolicy = "owner"
)

// maxSlugAttempts bounds the allocate-then-insert retry loop. The existence
// probe already walks past known collisions, so more than a couple of retries
// means something other than a slug race is wrong.
const maxSlugAttempts = 5

const defaultSkillColor = "#000000"

// ProjectFormData carries the admin form fields for creating or updating a
// project. Slug is never user-supplied; it is derived from Title.
type ProjectFormData struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	LongDescription string      `json:"longDescription"`
	Company         *string     `json:"company,omitempty"`
	ProjectURL      *string     `json:"projectUrl,omitempty"`
	GithubURL       *string     `json:"githubUrl,omitempty"`
	Featured        bool        `json:"featured"`
	Published       bool        `json:"published"`
	SortOrder       int         `json:"sortOrder"`
	SkillIDs        []uuid.UUID `json:"skillIds"`
}

// ProjectService orchestrates project and skill mutations. Every operation
// takes the acting user id explicitly; uuid.Nil means unauthenticated and the
// operation fails before touching storage.
type ProjectService struct {
	db        database.Database
	allocator SlugAllocator
	policy    EditPolicy
	logger    zerolog.Logger
}

func NewProjectService(db database.Database, policy EditPolicy) ProjectService {
	if policy != EditPolicyOwner {
		policy = EditPolicyAny
	}
	return ProjectService{
		db:        db,
		allocator: NewSlugAllocator(db.ProjectRepo()),
		policy:    policy,
		logger:    log.With().Str("serviceName", "projectService").Logger(),
	}
}

func requireIdentity(actor uuid.UUID) error {
	if actor == uuid.Nil {
		return errs.NewUnauthenticated()
	}
	return nil
}

// validateSkillIDs runs the single batched existence check. A shortfall in
// the count means at least one requested id does not resolve to a skill.
func (s ProjectService) validateSkillIDs(db database.Database, skillIDs []uuid.UUID) error {
	if len(skillIDs) == 0 {
		return nil
	}
	count, err := db.SkillRepo().CountByIDs(skillIDs)
	if err != nil {
		return errs.NewStorageFailure("validate", "skills", err)
	}
	if count != int64(len(skillIDs)) {
		return errs.NewInvalidSkillReference()
	}
	return nil
}

// Create validates the skill set, allocates a unique slug and inserts the
// project plus its skill links in one transaction. A losing slug race shows
// up as a unique violation on insert and triggers reallocation.
func (s ProjectService) Create(actor uuid.UUID, data ProjectFormData) (*models.Project, error) {
	if err := requireIdentity(actor); err != nil {
		return nil, err
	}
	if data.Title == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "title", "title is required")
	}
	if err := s.validateSkillIDs(s.db, data.SkillIDs); err != nil {
		return nil, err
	}

	var project *models.Project
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := s.allocator.Allocate(data.Title, uuid.Nil)
		if err != nil {
			return nil, errs.NewStorageFailure("allocate slug for", "project", err)
		}

		candidate := models.Project{
			Title:           data.Title,
			Description:     data.Description,
			LongDescription: data.LongDescription,
			Slug:            slug,
			Company:         data.Company,
			ProjectURL:      data.ProjectURL,
			GithubURL:       data.GithubURL,
			Featured:        data.Featured,
			Published:       data.Published,
			SortOrder:       data.SortOrder,
			AuthorID:        actor,
		}

		err = s.db.Transaction(func(tx database.Database) error {
			if err := tx.ProjectRepo().Add(&candidate); err != nil {
				return err
			}
			return addSkillLinks(tx, candidate.ID, data.SkillIDs)
		})
		if err == nil {
			project = &candidate
			break
		}
		if errs.IsUniqueViolation(err) {
			s.logger.Warn().Str("slug", slug).Int("attempt", attempt+1).Msg("Slug taken between check and insert, reallocating")
			continue
		}
		return nil, errs.TranslateStorageError("create", "project", err)
	}
	if project == nil {
		return nil, errs.NewDuplicateTitle()
	}

	created, err := s.db.ProjectRepo().FindByID(project.ID)
	if err != nil {
		return nil, errs.NewStorageFailure("find created", "project", err)
	}
	return created, nil
}

// Update reallocates the slug only when the title changed, excluding the
// project itself from the collision search, and replaces the full skill-set
// membership atomically with the field update.
func (s ProjectService) Update(actor uuid.UUID, id uuid.UUID, data ProjectFormData) (*models.Project, error) {
	if err := requireIdentity(actor); err != nil {
		return nil, err
	}

	current, err := s.db.ProjectRepo().FindByID(id)
	if err != nil {
		return nil, errs.NewStorageFailure("find", "project", err)
	}
	if current == nil {
		return nil, errs.NewProjectNotFound()
	}
	if s.policy == EditPolicyOwner && current.AuthorID != actor {
		return nil, errs.NewForbiddenError("only the project author may edit this project")
	}
	if data.Title == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "title", "title is required")
	}
	if err := s.validateSkillIDs(s.db, data.SkillIDs); err != nil {
		return nil, err
	}

	titleChanged := current.Title != data.Title

	var succeeded bool
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug := current.Slug
		if titleChanged {
			slug, err = s.allocator.Allocate(data.Title, id)
			if err != nil {
				return nil, errs.NewStorageFailure("allocate slug for", "project", err)
			}
		}

		updated := *current
		updated.Title = data.Title
		updated.Description = data.Description
		updated.LongDescription = data.LongDescription
		updated.Slug = slug
		updated.Company = data.Company
		updated.ProjectURL = data.ProjectURL
		updated.GithubURL = data.GithubURL
		updated.Featured = data.Featured
		updated.Published = data.Published
		updated.SortOrder = data.SortOrder
		updated.Skills = nil
		updated.Images = nil
		updated.Author = nil

		err = s.db.Transaction(func(tx database.Database) error {
			if err := tx.ProjectSkillRepo().DeleteByProjectID(id); err != nil {
				return err
			}
			if err := tx.ProjectRepo().Update(&updated); err != nil {
				return err
			}
			return addSkillLinks(tx, id, data.SkillIDs)
		})
		if err == nil {
			succeeded = true
			break
		}
		if titleChanged && errs.IsUniqueViolation(err) {
			s.logger.Warn().Str("slug", slug).Int("attempt", attempt+1).Msg("Slug taken between check and update, reallocating")
			continue
		}
		return nil, errs.TranslateStorageError("update", "project", err)
	}
	if !succeeded {
		return nil, errs.NewDuplicateTitle()
	}

	reloaded, err := s.db.ProjectRepo().FindByID(id)
	if err != nil {
		return nil, errs.NewStorageFailure("find updated", "project", err)
	}
	return reloaded, nil
}

// Delete removes the project; skill links and images go with it.
func (s ProjectService) Delete(actor uuid.UUID, id uuid.UUID) error {
	if err := requireIdentity(actor); err != nil {
		return err
	}

	current, err := s.db.ProjectRepo().FindByID(id)
	if err != nil {
		return errs.NewStorageFailure("find", "project", err)
	}
	if current == nil {
		return errs.NewProjectNotFound()
	}
	if s.policy == EditPolicyOwner && current.AuthorID != actor {
		return errs.NewForbiddenError("only the project author may delete this project")
	}

	if err := s.db.ProjectRepo().Delete(id); err != nil {
		return errs.TranslateStorageError("delete", "project", err)
	}
	return nil
}

// GetForEdit returns the project with its skill set, or nil when absent.
func (s ProjectService) GetForEdit(actor uuid.UUID, id uuid.UUID) (*models.Project, error) {
	if err := requireIdentity(actor); err != nil {
		return nil, err
	}
	project, err := s.db.ProjectRepo().FindByID(id)
	if err != nil {
		return nil, errs.NewStorageFailure("find", "project", err)
	}
	return project, nil
}

// ListForAdmin returns every project regardless of published state, in the
// admin dashboard ordering.
func (s ProjectService) ListForAdmin(actor uuid.UUID) ([]*models.Project, error) {
	if err := requireIdentity(actor); err != nil {
		return nil, err
	}
	projects, err := s.db.ProjectRepo().FindAllForAdmin()
	if err != nil {
		return nil, errs.NewStorageFailure("find", "projects", err)
	}
	return projects, nil
}

// ListAllSkills returns all skills ordered by name ascending.
func (s ProjectService) ListAllSkills(actor uuid.UUID) ([]*models.Skill, error) {
	if err := requireIdentity(actor); err != nil {
		return nil, err
	}
	skills, err := s.db.SkillRepo().FindAll()
	if err != nil {
		return nil, errs.NewStorageFailure("find", "skills", err)
	}
	return skills, nil
}

// CreateSkill trims the name and category, defaults the color and relies on
// the unique index on name to settle concurrent creations.
func (s ProjectService) CreateSkill(actor uuid.UUID, name, category, color string) (*models.Skill, error) {
	if err := requireIdentity(actor); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "name", "name is required")
	}
	if color == "" {
		color = defaultSkillColor
	}

	skill := models.Skill{Name: name, Category: category, Color: color}
	if err := s.db.SkillRepo().Add(&skill); err != nil {
		if errs.IsUniqueViolation(err) {
			return nil, errs.NewDuplicateSkillName()
		}
		return nil, errs.TranslateStorageError("create", "skill", err)
	}
	return &skill, nil
}

func addSkillLinks(tx database.Database, projectID uuid.UUID, skillIDs []uuid.UUID) error {
	for _, skillID := range skillIDs {
		link := models.ProjectSkill{ProjectID: projectID, SkillID: skillID}
		if err := tx.ProjectSkillRepo().Add(&link); err != nil {
			return err
		}
	}
	return nil
}
