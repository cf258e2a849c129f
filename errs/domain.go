package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Domain error sentinels surfaced by the project and auth services.
var (
	ErrUnauthenticated       = errors.New("authentication required")
	ErrProjectNotFound       = errors.New("project not found")
	ErrInvalidSkillReference = errors.New("one or more selected skills are invalid")
	ErrDuplicateTitle        = errors.New("a project with this title already exists")
	ErrDuplicateSkillName    = errors.New("a skill with this name already exists")
	ErrDuplicateEmail        = errors.New("an account with this email already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrStorageFailure        = errors.New("storage failure")
)

func NewUnauthenticated() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrUnauthenticated}
}

func NewProjectNotFound() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrProjectNotFound}
}

func NewInvalidSkillReference() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidSkillReference,
		Details:    "Please refresh the page and try again",
		Field:      "skillIds",
	}
}

func NewDuplicateTitle() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateTitle,
		Details:    "Please use a different title",
		Field:      "title",
	}
}

func NewDuplicateSkillName() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateSkillName,
		Field:      "name",
	}
}

func NewDuplicateEmail() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateEmail,
		Field:      "email",
	}
}

func NewInvalidCredentials() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrInvalidCredentials}
}

// NewStorageFailure wraps an unexpected persistence error. The cause is kept
// for diagnostics, never swallowed.
func NewStorageFailure(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageFailure,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

func IsProjectNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound)
}

func IsInvalidSkillReference(err error) bool {
	return errors.Is(err, ErrInvalidSkillReference)
}

func IsDuplicateTitle(err error) bool {
	return errors.Is(err, ErrDuplicateTitle)
}

func IsDuplicateSkillName(err error) bool {
	return errors.Is(err, ErrDuplicateSkillName)
}

func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}

// IsUniqueViolation reports whether err is a unique-constraint violation from
// the underlying database. GORM translates some drivers to ErrDuplicatedKey;
// the substring checks cover postgres and sqlite messages that slip through.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Unique constraint")
}

// IsForeignKeyViolation reports whether err is a foreign-key constraint
// violation from the underlying database.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}

// TranslateStorageError pattern-matches a persistence error into the domain
// taxonomy. Anything unrecognized is wrapped as a storage failure rather than
// leaked raw.
func TranslateStorageError(operation, entity string, cause error) *ApiErr {
	switch {
	case cause == nil:
		return nil
	case errors.Is(cause, gorm.ErrRecordNotFound):
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s not found", entity),
			Cause:      cause,
		}
	case IsUniqueViolation(cause):
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        fmt.Errorf("%s already exists", entity),
			Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
			Cause:      cause,
		}
	case IsForeignKeyViolation(cause):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("invalid reference in %s", entity),
			Details:    "The referenced resource does not exist or cannot be linked",
			Cause:      cause,
		}
	default:
		return NewStorageFailure(operation, entity, cause)
	}
}
