package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_project_slug"`)))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: skills.name")))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestTranslateStorageError(t *testing.T) {
	notFound := TranslateStorageError("find", "project", gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)

	conflict := TranslateStorageError("create", "project", errors.New("duplicate key value violates unique constraint"))
	assert.Equal(t, http.StatusConflict, conflict.StatusCode)

	badRef := TranslateStorageError("create", "project skill", errors.New("FOREIGN KEY constraint failed"))
	assert.Equal(t, http.StatusBadRequest, badRef.StatusCode)

	unknown := TranslateStorageError("create", "project", errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, unknown.StatusCode)
	assert.True(t, IsStorageFailure(unknown))
	// The cause is preserved for diagnostics, never swallowed.
	require.NotNil(t, unknown.Cause)
	assert.Contains(t, unknown.GetFullError(), "disk on fire")
}

func TestDomainSentinelsUnwrap(t *testing.T) {
	assert.True(t, IsUnauthenticated(NewUnauthenticated()))
	assert.True(t, IsProjectNotFound(NewProjectNotFound()))
	assert.True(t, IsInvalidSkillReference(NewInvalidSkillReference()))
	assert.True(t, IsDuplicateTitle(NewDuplicateTitle()))
	assert.True(t, IsDuplicateSkillName(NewDuplicateSkillName()))

	assert.Equal(t, http.StatusUnauthorized, NewUnauthenticated().StatusCode)
	assert.Equal(t, http.StatusConflict, NewDuplicateTitle().StatusCode)
	assert.Equal(t, http.StatusBadRequest, NewInvalidSkillReference().StatusCode)
}
