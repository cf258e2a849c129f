package services

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugBase(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World!", "hello-world"},
		{"Hello, World", "hello-world"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Go/React App 2.0", "go-react-app-2-0"},
		{"UPPERCASE", "uppercase"},
		{"already-a-slug", "already-a-slug"},
		{"---", "untitled"},
		{"", "untitled"},
		{"!!!???", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := SlugBase(tt.title)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, slugPattern, got)
		})
	}
}

func TestAllocateReturnsBaseWhenFree(t *testing.T) {
	db := newTestDB(t)
	allocator := NewSlugAllocator(db.ProjectRepo())

	slug, err := allocator.Allocate("Hello World!", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "hello-world", slug)
}

func TestAllocateProbesSuffixesInOrder(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com")
	allocator := NewSlugAllocator(db.ProjectRepo())

	seedProject(t, db, author.ID, "Hello World!", "hello-world", true, false)

	slug, err := allocator.Allocate("Hello, World", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "hello-world-1", slug)

	seedProject(t, db, author.ID, "Hello, World", "hello-world-1", true, false)

	slug, err = allocator.Allocate("hello world", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "hello-world-2", slug)
}

func TestAllocateExcludesGivenProject(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author@example.com")
	allocator := NewSlugAllocator(db.ProjectRepo())

	project := seedProject(t, db, author.ID, "My Project", "my-project", true, false)

	// Renaming a project back to its own title-derived base must not
	// suffix it against its own slug.
	slug, err := allocator.Allocate("My Project", project.ID)
	require.NoError(t, err)
	assert.Equal(t, "my-project", slug)

	// Without the exclusion the base is taken.
	slug, err = allocator.Allocate("My Project", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "my-project-1", slug)
}

func TestAllocateAlwaysProducesURLSafeSlugs(t *testing.T) {
	db := newTestDB(t)
	allocator := NewSlugAllocator(db.ProjectRepo())

	titles := []string{
		"Hello World!",
		"çafé au lait",
		"100% Test Coverage?!",
		"***",
		"a",
	}
	for _, title := range titles {
		slug, err := allocator.Allocate(title, uuid.Nil)
		require.NoError(t, err)
		assert.Regexp(t, slugPattern, slug, "title %q", title)
	}
}
