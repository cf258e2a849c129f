package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// fallbackSlugBase is used when a title normalizes to nothing (for example a
// title made entirely of punctuation), so slugs always stay URL-safe.
const fallbackSlugBase = "untitled"

// SlugBase derives the URL-safe candidate base for a title: lowercase, every
// run of characters outside [a-z0-9] collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func SlugBase(title string) string {
	base := strings.ToLower(title)
	base = nonSlugChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		return fallbackSlugBase
	}
	return base
}

// SlugAllocator hands out slugs that are unique among projects at the moment
// of the check. The existence probe minimizes collisions but cannot exclude
// them under concurrency; callers inserting the result must catch a
// unique-constraint violation on the slug column and allocate again.
type SlugAllocator struct {
	projectRepo *database.ProjectRepo
}

func NewSlugAllocator(projectRepo *database.ProjectRepo) SlugAllocator {
	return SlugAllocator{projectRepo}
}

// Allocate returns the first free slug for title, probing base, base-1,
// base-2, ... in order. excludeID is left out of the collision search so a
// project renamed back to its own title keeps its unsuffixed slug; pass
// uuid.Nil when creating.
func (a SlugAllocator) Allocate(title string, excludeID uuid.UUID) (string, error) {
	base := SlugBase(title)

	exists, err := a.projectRepo.SlugExists(base, excludeID)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s-%d", base, counter)
		exists, err := a.projectRepo.SlugExists(candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}
