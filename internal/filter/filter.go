package filter

import (
	"strings"

	"github.com/Jbansal2/PlayBolt/pkg/models"
)

// AllPlatforms is the literal selection that disables the platform
// predicate instead of being matched as a platform name.
const AllPlatforms = "All Platforms"

// Criteria is the user-selected filter state. An empty slice, empty
// string or zero rating means "no constraint on this axis". Criteria
// are always applied to the original full catalog, never to a
// previously filtered list, so changes cannot compound.
type Criteria struct {
	Categories []string `json:"categories"`
	Platforms  []string `json:"platforms"`
	MinRating  float64  `json:"min_rating"`
	Search     string   `json:"search"`
}

func (c Criteria) IsZero() bool {
	return len(c.Categories) == 0 && len(c.Platforms) == 0 && c.MinRating == 0 && c.Search == ""
}

// Apply runs the derived-list pipeline: all predicates are AND'ed, each
// is a no-op when its axis is empty, and catalog order is preserved.
// The catalog itself is never mutated; the result is a fresh slice.
func Apply(catalog []models.Game, c Criteria) []models.Game {
	out := make([]models.Game, 0, len(catalog))
	for _, g := range catalog {
		if !matchesCategories(g, c.Categories) {
			continue
		}
		if !matchesPlatforms(g, c.Platforms) {
			continue
		}
		if c.MinRating > 0 && g.Rating < c.MinRating {
			continue
		}
		if !matchesSearch(g, c.Search) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// matchesCategories passes when any selected category and the primary
// genre contain each other, case-insensitively, in either direction.
// The bidirectional containment is deliberate: "RPG" selects a game
// whose primary genre is "Action RPG" and vice versa.
func matchesCategories(g models.Game, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	genre := strings.ToLower(g.PrimaryGenre())
	for _, cat := range categories {
		c := strings.ToLower(cat)
		if strings.Contains(genre, c) || strings.Contains(c, genre) {
			return true
		}
	}
	return false
}

func matchesPlatforms(g models.Game, platforms []string) bool {
	if len(platforms) == 0 {
		return true
	}
	for _, p := range platforms {
		if p == AllPlatforms {
			return true
		}
	}
	name := strings.ToLower(g.PrimaryPlatform())
	for _, p := range platforms {
		if strings.Contains(name, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// matchesSearch passes when the query is a substring of the name, the
// primary genre or the primary developer.
func matchesSearch(g models.Game, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(g.Name), q) ||
		strings.Contains(strings.ToLower(g.PrimaryGenre()), q) ||
		strings.Contains(strings.ToLower(g.PrimaryDeveloper()), q)
}
