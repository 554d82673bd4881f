package catalog

import (
	"strings"

	"github.com/Jbansal2/PlayBolt/pkg/models"
)

// categorySlugs is the fixed list of genre/tag slugs the provider
// understands. There is no discovery endpoint for these; the list is
// maintained by hand.
var categorySlugs = []string{
	"mmorpg",
	"shooter",
	"strategy",
	"moba",
	"racing",
	"sports",
	"social",
	"sandbox",
	"open-world",
	"survival",
	"pvp",
	"pve",
	"pixel",
	"voxel",
	"zombie",
	"turn-based",
	"first-person",
	"third-person",
	"top-down",
	"tank",
	"space",
	"sailing",
	"side-scroller",
	"superhero",
	"permadeath",
	"card",
	"battle-royale",
	"mmo",
	"mmofps",
	"mmotps",
	"3d",
	"2d",
	"anime",
	"fantasy",
	"sci-fi",
	"fighting",
	"action-rpg",
	"action",
	"military",
	"martial-arts",
	"flight",
	"low-spec",
	"tower-defense",
	"horror",
	"mmorts",
}

// Categories returns the known category slugs. No network call.
func (s *Service) Categories() []string {
	out := make([]string, len(categorySlugs))
	copy(out, categorySlugs)
	return out
}

// FetchGenres maps the slug list into display objects with a
// title-cased label and a synthesized game count. The count is
// presentational, not a real aggregate.
func (s *Service) FetchGenres() []models.GenreInfo {
	syn := s.synth()
	out := make([]models.GenreInfo, 0, len(categorySlugs))
	for i, slug := range categorySlugs {
		out = append(out, models.GenreInfo{
			ID:         i + 1,
			Name:       titleCaseSlug(slug),
			Slug:       slug,
			GamesCount: syn.GamesCount(),
		})
	}
	return out
}

// titleCaseSlug turns "action-rpg" into "Action Rpg".
func titleCaseSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
