package models

import (
	"fmt"
	"math/rand"
	"strings"
)

// Synthesizer fabricates the fields the upstream provider does not
// carry (rating, metacritic, genre game counts). It is seeded so tests
// can pin the output; production callers seed from the clock.
//
// Values are presentation choices, not measured statistics: ratings land
// in [4.0, 5.0) and metacritic in [70, 99] on purpose.
type Synthesizer struct {
	rng *rand.Rand
}

func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

func (s *Synthesizer) Rating() float64 {
	return 4.0 + s.rng.Float64()
}

func (s *Synthesizer) Metacritic() int {
	return 70 + s.rng.Intn(30)
}

func (s *Synthesizer) GamesCount() int {
	return 10 + s.rng.Intn(100)
}

// ReleaseDay returns a synthetic 2022 ISO date for mock records.
func (s *Synthesizer) ReleaseDay() string {
	return fmt.Sprintf("2022-%02d-%02d", s.rng.Intn(12)+1, s.rng.Intn(28)+1)
}

// FromProvider maps a raw upstream record into the canonical Game and
// normalizes it. It is total: any missing provider field maps to a
// default or a synthesized value, never to an error.
func FromProvider(raw ProviderGame, syn *Synthesizer) Game {
	g := Game{
		ID:              raw.ID,
		Name:            raw.Title,
		BackgroundImage: raw.Thumbnail,
		Released:        raw.ReleaseDate,
		Description:     raw.ShortDescription,
		GameURL:         raw.GameURL,
		Publisher:       raw.Publisher,
	}
	if g.Description == "" {
		g.Description = raw.Description
	}
	if s := strings.TrimSpace(raw.Genre); s != "" {
		g.Genres = []Genre{{Name: s}}
	}
	if s := strings.TrimSpace(raw.Developer); s != "" {
		g.Developers = []Developer{{Name: s}}
	}
	if s := strings.TrimSpace(raw.Platform); s != "" {
		g.Platforms = []PlatformEntry{{Platform: Platform{Name: s}}}
	}
	return Normalize(g, syn)
}

// Normalize fills the documented defaults on a Game. It is idempotent:
// applying it to its own output yields an equivalent record, because a
// populated field is never touched again.
func Normalize(g Game, syn *Synthesizer) Game {
	if g.Genres == nil {
		g.Genres = []Genre{}
	}
	if g.Developers == nil {
		g.Developers = []Developer{}
	}
	if g.Platforms == nil {
		g.Platforms = []PlatformEntry{}
	}
	if g.Rating == 0 {
		g.Rating = syn.Rating()
	}
	if g.Rating < 0 {
		g.Rating = 0
	}
	if g.Rating > 5 {
		g.Rating = 5
	}
	if g.Metacritic == 0 {
		g.Metacritic = syn.Metacritic()
	}
	return g
}
