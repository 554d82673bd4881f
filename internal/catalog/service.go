package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Jbansal2/PlayBolt/internal/filter"
	"github.com/Jbansal2/PlayBolt/internal/relay"
	"github.com/Jbansal2/PlayBolt/pkg/models"
)

// searchCap bounds the catalog fetch behind search, top-rated and
// new-releases. The provider has no server-side search or sort, so
// those operations work over an in-memory catalog of at most this size.
const searchCap = 100

// Service is the catalog query layer. Every method returns a sequence
// of games and never an error: failures degrade to an empty sequence or
// to mock data, depending on the operation.
//
// The degradation is deliberately asymmetric: the full-catalog path
// falls back to mock data so a listing is never empty, while the
// category/platform paths return an empty sequence on failure. Both
// behaviors are load-bearing for the consumers.
type Service struct {
	Relays *relay.Client
	Seed   int64 // synthesis seed; 0 = derive from the clock per call
	Log    *logrus.Logger
}

func NewService(client *relay.Client, log *logrus.Logger) *Service {
	return &Service{Relays: client, Log: log}
}

func (s *Service) synth() *models.Synthesizer {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return models.NewSynthesizer(seed)
}

// FetchAll returns up to pageSize games, mock-backed on total failure.
func (s *Service) FetchAll(ctx context.Context, pageSize int) []models.Game {
	if pageSize <= 0 {
		pageSize = 40
	}
	return s.Relays.FetchCatalog(ctx, pageSize)
}

// fetchByParam queries the provider list endpoint with one filter
// parameter and normalizes the result. Unlike FetchCatalog this
// surfaces the failure so each caller can pick its own degradation.
func (s *Service) fetchByParam(ctx context.Context, key, value string) ([]models.Game, error) {
	target := s.Relays.ProviderURL("/games", url.Values{key: {strings.ToLower(value)}})
	payload, err := s.Relays.FetchJSON(ctx, target)
	if err != nil {
		return nil, err
	}

	var raw []models.ProviderGame
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode game list: %w", err)
	}

	syn := s.synth()
	games := make([]models.Game, 0, len(raw))
	for _, rg := range raw {
		games = append(games, models.FromProvider(rg, syn))
	}
	return games, nil
}

// FetchByCategory returns the games tagged with category, or an empty
// sequence when the provider is unreachable. No mock fallback here.
func (s *Service) FetchByCategory(ctx context.Context, category string) []models.Game {
	games, err := s.fetchByParam(ctx, "category", category)
	if err != nil {
		s.Log.WithField("category", category).WithError(err).Warn("category fetch failed")
		return []models.Game{}
	}
	return games
}

// FetchByPlatform returns the games for a platform slug (pc, browser,
// all), or an empty sequence when the provider is unreachable.
func (s *Service) FetchByPlatform(ctx context.Context, platform string) []models.Game {
	if platform == "" {
		platform = "all"
	}
	games, err := s.fetchByParam(ctx, "platform", platform)
	if err != nil {
		s.Log.WithField("platform", platform).WithError(err).Warn("platform fetch failed")
		return []models.Game{}
	}
	return games
}

// FetchByGenre serves the categories page: a category query whose
// failure path filters the mock catalog by genre instead of going
// empty.
func (s *Service) FetchByGenre(ctx context.Context, slug string) []models.Game {
	games, err := s.fetchByParam(ctx, "category", slug)
	if err != nil {
		s.Log.WithField("genre", slug).WithError(err).Warn("genre fetch failed, filtering mock data")
		mock := relay.MockCatalog(20)
		want := strings.ToLower(slug)
		out := make([]models.Game, 0, len(mock))
		for _, g := range mock {
			genre := strings.ToLower(g.PrimaryGenre())
			if genre == want || strings.Contains(genre, want) {
				out = append(out, g)
			}
		}
		return out
	}
	return games
}

// FetchDetails returns the game with the given id. On total relay
// failure it returns a synthesized record whose id matches the request,
// so a detail lookup never 404s purely because the network failed.
func (s *Service) FetchDetails(ctx context.Context, id int) models.Game {
	game, err := s.Relays.FetchGame(ctx, id)
	if err != nil {
		s.Log.WithField("id", id).WithError(err).Warn("detail fetch failed, serving mock game")
		return relay.MockGame(id)
	}
	return game
}

// Search fetches the capped full catalog and substring-filters on name
// or primary genre, case-insensitively. The provider has no search
// endpoint.
func (s *Service) Search(ctx context.Context, query string) []models.Game {
	games := s.Relays.FetchCatalog(ctx, searchCap)
	q := strings.ToLower(query)
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Name), q) ||
			strings.Contains(strings.ToLower(g.PrimaryGenre()), q) {
			out = append(out, g)
		}
	}
	return out
}

// FetchTopRated returns the pageSize highest-rated games.
func (s *Service) FetchTopRated(ctx context.Context, pageSize int) []models.Game {
	games := s.Relays.FetchCatalog(ctx, searchCap)
	sortByRating(games)
	return truncate(games, pageSize)
}

// FetchNewReleases returns the pageSize most recent games. Missing or
// unparsable release dates sort as the oldest.
func (s *Service) FetchNewReleases(ctx context.Context, pageSize int) []models.Game {
	games := s.Relays.FetchCatalog(ctx, searchCap)
	sortByReleased(games)
	return truncate(games, pageSize)
}

func sortByRating(games []models.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Rating > games[j].Rating
	})
}

func sortByReleased(games []models.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return releaseTime(games[i]).After(releaseTime(games[j]))
	})
}

// Filter fetches the capped full catalog and runs the derived-list
// pipeline over it. The pipeline always starts from the full catalog,
// never from a previous result.
func (s *Service) Filter(ctx context.Context, c filter.Criteria) []models.Game {
	return filter.Apply(s.Relays.FetchCatalog(ctx, searchCap), c)
}

// Screenshots returns the gallery descriptors for a game. The provider
// only exposes screenshots on the detail endpoint, so these are
// synthesized from the game id.
func (s *Service) Screenshots(id int) []models.Screenshot {
	return relay.MockScreenshots(id)
}

// Videos returns the video descriptors for a game. The provider has
// none; the sequence is empty, not absent.
func (s *Service) Videos(id int) []models.Video {
	return []models.Video{}
}

func truncate(games []models.Game, n int) []models.Game {
	if n > 0 && len(games) > n {
		return games[:n]
	}
	return games
}

func releaseTime(g models.Game) time.Time {
	t, err := time.Parse("2006-01-02", g.Released)
	if err != nil {
		return time.Time{}
	}
	return t
}
