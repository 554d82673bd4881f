package relay

import (
	"fmt"
	"strings"

	"github.com/Jbansal2/PlayBolt/pkg/models"
)

// mockSeed pins the synthesizer for mock data so the fallback catalog
// has a deterministic shape: callers seeing mock data twice see the
// same records.
const mockSeed = 1

// mockTemplates is the fixed template set the fallback catalog is
// built from. Small on purpose; MockCatalog cycles and re-ids it to
// reach the requested size.
var mockTemplates = []models.ProviderGame{
	{ID: 540, Title: "Overwatch 2", Genre: "Shooter", Platform: "PC", Developer: "Blizzard Entertainment", Thumbnail: "https://www.freetogame.com/g/540/thumbnail.jpg"},
	{ID: 521, Title: "Diablo Immortal", Genre: "Action RPG", Platform: "PC", Developer: "Blizzard Entertainment", Thumbnail: "https://www.freetogame.com/g/521/thumbnail.jpg"},
	{ID: 508, Title: "Fall Guys", Genre: "Battle Royale", Platform: "PC", Developer: "Mediatonic", Thumbnail: "https://www.freetogame.com/g/508/thumbnail.jpg"},
	{ID: 345, Title: "Genshin Impact", Genre: "Action RPG", Platform: "PC", Developer: "miHoYo", Thumbnail: "https://www.freetogame.com/g/345/thumbnail.jpg"},
	{ID: 516, Title: "PUBG: BATTLEGROUNDS", Genre: "Battle Royale", Platform: "PC", Developer: "KRAFTON", Thumbnail: "https://www.freetogame.com/g/516/thumbnail.jpg"},
	{ID: 452, Title: "Call of Duty: Warzone", Genre: "Battle Royale", Platform: "PC", Developer: "Activision", Thumbnail: "https://www.freetogame.com/g/452/thumbnail.jpg"},
	{ID: 365, Title: "Call of Duty: Warzone Mobile", Genre: "Shooter", Platform: "Android", Developer: "Activision", Thumbnail: "https://www.freetogame.com/g/365/thumbnail.jpg"},
	{ID: 517, Title: "Lost Ark", Genre: "Action RPG", Platform: "PC", Developer: "Smilegate", Thumbnail: "https://www.freetogame.com/g/517/thumbnail.jpg"},
	{ID: 475, Title: "Apex Legends", Genre: "Battle Royale", Platform: "PC", Developer: "Respawn Entertainment", Thumbnail: "https://www.freetogame.com/g/475/thumbnail.jpg"},
	{ID: 427, Title: "Dota 2", Genre: "MOBA", Platform: "PC", Developer: "Valve", Thumbnail: "https://www.freetogame.com/g/427/thumbnail.jpg"},
}

// MockCatalog synthesizes a catalog of n games from the template set.
// Templates are cycled; each full cycle shifts the ids by 1000 so the
// result stays unique. Never empty for n > 0.
func MockCatalog(n int) []models.Game {
	syn := models.NewSynthesizer(mockSeed)
	games := make([]models.Game, 0, n)
	for i := 0; i < n; i++ {
		tmpl := mockTemplates[i%len(mockTemplates)]
		tmpl.ID += (i / len(mockTemplates)) * 1000
		tmpl.ReleaseDate = syn.ReleaseDay()
		tmpl.ShortDescription = fmt.Sprintf("A popular %s game", strings.ToLower(tmpl.Genre))
		tmpl.GameURL = fmt.Sprintf("https://www.freetogame.com/game/%d", tmpl.ID)
		tmpl.Publisher = tmpl.Developer
		games = append(games, models.FromProvider(tmpl, syn))
	}
	return games
}

// MockGame synthesizes a single detail record whose id matches the
// request, so a detail lookup never comes back empty purely because the
// network failed.
func MockGame(id int) models.Game {
	raw := models.ProviderGame{
		ID:               id,
		Title:            "Adventure Quest",
		Genre:            "Action RPG",
		Platform:         "PC",
		Developer:        "Game Studio",
		Publisher:        "Game Publisher",
		ReleaseDate:      "2022-06-15",
		ShortDescription: "An epic adventure awaits! Explore vast worlds, battle fierce enemies, and uncover ancient secrets in this thrilling action RPG.",
		GameURL:          fmt.Sprintf("https://www.freetogame.com/game/%d", id),
		Thumbnail:        fmt.Sprintf("https://www.freetogame.com/g/%d/thumbnail.jpg", id),
	}
	return models.FromProvider(raw, models.NewSynthesizer(mockSeed))
}

// MockScreenshots synthesizes the gallery descriptors for a game; the
// provider's single-game endpoint is the only real source and it is
// not always reachable.
func MockScreenshots(id int) []models.Screenshot {
	return []models.Screenshot{
		{ID: 1, Image: fmt.Sprintf("https://www.freetogame.com/g/%d/1.jpg", id)},
		{ID: 2, Image: fmt.Sprintf("https://www.freetogame.com/g/%d/2.jpg", id)},
		{ID: 3, Image: fmt.Sprintf("https://www.freetogame.com/g/%d/3.jpg", id)},
	}
}
