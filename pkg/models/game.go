package models

// Game is the normalized, provider-agnostic form of a catalog entry
// used by the relay layer, the query service and the HTTP handlers.
//
// Every upstream record is mapped into this structure first; consumers
// rely on Genres, Developers and Platforms never being nil after
// normalization, so they never null-check those fields.
type Game struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	BackgroundImage string          `json:"background_image,omitempty"` // cover image URL (if any)
	Rating          float64         `json:"rating"`                     // [0.0, 5.0]; synthesized when the provider has none
	Metacritic      int             `json:"metacritic,omitempty"`       // [70, 99]; synthesized when absent
	Genres          []Genre         `json:"genres"`
	Developers      []Developer     `json:"developers"`
	Platforms       []PlatformEntry `json:"platforms"`
	Released        string          `json:"released,omitempty"` // ISO date, empty = TBA
	Description     string          `json:"description,omitempty"`
	GameURL         string          `json:"game_url,omitempty"`
	Publisher       string          `json:"publisher,omitempty"`
}

type Genre struct {
	Name string `json:"name"`
}

type Developer struct {
	Name string `json:"name"`
}

// PlatformEntry wraps Platform one level deep to match the grid
// contract the rendering side already consumes.
type PlatformEntry struct {
	Platform Platform `json:"platform"`
}

type Platform struct {
	Name string `json:"name"`
}

// Screenshot describes one gallery image for a detail view.
type Screenshot struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

// Video describes one gallery video for a detail view.
type Video struct {
	ID      int    `json:"id"`
	Name    string `json:"name,omitempty"`
	Preview string `json:"preview,omitempty"`
	Data    string `json:"data,omitempty"`
}

// GenreInfo is the display object built from the static category list.
// GamesCount is synthesized, not a real aggregate.
type GenreInfo struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	GamesCount int    `json:"games_count"`
}

// ProviderGame is the raw upstream schema. The provider list endpoint
// returns a flat array of these; the single-game endpoint returns one,
// with Description and Screenshots populated.
type ProviderGame struct {
	ID               int          `json:"id"`
	Title            string       `json:"title"`
	Thumbnail        string       `json:"thumbnail"`
	Genre            string       `json:"genre"`
	Developer        string       `json:"developer"`
	Publisher        string       `json:"publisher"`
	Platform         string       `json:"platform"`
	ReleaseDate      string       `json:"release_date"`
	ShortDescription string       `json:"short_description"`
	Description      string       `json:"description,omitempty"`
	GameURL          string       `json:"game_url"`
	Screenshots      []Screenshot `json:"screenshots,omitempty"`
}

// Primary-element conventions: first element of the sequence, or a
// fixed default when the sequence is empty.

func (g Game) PrimaryGenre() string {
	if len(g.Genres) == 0 {
		return "Unknown"
	}
	return g.Genres[0].Name
}

func (g Game) PrimaryDeveloper() string {
	if len(g.Developers) == 0 {
		return "Unknown"
	}
	return g.Developers[0].Name
}

func (g Game) PrimaryPlatform() string {
	if len(g.Platforms) == 0 {
		return "PC"
	}
	return g.Platforms[0].Platform.Name
}
