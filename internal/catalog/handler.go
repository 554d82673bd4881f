package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jbansal2/PlayBolt/internal/filter"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/games", h.list)                     // GET /games?page_size=40
	rg.GET("/games/top-rated", h.topRated)       // GET /games/top-rated?page_size=40
	rg.GET("/games/new-releases", h.newReleases) // GET /games/new-releases?page_size=40
	rg.GET("/games/search", h.search)            // GET /games/search?q=...
	rg.GET("/games/:id", h.details)              // GET /games/123
	rg.GET("/games/:id/screenshots", h.screenshots)
	rg.GET("/games/:id/videos", h.videos)
	rg.POST("/games/filter", h.filter) // body = filter criteria
	rg.GET("/categories", h.categories)
	rg.GET("/genres", h.genres)
	rg.GET("/genres/:slug/games", h.byGenre)
	rg.GET("/platforms/:platform/games", h.byPlatform)
}

func (h *Handler) list(c *gin.Context) {
	size := parseInt(c.Query("page_size"), 40)
	if category := c.Query("category"); category != "" {
		games := h.Service.FetchByCategory(c.Request.Context(), category)
		c.JSON(http.StatusOK, gin.H{"total": len(games), "items": games})
		return
	}
	games := h.Service.FetchAll(c.Request.Context(), size)
	c.JSON(http.StatusOK, gin.H{"total": len(games), "items": games})
}

func (h *Handler) topRated(c *gin.Context) {
	games := h.Service.FetchTopRated(c.Request.Context(), parseInt(c.Query("page_size"), 40))
	c.JSON(http.StatusOK, gin.H{"total": len(games), "items": games})
}

func (h *Handler) newReleases(c *gin.Context) {
	games := h.Service.FetchNewReleases(c.Request.Context(), parseInt(c.Query("page_size"), 40))
	c.JSON(http.StatusOK, gin.H{"total": len(games), "items": games})
}

func (h *Handler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}
	games := h.Service.Search(c.Request.Context(), q)
	c.JSON(http.StatusOK, gin.H{"total": len(games), "items": games})
}

// details is the one place a structurally invalid request is a
// user-visible error: a non-numeric id is a 400, while network failure
// behind a valid id is papered over with a mock record.
func (h *Handler) details(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}
	c.JSON(http.StatusOK, h.Service.FetchDetails(c.Request.Context(), id))
}

func (h *Handler) screenshots(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.Service.Screenshots(id)})
}

func (h *Handler) videos(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.Service.Videos(id)})
}

func (h *Handler) filter(c *gin.Context) {
	var criteria filter.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter criteria"})
		return
	}
	games := h.Service.Filter(c.Request.Context(), criteria)
	c.JSON(http.StatusOK, gin.H{"total": len(games), "items": games})
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Service.Categories()})
}

func (h *Handler) genres(c *gin.Context) {
	genres := h.Service.FetchGenres()
	c.JSON(http.StatusOK, gin.H{"total": len(genres), "items": genres})
}

func (h *Handler) byGenre(c *gin.Context) {
	games := h.Service.FetchByGenre(c.Request.Context(), c.Param("slug"))
	c.JSON(http.StatusOK, gin.H{"total": len(games), "items": games})
}

func (h *Handler) byPlatform(c *gin.Context) {
	games := h.Service.FetchByPlatform(c.Request.Context(), c.Param("platform"))
	c.JSON(http.StatusOK, gin.H{"total": len(games), "items": games})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
