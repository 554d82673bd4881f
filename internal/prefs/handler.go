package prefs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/theme", h.getTheme) // GET /prefs/theme
	rg.PUT("/theme", h.setTheme) // PUT /prefs/theme
}

func (h *Handler) getTheme(c *gin.Context) {
	mode, err := h.Repo.GetTheme(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": mode})
}

type setThemeRequest struct {
	Mode string `json:"mode"`
}

func (h *Handler) setTheme(c *gin.Context) {
	var req setThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if !ValidThemes[req.Mode] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be light, dark or system"})
		return
	}
	if err := h.Repo.SetTheme(c.Request.Context(), req.Mode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "set failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": req.Mode})
}
