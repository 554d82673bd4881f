package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jbansal2/PlayBolt/pkg/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	svc := newTestService(t, providerStub(t, stubGames()))
	NewHandler(svc).RegisterRoutes(router.Group("/api"))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type listBody struct {
	Total int           `json:"total"`
	Items []models.Game `json:"items"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listBody {
	t.Helper()
	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_ListGames(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/games?page_size=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeList(t, w)
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Items, 2)
}

func TestHandler_DetailsInvalidID(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/games/abc", "/api/games/-1", "/api/games/0"} {
		w := doRequest(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestHandler_DetailsValidID(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/games/2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var g models.Game
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Equal(t, 2, g.ID)
}

func TestHandler_StaticRoutesWinOverID(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/games/top-rated", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, decodeList(t, w).Total)
}

func TestHandler_SearchRequiresQuery(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, http.MethodGet, "/api/games/search", "").Code)

	w := doRequest(t, router, http.MethodGet, "/api/games/search?q=shoot", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeList(t, w)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Battlefront", body.Items[0].Name)
}

func TestHandler_FilterEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/games/filter",
		`{"categories": ["RPG"], "search": "quest"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeList(t, w)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Dragon Quest Heroes", body.Items[0].Name)
}

func TestHandler_FilterRejectsBadBody(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/games/filter", `{"min_rating": "high"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CategoriesAndGenres(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cats struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Contains(t, cats.Categories, "shooter")

	w = doRequest(t, router, http.MethodGet, "/api/genres", "")
	require.Equal(t, http.StatusOK, w.Code)
	var genres struct {
		Total int                `json:"total"`
		Items []models.GenreInfo `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genres))
	assert.Equal(t, len(cats.Categories), genres.Total)
}

func TestHandler_Screenshots(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/games/42/screenshots", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Results []models.Screenshot `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Results, 3)
}
