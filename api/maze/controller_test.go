package mazeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-labyrinth/api"
	api_i "github.com/beka-birhanu/vinom-labyrinth/api/i"
	"github.com/beka-birhanu/vinom-labyrinth/service"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Error(string) {}
func (nopLogger) Debug(string) {}

type failingGenerator struct{}

func (failingGenerator) Generate(i.MazeRequest) (*i.GeneratedMaze, error) {
	return nil, errors.New("disk on fire")
}

func newTestHandler(t *testing.T, g i.MazeGenerator) http.Handler {
	t.Helper()
	controller, err := NewMazeController(g, 6, 4, 64)
	require.NoError(t, err)

	return api.NewRouter(api.Config{
		BaseURL:     "/api",
		Mode:        gin.TestMode,
		Controllers: []api_i.Controller{controller},
	}).Handler()
}

func newServiceHandler(t *testing.T) http.Handler {
	t.Helper()
	svc, err := service.NewMazeService(&service.Config{Logger: nopLogger{}})
	require.NoError(t, err)
	return newTestHandler(t, svc)
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	h.ServeHTTP(w, req)
	return w
}

func TestMazeController(t *testing.T) {
	h := newServiceHandler(t)

	t.Run("JSON with defaults", func(t *testing.T) {
		w := get(h, "/api/v1/maze?seed=42")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, 6, resp.Width)
		assert.Equal(t, 4, resp.Height)
		assert.Equal(t, int64(42), resp.Seed)
		assert.Equal(t, "lifo-skip", resp.Policy)
		require.Len(t, resp.Rows, 4)
		assert.Len(t, resp.Rows[0], 6)
		assert.Equal(t, "branch", resp.Rows[0][0])
		assert.Contains(t, []string{"path", "branch"}, resp.Rows[3][5])
	})

	t.Run("Same seed same maze", func(t *testing.T) {
		target := "/api/v1/maze/text?width=9&height=7&seed=3&policy=middle-index&glyphs=ascii"
		first := get(h, target)
		second := get(h, target)

		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.NotEqual(t, first.Header().Get("X-Maze-ID"), second.Header().Get("X-Maze-ID"))
		assert.True(t, strings.HasPrefix(first.Header().Get("Content-Type"), "text/plain"))

		lines := strings.Split(strings.TrimSuffix(first.Body.String(), "\n"), "\n")
		assert.Len(t, lines, 9)
		assert.Equal(t, strings.Repeat("#", 22), lines[0])
	})

	t.Run("Bad requests", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/maze?width=0",
			"/api/v1/maze?height=-2",
			"/api/v1/maze?width=abc",
			"/api/v1/maze?policy=fifo",
			"/api/v1/maze?width=65",
			"/api/v1/maze/text?height=5000",
			"/api/v1/maze/text?style=round",
			"/api/v1/maze/text?glyphs=braille",
		} {
			w := get(h, target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)
			assert.Contains(t, w.Body.String(), "error", target)
		}
	})
}

func TestMazeControllerInternalError(t *testing.T) {
	h := newTestHandler(t, failingGenerator{})

	w := get(h, "/api/v1/maze")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewMazeControllerRequiresGenerator(t *testing.T) {
	_, err := NewMazeController(nil, 1, 1, 1)
	assert.Error(t, err)
}

func TestNewMazeControllerRequiresPositiveCap(t *testing.T) {
	_, err := NewMazeController(failingGenerator{}, 1, 1, 0)
	assert.Error(t, err)
}

func TestMazeControllerCapsDimensions(t *testing.T) {
	h := newServiceHandler(t)

	w := get(h, "/api/v1/maze/text?width=64&height=1&seed=1")
	assert.Equal(t, http.StatusOK, w.Code, "the cap itself is allowed")

	w = get(h, "/api/v1/maze?width=1&height=65")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds 64")
}
